package services

import (
	"testing"
	"time"

	"salonbook-backend/models"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	// One connection so every query sees the same in-memory database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.Appointment{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestHasOverlap(t *testing.T) {
	db := openTestDB(t)

	userID := uuid.New()
	professionalID := uuid.New()
	otherProfessionalID := uuid.New()

	booked := models.Appointment{
		UserID:         userID,
		ClientID:       uuid.New(),
		ProfessionalID: professionalID,
		ServiceID:      uuid.New(),
		ClientName:     "Ana",
		ServiceName:    "Haircut",
		Price:          5000,
		StartsAt:       time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		EndsAt:         time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC),
	}
	if err := db.Create(&booked).Error; err != nil {
		t.Fatalf("failed to seed appointment: %v", err)
	}

	cases := []struct {
		name           string
		professionalID uuid.UUID
		start, end     time.Time
		exclude        uuid.UUID
		want           bool
	}{
		{
			name:           "overlapping same professional",
			professionalID: professionalID,
			start:          time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC),
			end:            time.Date(2024, 1, 1, 11, 30, 0, 0, time.UTC),
			want:           true,
		},
		{
			name:           "back to back after",
			professionalID: professionalID,
			start:          time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC),
			end:            time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
			want:           false,
		},
		{
			name:           "back to back before",
			professionalID: professionalID,
			start:          time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
			end:            time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
			want:           false,
		},
		{
			name:           "contained inside",
			professionalID: professionalID,
			start:          time.Date(2024, 1, 1, 10, 15, 0, 0, time.UTC),
			end:            time.Date(2024, 1, 1, 10, 45, 0, 0, time.UTC),
			want:           true,
		},
		{
			name:           "different professional",
			professionalID: otherProfessionalID,
			start:          time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC),
			end:            time.Date(2024, 1, 1, 11, 30, 0, 0, time.UTC),
			want:           false,
		},
		{
			name:           "excluding own id",
			professionalID: professionalID,
			start:          time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC),
			end:            time.Date(2024, 1, 1, 11, 30, 0, 0, time.UTC),
			exclude:        booked.ID,
			want:           false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := HasOverlap(db, userID, tc.professionalID, tc.start, tc.end, tc.exclude)
			if err != nil {
				t.Fatalf("HasOverlap failed: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestHasOverlap_ScopedToOwner(t *testing.T) {
	db := openTestDB(t)

	professionalID := uuid.New()
	otherOwner := models.Appointment{
		UserID:         uuid.New(),
		ClientID:       uuid.New(),
		ProfessionalID: professionalID,
		ServiceID:      uuid.New(),
		ClientName:     "Ana",
		ServiceName:    "Haircut",
		Price:          5000,
		StartsAt:       time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		EndsAt:         time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC),
	}
	if err := db.Create(&otherOwner).Error; err != nil {
		t.Fatalf("failed to seed appointment: %v", err)
	}

	// Another owner's appointments never count, even with a matching
	// professional id
	got, err := HasOverlap(db, uuid.New(), professionalID,
		time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 11, 30, 0, 0, time.UTC),
		uuid.Nil)
	if err != nil {
		t.Fatalf("HasOverlap failed: %v", err)
	}
	if got {
		t.Fatalf("overlap leaked across owners")
	}
}

func TestHasOverlap_IgnoresCancelledAppointments(t *testing.T) {
	db := openTestDB(t)

	userID := uuid.New()
	professionalID := uuid.New()
	booked := models.Appointment{
		UserID:         userID,
		ClientID:       uuid.New(),
		ProfessionalID: professionalID,
		ServiceID:      uuid.New(),
		ClientName:     "Ana",
		ServiceName:    "Haircut",
		Price:          5000,
		StartsAt:       time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		EndsAt:         time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC),
	}
	if err := db.Create(&booked).Error; err != nil {
		t.Fatalf("failed to seed appointment: %v", err)
	}
	if err := db.Delete(&booked).Error; err != nil {
		t.Fatalf("failed to cancel appointment: %v", err)
	}

	got, err := HasOverlap(db, userID, professionalID,
		time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 11, 30, 0, 0, time.UTC),
		uuid.Nil)
	if err != nil {
		t.Fatalf("HasOverlap failed: %v", err)
	}
	if got {
		t.Fatalf("cancelled appointment still blocks the slot")
	}
}
