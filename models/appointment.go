package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment holds a half-open interval [StartsAt, EndsAt) for one
// professional. EndsAt must be strictly after StartsAt. ClientName and
// ServiceName are snapshots taken at write time, not re-derived from joins.
type Appointment struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`

	ClientID       uuid.UUID `gorm:"type:uuid;index;not null" json:"clientId"`
	ProfessionalID uuid.UUID `gorm:"type:uuid;index;not null" json:"professionalId"`
	ServiceID      uuid.UUID `gorm:"type:uuid;index;not null" json:"serviceId"`

	ClientName  string `gorm:"not null" json:"clientName"`
	ServiceName string `gorm:"not null" json:"serviceName"`

	Price    int64     `gorm:"not null" json:"price"` // minor currency units (cents)
	StartsAt time.Time `gorm:"not null;index" json:"startsAt"`
	EndsAt   time.Time `gorm:"not null" json:"endsAt"`
	Attended bool      `gorm:"default:false" json:"attended"`

	gorm.Model
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}

// Overlaps reports whether two half-open intervals intersect. Back-to-back
// appointments, where one ends exactly when the other starts, do not overlap.
func (a *Appointment) Overlaps(other *Appointment) bool {
	return a.StartsAt.Before(other.EndsAt) && other.StartsAt.Before(a.EndsAt)
}
