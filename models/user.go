package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"salonbook-backend/utils"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the account that owns all other records. Every query in the
// application is scoped to a single user's ID.
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Name     string    `gorm:"not null" json:"name"`
	Phone    string    `json:"phone"`

	SalonName    string `gorm:"not null" json:"salonName"`
	SalonAddress string `json:"salonAddress"`
	WorkingHours JSONB  `gorm:"type:jsonb;default:'{}'" json:"workingHours"`

	AppointmentReminders  bool `gorm:"default:true" json:"appointmentReminders"`
	WhatsAppNotifications bool `gorm:"default:false" json:"whatsAppNotifications"`
	SMSNotifications      bool `gorm:"default:false" json:"smsNotifications"`

	LastLogin *time.Time `json:"lastLogin"`
	IsActive  bool       `gorm:"default:true" json:"isActive"`

	gorm.Model
}

// Initialize UUID and hash password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	u.ID = uuid.New()
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}

// Custom JSONB type for working hours
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &j)
}
