package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Client struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`

	Name     string     `gorm:"not null" json:"name"`
	Phone    string     `gorm:"not null;uniqueIndex:idx_user_phone,priority:2" json:"phone"`
	Email    string     `json:"email"`
	Birthday *time.Time `json:"birthday"`
	Notes    string     `json:"notes"`
	IsActive bool       `gorm:"default:true" json:"isActive"`

	Appointments []Appointment `gorm:"foreignKey:ClientID" json:"-"`

	gorm.Model
}

func (c *Client) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
