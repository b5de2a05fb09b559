package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`

	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Price       int64  `gorm:"not null" json:"price"` // minor currency units (cents)
	Duration    int    `json:"duration"`              // in minutes
	Category    string `gorm:"default:'General'" json:"category"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`

	Appointments []Appointment `gorm:"foreignKey:ServiceID" json:"-"`

	gorm.Model
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
