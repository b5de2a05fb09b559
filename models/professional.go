package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Professional is the dimension conflict detection is partitioned on: two
// appointments only ever conflict when they share a professional.
type Professional struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`

	Name      string `gorm:"not null" json:"name"`
	Phone     string `json:"phone"`
	Specialty string `json:"specialty"`
	IsActive  bool   `gorm:"default:true" json:"isActive"`

	Appointments []Appointment `gorm:"foreignKey:ProfessionalID" json:"-"`

	gorm.Model
}

func (p *Professional) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
