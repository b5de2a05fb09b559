package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	EntryTypeIncome  = "income"
	EntryTypeExpense = "expense"

	EntryKindOneOff    = "one-off"
	EntryKindRecurring = "recurring"
)

type FinancialEntry struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`

	Description string    `gorm:"not null" json:"description"`
	Amount      int64     `gorm:"not null" json:"amount"`                // minor currency units (cents)
	Type        string    `gorm:"type:varchar(20);not null" json:"type"` // income, expense
	EntryType   string    `gorm:"type:varchar(20);not null" json:"entryType"` // one-off, recurring
	Date        time.Time `gorm:"not null;index" json:"date"`

	gorm.Model
}

func (f *FinancialEntry) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return
}
