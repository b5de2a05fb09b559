package models

import (
	"time"
)

// FieldError pairs a JSON field path with a human-readable message. Handlers
// return these inline so the frontend can attach them to the offending field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateAppointmentTimes checks the cross-field rules binding tags cannot
// express: both timestamps present and EndsAt strictly after StartsAt.
func ValidateAppointmentTimes(startsAt, endsAt time.Time) []FieldError {
	var errs []FieldError
	if startsAt.IsZero() {
		errs = append(errs, FieldError{Field: "startsAt", Message: "start time is required"})
	}
	if endsAt.IsZero() {
		errs = append(errs, FieldError{Field: "endsAt", Message: "end time is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	if !endsAt.After(startsAt) {
		errs = append(errs, FieldError{Field: "endsAt", Message: "end time must be after start time"})
	}
	return errs
}

// ValidateFinancialEntry checks enum and amount constraints on a financial
// entry payload.
func ValidateFinancialEntry(description string, amount int64, entryType, entryKind string, date time.Time) []FieldError {
	var errs []FieldError
	if description == "" {
		errs = append(errs, FieldError{Field: "description", Message: "description is required"})
	}
	if amount <= 0 {
		errs = append(errs, FieldError{Field: "amount", Message: "amount must be positive"})
	}
	if entryType != EntryTypeIncome && entryType != EntryTypeExpense {
		errs = append(errs, FieldError{Field: "type", Message: "type must be income or expense"})
	}
	if entryKind != EntryKindOneOff && entryKind != EntryKindRecurring {
		errs = append(errs, FieldError{Field: "entryType", Message: "entryType must be one-off or recurring"})
	}
	if date.IsZero() {
		errs = append(errs, FieldError{Field: "date", Message: "date is required"})
	}
	return errs
}
