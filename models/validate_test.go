package models

import (
	"testing"
	"time"
)

func hasFieldError(errs []FieldError, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}

func TestValidateAppointmentTimes_OK(t *testing.T) {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC)

	if errs := ValidateAppointmentTimes(start, end); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateAppointmentTimes_EndNotAfterStart(t *testing.T) {
	start := time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	errs := ValidateAppointmentTimes(start, end)
	if !hasFieldError(errs, "endsAt") {
		t.Fatalf("expected endsAt error, got %v", errs)
	}

	// Zero-length interval is also rejected
	errs = ValidateAppointmentTimes(start, start)
	if !hasFieldError(errs, "endsAt") {
		t.Fatalf("expected endsAt error for zero-length interval, got %v", errs)
	}
}

func TestValidateAppointmentTimes_MissingTimestamps(t *testing.T) {
	end := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	errs := ValidateAppointmentTimes(time.Time{}, end)
	if !hasFieldError(errs, "startsAt") {
		t.Fatalf("expected startsAt error, got %v", errs)
	}

	errs = ValidateAppointmentTimes(end, time.Time{})
	if !hasFieldError(errs, "endsAt") {
		t.Fatalf("expected endsAt error, got %v", errs)
	}
}

func TestValidateFinancialEntry(t *testing.T) {
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name        string
		description string
		amount      int64
		entryType   string
		entryKind   string
		date        time.Time
		wantField   string // empty means valid
	}{
		{"valid income", "Product sale", 2500, EntryTypeIncome, EntryKindOneOff, date, ""},
		{"valid recurring expense", "Rent", 150000, EntryTypeExpense, EntryKindRecurring, date, ""},
		{"empty description", "", 2500, EntryTypeIncome, EntryKindOneOff, date, "description"},
		{"zero amount", "Sale", 0, EntryTypeIncome, EntryKindOneOff, date, "amount"},
		{"negative amount", "Sale", -100, EntryTypeIncome, EntryKindOneOff, date, "amount"},
		{"bad type", "Sale", 2500, "revenue", EntryKindOneOff, date, "type"},
		{"bad entry kind", "Sale", 2500, EntryTypeIncome, "monthly", date, "entryType"},
		{"missing date", "Sale", 2500, EntryTypeIncome, EntryKindOneOff, time.Time{}, "date"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := ValidateFinancialEntry(tc.description, tc.amount, tc.entryType, tc.entryKind, tc.date)
			if tc.wantField == "" {
				if len(errs) != 0 {
					t.Fatalf("expected valid, got %v", errs)
				}
				return
			}
			if !hasFieldError(errs, tc.wantField) {
				t.Fatalf("expected error on %q, got %v", tc.wantField, errs)
			}
		})
	}
}
