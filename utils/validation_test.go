package utils

import (
	"testing"
	"time"
)

func TestValidatePhone(t *testing.T) {
	cases := []struct {
		phone string
		want  bool
	}{
		{"+5511987654321", true},
		{"11987654321", true},
		{"+1 (555) 123-4567", true},
		{"555-1234", true},
		{"", false},
		{"abc", false},
		{"+0123456", false},
	}

	for _, tc := range cases {
		if got := ValidatePhone(tc.phone); got != tc.want {
			t.Errorf("ValidatePhone(%q) = %v, want %v", tc.phone, got, tc.want)
		}
	}
}

func TestBeginningOfDay(t *testing.T) {
	ts := time.Date(2024, 3, 15, 17, 42, 9, 123, time.UTC)
	got := BeginningOfDay(ts)
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestEndOfDay(t *testing.T) {
	ts := time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)
	got := EndOfDay(ts)
	if got.Day() != 15 || got.Hour() != 23 || got.Minute() != 59 {
		t.Fatalf("got %v", got)
	}
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2024, 3, 15, 23, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 18, 1, 0, 0, 0, time.UTC)
	if got := DaysBetween(start, end); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
}
