package services

import (
	"testing"
	"time"

	"salonbook-backend/models"

	"github.com/google/uuid"
)

func mkRefs() References {
	return References{
		Client:       &models.Client{ID: uuid.New(), Name: "Ana"},
		Professional: &models.Professional{ID: uuid.New(), Name: "Bruna"},
		Service:      &models.Service{ID: uuid.New(), Name: "Haircut", Price: 5000, Duration: 30},
	}
}

func at(hour, min int) time.Time {
	return time.Date(2024, 1, 1, hour, min, 0, 0, time.UTC)
}

func mkAppointment(professionalID uuid.UUID, start, end time.Time) models.Appointment {
	return models.Appointment{
		ID:             uuid.New(),
		ProfessionalID: professionalID,
		StartsAt:       start,
		EndsAt:         end,
	}
}

func TestDeriveDefaults_FillsEndAndPrice(t *testing.T) {
	service := &models.Service{Name: "Haircut", Price: 5000, Duration: 30}
	c := &Candidate{StartsAt: at(10, 0)}

	DeriveDefaults(c, service)

	if !c.EndsAt.Equal(at(10, 30)) {
		t.Fatalf("expected end 10:30, got %v", c.EndsAt)
	}
	if c.Price != 5000 {
		t.Fatalf("expected price 5000, got %d", c.Price)
	}
}

func TestDeriveDefaults_Idempotent(t *testing.T) {
	service := &models.Service{Name: "Haircut", Price: 5000, Duration: 30}
	c := &Candidate{StartsAt: at(10, 0)}

	DeriveDefaults(c, service)
	first := *c
	DeriveDefaults(c, service)

	if !c.EndsAt.Equal(first.EndsAt) || c.Price != first.Price {
		t.Fatalf("second derivation changed candidate: %+v vs %+v", first, *c)
	}
}

func TestDeriveDefaults_RespectsPinnedEnd(t *testing.T) {
	service := &models.Service{Price: 5000, Duration: 30}
	pinned := at(11, 15)
	c := &Candidate{StartsAt: at(10, 0), EndsAt: pinned}

	DeriveDefaults(c, service)

	if !c.EndsAt.Equal(pinned) {
		t.Fatalf("pinned end was overwritten: got %v", c.EndsAt)
	}
}

func TestDeriveDefaults_RespectsPinnedPrice(t *testing.T) {
	service := &models.Service{Price: 5000, Duration: 30}
	c := &Candidate{StartsAt: at(10, 0), Price: 7500}

	DeriveDefaults(c, service)

	if c.Price != 7500 {
		t.Fatalf("pinned price was overwritten: got %d", c.Price)
	}
}

func TestDeriveDefaults_NilServiceLeavesCandidateUntouched(t *testing.T) {
	c := &Candidate{StartsAt: at(10, 0)}

	DeriveDefaults(c, nil)

	if !c.EndsAt.IsZero() || c.Price != 0 {
		t.Fatalf("nil service modified candidate: %+v", *c)
	}
}

func TestValidateAppointment_InvalidInterval(t *testing.T) {
	refs := mkRefs()

	cases := []struct {
		name       string
		start, end time.Time
	}{
		{"inverted", at(11, 0), at(10, 0)},
		{"zero length", at(10, 0), at(10, 0)},
		{"missing start", time.Time{}, at(10, 0)},
		{"missing end", at(10, 0), time.Time{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := &Candidate{
				ClientID:       refs.Client.ID,
				ProfessionalID: refs.Professional.ID,
				ServiceID:      refs.Service.ID,
				Price:          5000,
				StartsAt:       tc.start,
				EndsAt:         tc.end,
			}
			rej := ValidateAppointment(c, refs, nil, uuid.Nil)
			if rej == nil {
				t.Fatalf("expected rejection")
			}
			if rej.Kind != RejectInvalidInterval {
				t.Fatalf("expected %q, got %q", RejectInvalidInterval, rej.Kind)
			}
		})
	}
}

func TestValidateAppointment_UnresolvedReferences(t *testing.T) {
	full := mkRefs()

	cases := []struct {
		name  string
		refs  References
		field string
	}{
		{"missing client", References{Professional: full.Professional, Service: full.Service}, "clientId"},
		{"missing professional", References{Client: full.Client, Service: full.Service}, "professionalId"},
		{"missing service", References{Client: full.Client, Professional: full.Professional}, "serviceId"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := &Candidate{Price: 5000, StartsAt: at(10, 0), EndsAt: at(11, 0)}
			rej := ValidateAppointment(c, tc.refs, nil, uuid.Nil)
			if rej == nil {
				t.Fatalf("expected rejection")
			}
			if rej.Kind != RejectUnresolvedReference {
				t.Fatalf("expected %q, got %q", RejectUnresolvedReference, rej.Kind)
			}
			if rej.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, rej.Field)
			}
		})
	}
}

func TestValidateAppointment_InvalidPrice(t *testing.T) {
	refs := mkRefs()

	for _, price := range []int64{0, -100} {
		c := &Candidate{Price: price, StartsAt: at(10, 0), EndsAt: at(11, 0)}
		rej := ValidateAppointment(c, refs, nil, uuid.Nil)
		if rej == nil {
			t.Fatalf("price %d: expected rejection", price)
		}
		if rej.Kind != RejectInvalidPrice {
			t.Fatalf("price %d: expected %q, got %q", price, RejectInvalidPrice, rej.Kind)
		}
	}
}

func TestValidateAppointment_Conflict(t *testing.T) {
	refs := mkRefs()
	professionalID := refs.Professional.ID

	// Professional is booked 10:00-11:00
	existing := []models.Appointment{mkAppointment(professionalID, at(10, 0), at(11, 0))}

	// 10:30-11:30 for the same professional conflicts
	c := &Candidate{Price: 5000, ProfessionalID: professionalID, StartsAt: at(10, 30), EndsAt: at(11, 30)}
	rej := ValidateAppointment(c, refs, existing, uuid.Nil)
	if rej == nil {
		t.Fatalf("expected conflict")
	}
	if rej.Kind != RejectSchedulingConflict {
		t.Fatalf("expected %q, got %q", RejectSchedulingConflict, rej.Kind)
	}
	if rej.ConflictsWith == nil || rej.ConflictsWith.ID != existing[0].ID {
		t.Fatalf("rejection did not identify the colliding appointment")
	}

	// 11:00-12:00 for the same professional is fine (back-to-back)
	c = &Candidate{Price: 5000, ProfessionalID: professionalID, StartsAt: at(11, 0), EndsAt: at(12, 0)}
	if rej := ValidateAppointment(c, refs, existing, uuid.Nil); rej != nil {
		t.Fatalf("expected ok, got %+v", rej)
	}

	// 10:30-11:30 for a different professional is fine
	otherRefs := mkRefs()
	c = &Candidate{Price: 5000, ProfessionalID: otherRefs.Professional.ID, StartsAt: at(10, 30), EndsAt: at(11, 30)}
	if rej := ValidateAppointment(c, otherRefs, existing, uuid.Nil); rej != nil {
		t.Fatalf("expected ok for different professional, got %+v", rej)
	}
}

func TestValidateAppointment_BackToBackNeverConflicts(t *testing.T) {
	refs := mkRefs()
	professionalID := refs.Professional.ID
	existing := []models.Appointment{mkAppointment(professionalID, at(10, 0), at(11, 0))}

	// Ending exactly when the existing one starts
	c := &Candidate{Price: 5000, ProfessionalID: professionalID, StartsAt: at(9, 0), EndsAt: at(10, 0)}
	if rej := ValidateAppointment(c, refs, existing, uuid.Nil); rej != nil {
		t.Fatalf("expected ok before, got %+v", rej)
	}

	// Starting exactly when the existing one ends
	c = &Candidate{Price: 5000, ProfessionalID: professionalID, StartsAt: at(11, 0), EndsAt: at(12, 0)}
	if rej := ValidateAppointment(c, refs, existing, uuid.Nil); rej != nil {
		t.Fatalf("expected ok after, got %+v", rej)
	}
}

func TestValidateAppointment_ExcludeIDSkipsOwnInterval(t *testing.T) {
	refs := mkRefs()
	professionalID := refs.Professional.ID

	own := mkAppointment(professionalID, at(10, 0), at(11, 0))
	other := mkAppointment(professionalID, at(14, 0), at(15, 0))
	existing := []models.Appointment{own, other}

	// Moving the appointment to 10:30-11:30 overlaps its own prior interval
	// only; with excludeID set that must succeed
	c := &Candidate{
		ID:             own.ID,
		Price:          5000,
		ProfessionalID: professionalID,
		StartsAt:       at(10, 30),
		EndsAt:         at(11, 30),
	}
	if rej := ValidateAppointment(c, refs, existing, own.ID); rej != nil {
		t.Fatalf("expected ok when excluding own id, got %+v", rej)
	}

	// Without excludeID the same edit collides with its own prior state
	if rej := ValidateAppointment(c, refs, existing, uuid.Nil); rej == nil {
		t.Fatalf("expected conflict without excludeID")
	}

	// Moving onto the other appointment still conflicts
	c.StartsAt = at(14, 30)
	c.EndsAt = at(15, 30)
	rej := ValidateAppointment(c, refs, existing, own.ID)
	if rej == nil || rej.Kind != RejectSchedulingConflict {
		t.Fatalf("expected conflict with other appointment, got %+v", rej)
	}
}

// Exhaustive pairwise check of the half-open overlap rule: a conflict is
// reported iff candidate.start < other.end && other.start < candidate.end.
func TestValidateAppointment_OverlapRule(t *testing.T) {
	refs := mkRefs()
	professionalID := refs.Professional.ID

	intervals := []struct{ s, e int }{
		{8, 9}, {9, 10}, {9, 11}, {10, 11}, {10, 12}, {11, 12}, {12, 14},
	}
	base := struct{ s, e int }{10, 11}
	existing := []models.Appointment{mkAppointment(professionalID, at(base.s, 0), at(base.e, 0))}

	for _, iv := range intervals {
		c := &Candidate{
			Price:          5000,
			ProfessionalID: professionalID,
			StartsAt:       at(iv.s, 0),
			EndsAt:         at(iv.e, 0),
		}
		wantConflict := iv.s < base.e && base.s < iv.e
		rej := ValidateAppointment(c, refs, existing, uuid.Nil)
		gotConflict := rej != nil && rej.Kind == RejectSchedulingConflict
		if gotConflict != wantConflict {
			t.Errorf("[%d,%d) vs [%d,%d): conflict=%v, want %v",
				iv.s, iv.e, base.s, base.e, gotConflict, wantConflict)
		}
	}
}

func TestValidateAppointment_DoesNotMutateExisting(t *testing.T) {
	refs := mkRefs()
	professionalID := refs.Professional.ID
	existing := []models.Appointment{
		mkAppointment(professionalID, at(10, 0), at(11, 0)),
		mkAppointment(professionalID, at(12, 0), at(13, 0)),
	}
	snapshot := make([]models.Appointment, len(existing))
	copy(snapshot, existing)

	c := &Candidate{Price: 5000, ProfessionalID: professionalID, StartsAt: at(10, 30), EndsAt: at(11, 30)}
	ValidateAppointment(c, refs, existing, uuid.Nil)

	for i := range existing {
		if existing[i].ID != snapshot[i].ID ||
			!existing[i].StartsAt.Equal(snapshot[i].StartsAt) ||
			!existing[i].EndsAt.Equal(snapshot[i].EndsAt) {
			t.Fatalf("existing appointments were mutated")
		}
	}
}
