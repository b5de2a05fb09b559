// services/scheduler.go
package services

import (
	"fmt"
	"time"

	"salonbook-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rejection kinds returned by ValidateAppointment.
const (
	RejectInvalidInterval     = "invalid_interval"
	RejectUnresolvedReference = "unresolved_reference"
	RejectInvalidPrice        = "invalid_price"
	RejectSchedulingConflict  = "scheduling_conflict"
)

// Candidate is a not-yet-validated appointment payload, either new
// (ID == uuid.Nil) or an edit of an existing appointment.
type Candidate struct {
	ID             uuid.UUID
	ClientID       uuid.UUID
	ProfessionalID uuid.UUID
	ServiceID      uuid.UUID
	Price          int64 // minor currency units; 0 means not yet set
	StartsAt       time.Time
	EndsAt         time.Time
}

// References holds the resolved records a candidate points at. A nil field
// means the referenced id did not resolve to a record owned by the caller.
type References struct {
	Client       *models.Client
	Professional *models.Professional
	Service      *models.Service
}

// Rejection explains why a candidate cannot be committed. Field is set for
// unresolved references; ConflictsWith is set for scheduling conflicts.
type Rejection struct {
	Kind          string              `json:"kind"`
	Field         string              `json:"field,omitempty"`
	ConflictsWith *models.Appointment `json:"conflictsWith,omitempty"`
	Message       string              `json:"message"`
}

// DeriveDefaults fills in the candidate's end time and price from the
// selected service. An end time or price the caller already set is left
// alone, and a nil service leaves the candidate untouched. Calling this
// twice with the same inputs yields the same candidate.
func DeriveDefaults(c *Candidate, service *models.Service) {
	if service == nil {
		return
	}
	if c.EndsAt.IsZero() && !c.StartsAt.IsZero() && service.Duration > 0 {
		c.EndsAt = c.StartsAt.Add(time.Duration(service.Duration) * time.Minute)
	}
	if c.Price == 0 {
		c.Price = service.Price
	}
}

// ValidateAppointment decides whether a candidate may be committed given the
// owner's existing appointments. It is pure: no I/O, no mutation of existing.
//
// Checks run in order: the interval must be well-formed (EndsAt strictly
// after StartsAt), all three references must have resolved, the price must be
// positive, and the candidate must not overlap any existing appointment for
// the same professional. Intervals are half-open, so an appointment ending at
// T never conflicts with one starting at T. When editing, pass the
// appointment's own id as excludeID so it does not collide with its prior
// state. Returns nil when the candidate may be committed.
func ValidateAppointment(c *Candidate, refs References, existing []models.Appointment, excludeID uuid.UUID) *Rejection {
	if c.StartsAt.IsZero() || c.EndsAt.IsZero() || !c.EndsAt.After(c.StartsAt) {
		return &Rejection{
			Kind:    RejectInvalidInterval,
			Message: "end time must be strictly after start time",
		}
	}

	if refs.Client == nil {
		return unresolved("clientId")
	}
	if refs.Professional == nil {
		return unresolved("professionalId")
	}
	if refs.Service == nil {
		return unresolved("serviceId")
	}

	if c.Price <= 0 {
		return &Rejection{
			Kind:    RejectInvalidPrice,
			Message: "price must be positive",
		}
	}

	for i := range existing {
		other := &existing[i]
		if other.ProfessionalID != c.ProfessionalID {
			continue
		}
		if excludeID != uuid.Nil && other.ID == excludeID {
			continue
		}
		if c.StartsAt.Before(other.EndsAt) && other.StartsAt.Before(c.EndsAt) {
			return &Rejection{
				Kind:          RejectSchedulingConflict,
				ConflictsWith: other,
				Message: fmt.Sprintf("professional already booked from %s to %s",
					other.StartsAt.Format(time.RFC3339), other.EndsAt.Format(time.RFC3339)),
			}
		}
	}

	return nil
}

func unresolved(field string) *Rejection {
	return &Rejection{
		Kind:    RejectUnresolvedReference,
		Field:   field,
		Message: field + " does not reference an existing record",
	}
}

// HasOverlap re-runs the conflict check against the database. Controllers
// call it inside the commit transaction so two requests validating against
// the same stale snapshot cannot both insert; on Postgres the exclusion
// constraint backs this up at the storage layer.
func HasOverlap(db *gorm.DB, userID, professionalID uuid.UUID, startsAt, endsAt time.Time, excludeID uuid.UUID) (bool, error) {
	query := db.Model(&models.Appointment{}).
		Where("user_id = ? AND professional_id = ?", userID, professionalID).
		Where("starts_at < ? AND ends_at > ?", endsAt, startsAt)

	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
