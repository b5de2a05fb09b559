// controllers/appointment.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"salonbook-backend/config"
	"salonbook-backend/models"
	"salonbook-backend/services"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateAppointmentInput defines the expected JSON structure for booking an
// appointment. EndsAt and Price may be omitted; they are derived from the
// selected service.
type CreateAppointmentInput struct {
	ClientID       uuid.UUID  `json:"clientId" binding:"required"`
	ProfessionalID uuid.UUID  `json:"professionalId" binding:"required"`
	ServiceID      uuid.UUID  `json:"serviceId" binding:"required"`
	StartsAt       time.Time  `json:"startsAt" binding:"required"`
	EndsAt         *time.Time `json:"endsAt"`
	Price          *int64     `json:"price"` // minor currency units
}

// UpdateAppointmentInput defines the expected JSON structure for editing an
// appointment
type UpdateAppointmentInput struct {
	ClientID       *uuid.UUID `json:"clientId"`
	ProfessionalID *uuid.UUID `json:"professionalId"`
	ServiceID      *uuid.UUID `json:"serviceId"`
	StartsAt       *time.Time `json:"startsAt"`
	EndsAt         *time.Time `json:"endsAt"`
	Price          *int64     `json:"price"`
	Attended       *bool      `json:"attended"`
}

// errSlotTaken signals that the in-transaction overlap recheck found a
// competing appointment committed after the snapshot was validated
var errSlotTaken = errors.New("time slot already taken")

// resolveReferences loads the owner's client, professional and service rows a
// candidate points at. Missing rows stay nil so the scheduler can report
// which reference failed to resolve; only infrastructure errors are returned.
func resolveReferences(userID uuid.UUID, cand *services.Candidate) (services.References, error) {
	var refs services.References

	var client models.Client
	err := config.DB.Where("user_id = ? AND id = ?", userID, cand.ClientID).First(&client).Error
	if err == nil {
		refs.Client = &client
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return refs, err
	}

	var professional models.Professional
	err = config.DB.Where("user_id = ? AND id = ?", userID, cand.ProfessionalID).First(&professional).Error
	if err == nil {
		refs.Professional = &professional
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return refs, err
	}

	var service models.Service
	err = config.DB.Where("user_id = ? AND id = ?", userID, cand.ServiceID).First(&service).Error
	if err == nil {
		refs.Service = &service
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return refs, err
	}

	return refs, nil
}

func respondRejection(c *gin.Context, rejection *services.Rejection) {
	status := http.StatusBadRequest
	if rejection.Kind == services.RejectSchedulingConflict {
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": rejection.Message, "rejection": rejection})
}

// CreateAppointment books a new appointment after running the scheduling
// checks
func CreateAppointment(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	candidate := services.Candidate{
		ClientID:       input.ClientID,
		ProfessionalID: input.ProfessionalID,
		ServiceID:      input.ServiceID,
		StartsAt:       input.StartsAt,
	}
	if input.EndsAt != nil {
		candidate.EndsAt = *input.EndsAt
	}
	if input.Price != nil {
		candidate.Price = *input.Price
	}

	refs, err := resolveReferences(userUUID, &candidate)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	// Fill end time and price from the service when the caller omitted them
	services.DeriveDefaults(&candidate, refs.Service)

	if fieldErrs := models.ValidateAppointmentTimes(candidate.StartsAt, candidate.EndsAt); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": fieldErrs})
		return
	}

	// Snapshot of the professional's existing appointments for the conflict scan
	var existing []models.Appointment
	if err := config.DB.Where("user_id = ? AND professional_id = ?", userUUID, candidate.ProfessionalID).
		Find(&existing).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load existing appointments")
		return
	}

	if rejection := services.ValidateAppointment(&candidate, refs, existing, uuid.Nil); rejection != nil {
		respondRejection(c, rejection)
		return
	}

	appointment := models.Appointment{
		UserID:         userUUID,
		ClientID:       candidate.ClientID,
		ProfessionalID: candidate.ProfessionalID,
		ServiceID:      candidate.ServiceID,
		ClientName:     refs.Client.Name,
		ServiceName:    refs.Service.Name,
		Price:          candidate.Price,
		StartsAt:       candidate.StartsAt,
		EndsAt:         candidate.EndsAt,
		Attended:       false,
	}

	// Re-check overlap inside the transaction so two requests that validated
	// against the same snapshot cannot both commit
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		overlap, err := services.HasOverlap(tx, userUUID, candidate.ProfessionalID,
			candidate.StartsAt, candidate.EndsAt, uuid.Nil)
		if err != nil {
			return err
		}
		if overlap {
			return errSlotTaken
		}
		return tx.Create(&appointment).Error
	})
	if err != nil {
		if errors.Is(err, errSlotTaken) {
			utils.RespondWithError(c, http.StatusConflict, "Professional is already booked for this time")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create appointment")
		}
		return
	}

	c.JSON(http.StatusCreated, appointment)
}

// GetAppointments retrieves the owner's appointments, optionally filtered by
// professional and time window
func GetAppointments(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	query := config.DB.Where("user_id = ?", userUUID)

	if professionalID := c.Query("professionalId"); professionalID != "" {
		professionalUUID, err := uuid.Parse(professionalID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid professional ID format")
			return
		}
		query = query.Where("professional_id = ?", professionalUUID)
	}

	if from := c.Query("from"); from != "" {
		fromTime, err := time.Parse(time.RFC3339, from)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid 'from' timestamp")
			return
		}
		query = query.Where("ends_at > ?", fromTime)
	}

	if to := c.Query("to"); to != "" {
		toTime, err := time.Parse(time.RFC3339, to)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid 'to' timestamp")
			return
		}
		query = query.Where("starts_at < ?", toTime)
	}

	var appointments []models.Appointment
	if err := query.Order("starts_at asc").Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// GetAppointment retrieves a specific appointment by ID
func GetAppointment(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var appointment models.Appointment
	if err := config.DB.Where("user_id = ? AND id = ?", userUUID, appointmentUUID).
		First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// UpdateAppointment edits an appointment through the same validation path as
// creation; the appointment is excluded from colliding with its own prior
// interval
func UpdateAppointment(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var input UpdateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var appointment models.Appointment
	if err := config.DB.Where("user_id = ? AND id = ?", userUUID, appointmentUUID).
		First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	candidate := services.Candidate{
		ID:             appointment.ID,
		ClientID:       appointment.ClientID,
		ProfessionalID: appointment.ProfessionalID,
		ServiceID:      appointment.ServiceID,
		Price:          appointment.Price,
		StartsAt:       appointment.StartsAt,
		EndsAt:         appointment.EndsAt,
	}

	rederive := false
	if input.ClientID != nil {
		candidate.ClientID = *input.ClientID
	}
	if input.ProfessionalID != nil {
		candidate.ProfessionalID = *input.ProfessionalID
	}
	if input.ServiceID != nil && *input.ServiceID != candidate.ServiceID {
		candidate.ServiceID = *input.ServiceID
		rederive = true
	}
	if input.StartsAt != nil && !input.StartsAt.Equal(candidate.StartsAt) {
		candidate.StartsAt = *input.StartsAt
		rederive = true
	}
	if input.EndsAt != nil {
		candidate.EndsAt = *input.EndsAt
		rederive = false
	}
	if input.Price != nil {
		candidate.Price = *input.Price
	}

	refs, err := resolveReferences(userUUID, &candidate)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	// A changed service or start time re-derives the end time and price
	// unless the caller pinned the end time explicitly
	if rederive {
		candidate.EndsAt = time.Time{}
		if input.Price == nil && input.ServiceID != nil {
			candidate.Price = 0
		}
		services.DeriveDefaults(&candidate, refs.Service)
	}

	if fieldErrs := models.ValidateAppointmentTimes(candidate.StartsAt, candidate.EndsAt); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": fieldErrs})
		return
	}

	var existing []models.Appointment
	if err := config.DB.Where("user_id = ? AND professional_id = ?", userUUID, candidate.ProfessionalID).
		Find(&existing).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load existing appointments")
		return
	}

	if rejection := services.ValidateAppointment(&candidate, refs, existing, appointment.ID); rejection != nil {
		respondRejection(c, rejection)
		return
	}

	appointment.ClientID = candidate.ClientID
	appointment.ProfessionalID = candidate.ProfessionalID
	appointment.ServiceID = candidate.ServiceID
	appointment.ClientName = refs.Client.Name
	appointment.ServiceName = refs.Service.Name
	appointment.Price = candidate.Price
	appointment.StartsAt = candidate.StartsAt
	appointment.EndsAt = candidate.EndsAt
	if input.Attended != nil {
		appointment.Attended = *input.Attended
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		overlap, err := services.HasOverlap(tx, userUUID, candidate.ProfessionalID,
			candidate.StartsAt, candidate.EndsAt, appointment.ID)
		if err != nil {
			return err
		}
		if overlap {
			return errSlotTaken
		}
		return tx.Save(&appointment).Error
	})
	if err != nil {
		if errors.Is(err, errSlotTaken) {
			utils.RespondWithError(c, http.StatusConflict, "Professional is already booked for this time")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		}
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// DeleteAppointment cancels an appointment
func DeleteAppointment(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	result := config.DB.Where("user_id = ? AND id = ?", userUUID, appointmentUUID).
		Delete(&models.Appointment{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete appointment")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}
