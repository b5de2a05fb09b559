package controllers

import (
	"errors"
	"net/http"
	"time"

	"salonbook-backend/config"
	"salonbook-backend/models"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateFinancialEntryInput defines the expected JSON structure for creating a
// financial entry
type CreateFinancialEntryInput struct {
	Description string    `json:"description" binding:"required"`
	Amount      int64     `json:"amount" binding:"required"` // minor currency units
	Type        string    `json:"type" binding:"required,oneof=income expense"`
	EntryType   string    `json:"entryType" binding:"required,oneof=one-off recurring"`
	Date        time.Time `json:"date" binding:"required"`
}

// UpdateFinancialEntryInput defines the expected JSON structure for updating a
// financial entry
type UpdateFinancialEntryInput struct {
	Description *string    `json:"description"`
	Amount      *int64     `json:"amount"`
	Type        *string    `json:"type" binding:"omitempty,oneof=income expense"`
	EntryType   *string    `json:"entryType" binding:"omitempty,oneof=one-off recurring"`
	Date        *time.Time `json:"date"`
}

// CreateFinancialEntry records a new income or expense entry
func CreateFinancialEntry(c *gin.Context) {
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

	var input CreateFinancialEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if fieldErrs := models.ValidateFinancialEntry(input.Description, input.Amount, input.Type, input.EntryType, input.Date); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": fieldErrs})
		return
	}

	entry := models.FinancialEntry{
		ID:          uuid.New(),
		UserID:      userUUID,
		Description: input.Description,
		Amount:      input.Amount,
		Type:        input.Type,
		EntryType:   input.EntryType,
		Date:        input.Date,
	}

	if err := config.DB.Create(&entry).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create financial entry")
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// GetFinancialEntries retrieves the owner's financial entries, optionally
// filtered by type and date range
func GetFinancialEntries(c *gin.Context) {
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

	if entryType := c.Query("type"); entryType != "" {
		if entryType != models.EntryTypeIncome && entryType != models.EntryTypeExpense {
			utils.RespondWithError(c, http.StatusBadRequest, "Type must be income or expense")
			return
		}
		query = query.Where("type = ?", entryType)
	}

	if from := c.Query("from"); from != "" {
		fromTime, err := time.Parse(time.RFC3339, from)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid 'from' timestamp")
			return
		}
		query = query.Where("date >= ?", fromTime)
	}

	if to := c.Query("to"); to != "" {
		toTime, err := time.Parse(time.RFC3339, to)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid 'to' timestamp")
			return
		}
		query = query.Where("date < ?", toTime)
	}

	var entries []models.FinancialEntry
	if err := query.Order("date desc").Find(&entries).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve financial entries")
		return
	}

	c.JSON(http.StatusOK, entries)
}

// GetFinancialEntry retrieves a specific financial entry by ID
func GetFinancialEntry(c *gin.Context) {
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

	entryUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid entry ID format")
		return
	}

	var entry models.FinancialEntry
	if err := config.DB.Where("user_id = ? AND id = ?", userUUID, entryUUID).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Financial entry not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, entry)
}

// UpdateFinancialEntry updates an existing financial entry
func UpdateFinancialEntry(c *gin.Context) {
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

	entryUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid entry ID format")
		return
	}

	var input UpdateFinancialEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var entry models.FinancialEntry
	if err := config.DB.Where("user_id = ? AND id = ?", userUUID, entryUUID).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Financial entry not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Update fields if provided
	if input.Description != nil {
		entry.Description = *input.Description
	}
	if input.Amount != nil {
		entry.Amount = *input.Amount
	}
	if input.Type != nil {
		entry.Type = *input.Type
	}
	if input.EntryType != nil {
		entry.EntryType = *input.EntryType
	}
	if input.Date != nil {
		entry.Date = *input.Date
	}

	if fieldErrs := models.ValidateFinancialEntry(entry.Description, entry.Amount, entry.Type, entry.EntryType, entry.Date); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": fieldErrs})
		return
	}

	if err := config.DB.Save(&entry).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update financial entry")
		return
	}

	c.JSON(http.StatusOK, entry)
}

// DeleteFinancialEntry deletes a financial entry
func DeleteFinancialEntry(c *gin.Context) {
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

	entryUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid entry ID format")
		return
	}

	result := config.DB.Where("user_id = ? AND id = ?", userUUID, entryUUID).
		Delete(&models.FinancialEntry{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete financial entry")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Financial entry not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Financial entry deleted successfully"})
}
