package controllers

import (
	"net/http"
	"time"

	"salonbook-backend/config"
	"salonbook-backend/models"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DashboardOverview struct {
	TotalClients       int64                `json:"totalClients"`
	TotalProfessionals int64                `json:"totalProfessionals"`
	MonthlyIncome      int64                `json:"monthlyIncome"`  // minor currency units
	MonthlyExpenses    int64                `json:"monthlyExpenses"` // minor currency units
	TodaysAppointments []models.Appointment `json:"todaysAppointments"`
	UpcomingCount      int64                `json:"upcomingCount"`
}

func GetDashboardOverview(c *gin.Context) {
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

	var overview DashboardOverview
	now := time.Now()
	dayStart := utils.BeginningOfDay(now)
	dayEnd := utils.EndOfDay(now)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	if err := config.DB.Model(&models.Client{}).
		Where("user_id = ? AND is_active = true", userUUID).
		Count(&overview.TotalClients).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to count clients")
		return
	}

	if err := config.DB.Model(&models.Professional{}).
		Where("user_id = ? AND is_active = true", userUUID).
		Count(&overview.TotalProfessionals).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to count professionals")
		return
	}

	// Monthly totals from financial entries, split by type
	type sumResult struct {
		Total int64
	}
	var income, expenses sumResult
	if err := config.DB.Model(&models.FinancialEntry{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("user_id = ? AND type = ? AND date >= ?", userUUID, models.EntryTypeIncome, monthStart).
		Scan(&income).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to sum income")
		return
	}
	if err := config.DB.Model(&models.FinancialEntry{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("user_id = ? AND type = ? AND date >= ?", userUUID, models.EntryTypeExpense, monthStart).
		Scan(&expenses).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to sum expenses")
		return
	}
	overview.MonthlyIncome = income.Total
	overview.MonthlyExpenses = expenses.Total

	if err := config.DB.Where("user_id = ? AND starts_at BETWEEN ? AND ?", userUUID, dayStart, dayEnd).
		Order("starts_at asc").
		Find(&overview.TodaysAppointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load today's appointments")
		return
	}

	if err := config.DB.Model(&models.Appointment{}).
		Where("user_id = ? AND starts_at > ?", userUUID, now).
		Count(&overview.UpcomingCount).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to count upcoming appointments")
		return
	}

	c.JSON(http.StatusOK, overview)
}
