// services/reminder_service.go
package services

import (
	"log"
	"os"
	"strings"
	"time"

	"salonbook-backend/models"
	"salonbook-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	// Initialize Twilio client
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 8 AM
	c.AddFunc("0 8 * * *", func() {
		s.SendDailyReminders()
	})

	c.Start()
	log.Println("Appointment reminder scheduler started")
}

// SendDailyReminders notifies every owner's clients about tomorrow's
// appointments.
func (s *ReminderService) SendDailyReminders() {
	log.Println("Starting daily reminder processing...")

	var owners []models.User
	if err := s.db.Find(&owners, "is_active = ? AND appointment_reminders = ?", true, true).Error; err != nil {
		log.Printf("Failed to fetch owners: %v", err)
		return
	}

	for _, owner := range owners {
		s.ProcessOwnerReminders(&owner)
	}

	log.Println("Daily reminder processing completed")
}

func (s *ReminderService) ProcessOwnerReminders(owner *models.User) {
	tomorrow := time.Now().AddDate(0, 0, 1)
	dayStart := utils.BeginningOfDay(tomorrow)
	dayEnd := utils.EndOfDay(tomorrow)

	var appointments []models.Appointment
	err := s.db.Where("user_id = ? AND starts_at BETWEEN ? AND ?", owner.ID, dayStart, dayEnd).
		Order("starts_at asc").
		Find(&appointments).Error
	if err != nil {
		log.Printf("Owner %s: Failed to fetch tomorrow's appointments: %v", owner.ID, err)
		return
	}
	if len(appointments) == 0 {
		return
	}

	// Get the active appointment template for this owner
	var template models.ReminderTemplate
	if err := s.db.Where("user_id = ? AND type = ? AND is_active = true", owner.ID, "appointment").
		First(&template).Error; err != nil {
		log.Printf("Owner %s: No active appointment template: %v", owner.ID, err)
		return
	}

	for i := range appointments {
		s.sendAppointmentReminder(owner, &appointments[i], &template)
	}
}

func (s *ReminderService) sendAppointmentReminder(owner *models.User, appt *models.Appointment, template *models.ReminderTemplate) {
	var client models.Client
	if err := s.db.Where("user_id = ? AND id = ?", owner.ID, appt.ClientID).
		First(&client).Error; err != nil {
		log.Printf("Owner %s: Failed to load client %s: %v", owner.ID, appt.ClientID, err)
		return
	}

	// Replace placeholders in the template
	message := strings.ReplaceAll(template.Message, "[ClientName]", client.Name)
	message = strings.ReplaceAll(message, "[ServiceName]", appt.ServiceName)
	message = strings.ReplaceAll(message, "[Time]", appt.StartsAt.Format("15:04"))

	// Determine channel (WhatsApp if available, else SMS)
	channel := "sms"
	var to string

	if owner.WhatsAppNotifications && strings.HasPrefix(client.Phone, "+") {
		to = "whatsapp:" + client.Phone
		channel = "whatsapp"
	} else {
		to = client.Phone
	}

	// Send message via Twilio
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send reminder to %s: %v", client.Phone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Reminder sent to %s, SID: %s", client.Phone, *resp.Sid)
	} else {
		log.Printf("Reminder sent to %s, but no SID returned", client.Phone)
	}

	// Log the reminder
	reminderLog := models.ReminderLog{
		UserID:        owner.ID,
		AppointmentID: appt.ID,
		ClientID:      client.ID,
		TemplateID:    template.ID,
		Message:       message,
		Status:        status,
		ErrorMessage:  errorMsg,
		Channel:       channel,
		SentAt:        time.Now(),
	}

	if err := s.db.Create(&reminderLog).Error; err != nil {
		log.Printf("Failed to log reminder for client %s: %v", client.ID, err)
	}
}
