package jobs

import (
	"log"
	"time"

	"github.com/stellarstyles/salon_backend/database"
	"github.com/stellarstyles/salon_backend/models"
	"github.com/stellarstyles/salon_backend/notifications"
)

// SendAppointmentReminders emails every customer with a confirmed
// appointment tomorrow. Runs once a day; appointments without an email on
// file are skipped since WhatsApp follow-up is manual.
func SendAppointmentReminders() {
	log.Println("Running job: SendAppointmentReminders...")

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	var upcoming []models.Appointment
	err := database.DB.
		Where("status = ? AND preferred_date = ?", models.StatusConfirmed, tomorrow).
		Find(&upcoming).Error
	if err != nil {
		log.Printf("Error checking for upcoming appointments: %v", err)
		return
	}

	if len(upcoming) == 0 {
		return
	}

	for _, appointment := range upcoming {
		if appointment.CustomerEmail == nil {
			continue
		}
		log.Printf("Sending reminder for appointment ID: %s", appointment.ID)

		go notifications.SendEmail(
			appointment.CustomerName,
			*appointment.CustomerEmail,
			"Reminder: Your Appointment is Tomorrow!",
			notifications.BookingReminderBody(appointment.ServiceType, appointment.PreferredDate, appointment.PreferredTime),
		)
	}
}
