package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stellarstyles/salon_backend/database"
	"github.com/stellarstyles/salon_backend/models"
	"github.com/stellarstyles/salon_backend/notifications"
	"github.com/stellarstyles/salon_backend/services"
	"github.com/stellarstyles/salon_backend/utils"
	"github.com/stellarstyles/salon_backend/websocket"
	"gorm.io/gorm"
)

type CreateAppointmentRequest struct {
	CustomerName  string  `json:"customer_name" validate:"required,min=2"`
	CustomerPhone string  `json:"customer_phone" validate:"required"`
	CustomerEmail *string `json:"customer_email" validate:"omitempty,email"`
	ServiceType   string  `json:"service_type" validate:"required"`
	PreferredDate string  `json:"preferred_date" validate:"required,datetime=2006-01-02"`
	PreferredTime string  `json:"preferred_time" validate:"required"`
	Notes         *string `json:"notes"`
}

// CreateAppointment takes a booking request from the public form. All
// validation happens before anything is written; the status is always
// pending regardless of what the client sends.
func CreateAppointment(c *fiber.Ctx) error {
	var req CreateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !services.ValidTimeSlot(req.PreferredTime) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Preferred time must be one of the offered slots"})
	}

	var appointment models.Appointment
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		reference, err := utils.GenerateUniqueReference(tx)
		if err != nil {
			return err
		}

		appointment = models.Appointment{
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			CustomerEmail: req.CustomerEmail,
			ServiceType:   req.ServiceType,
			PreferredDate: req.PreferredDate,
			PreferredTime: req.PreferredTime,
			Notes:         req.Notes,
			Status:        models.StatusPending,
			Reference:     reference,
		}
		return tx.Create(&appointment).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create appointment"})
	}

	if appointment.CustomerEmail != nil {
		go notifications.SendEmail(
			appointment.CustomerName,
			*appointment.CustomerEmail,
			"We've Received Your Booking Request",
			notifications.BookingReceivedBody(appointment.ServiceType, appointment.PreferredDate, appointment.PreferredTime, appointment.Reference),
		)
	}
	websocket.Notify("appointment_created", appointment)

	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// TrackAppointments is the customer-facing lookup. The phone number is the
// sole key and matching is exact; a number one digit short finds nothing.
func TrackAppointments(c *fiber.Ctx) error {
	phone := c.Query("phone")
	if phone == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Phone number is required"})
	}

	var appointments []models.Appointment
	err := database.DB.
		Where("customer_phone = ?", phone).
		Order("preferred_date desc").
		Find(&appointments).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load appointments"})
	}

	return c.JSON(fiber.Map{
		"appointments": appointments,
		"count":        len(appointments),
	})
}

// AdminListAppointments returns the full list with an optional status
// filter, plus the pending count for the badge.
func AdminListAppointments(c *fiber.Ctx) error {
	filter := c.Query("status", "all")
	if filter != "all" && !models.ValidStatus(filter) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown status filter"})
	}

	var appointments []models.Appointment
	err := database.DB.
		Order("preferred_date asc").
		Order("preferred_time asc").
		Find(&appointments).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load appointments"})
	}

	return c.JSON(fiber.Map{
		"appointments":  services.FilterByStatus(appointments, filter),
		"pending_count": services.PendingCount(appointments),
		"filter":        filter,
	})
}

// AdminAppointmentCalendar renders the month grid. Without year/month params
// it shows the month containing today, which is also how the frontend's
// "Today" button works: it just drops the params.
func AdminAppointmentCalendar(c *fiber.Ctx) error {
	now := time.Now()
	year := now.Year()
	month := now.Month()

	if y := c.Query("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid year"})
		}
		year = parsed
	}
	if m := c.Query("month"); m != "" {
		parsed, err := strconv.Atoi(m)
		if err != nil || parsed < 1 || parsed > 12 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Month must be between 1 and 12"})
		}
		month = time.Month(parsed)
	}

	var appointments []models.Appointment
	err := database.DB.
		Order("preferred_date asc").
		Order("preferred_time asc").
		Find(&appointments).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load appointments"})
	}

	grid := services.BuildMonthGrid(appointments, year, month, now)
	prevYear, prevMonth := services.PreviousMonth(year, month)
	nextYear, nextMonth := services.NextMonth(year, month)

	return c.JSON(fiber.Map{
		"grid": grid,
		"previous": fiber.Map{"year": prevYear, "month": int(prevMonth)},
		"next":     fiber.Map{"year": nextYear, "month": int(nextMonth)},
	})
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

// UpdateAppointmentStatus applies an admin status change. The transition
// table is checked here, server side, so an illegal move fails even if a
// client bypasses the UI. Only the status column is written; the preferred
// date, time and creation timestamp never change.
func UpdateAppointmentStatus(c *fiber.Ctx) error {
	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	appointmentID := c.Params("appointmentId")

	var appointment models.Appointment
	if err := database.DB.First(&appointment, "id = ?", appointmentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Appointment not found"})
	}

	if !models.CanTransition(appointment.Status, req.Status) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "Cannot change status from " + appointment.Status + " to " + req.Status,
		})
	}

	if appointment.Status == req.Status {
		// Idempotent re-apply, nothing to write.
		return c.JSON(appointment)
	}

	err := database.DB.Model(&models.Appointment{}).
		Where("id = ?", appointment.ID).
		Update("status", req.Status).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update status"})
	}
	appointment.Status = req.Status

	if appointment.CustomerEmail != nil {
		switch req.Status {
		case models.StatusConfirmed:
			go notifications.SendEmail(
				appointment.CustomerName,
				*appointment.CustomerEmail,
				"Your Appointment is Confirmed!",
				notifications.BookingConfirmedBody(appointment.ServiceType, appointment.PreferredDate, appointment.PreferredTime),
			)
		case models.StatusCancelled:
			go notifications.SendEmail(
				appointment.CustomerName,
				*appointment.CustomerEmail,
				"Your Appointment Request",
				notifications.BookingCancelledBody(appointment.ServiceType, appointment.PreferredDate),
			)
		}
	}
	websocket.Notify("status_changed", appointment)

	return c.JSON(appointment)
}
