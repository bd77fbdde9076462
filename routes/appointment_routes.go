package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stellarstyles/salon_backend/handlers"
)

func AppointmentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	appointments := api.Group("/appointments")
	appointments.Post("", handlers.CreateAppointment)
	appointments.Get("/track", handlers.TrackAppointments)
}
