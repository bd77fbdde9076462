package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stellarstyles/salon_backend/handlers"
	"github.com/stellarstyles/salon_backend/middleware"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Get("/dashboard", handlers.AdminDashboard)
	admin.Get("/upload-signature", handlers.GenerateUploadSignature)

	appointments := admin.Group("/appointments")
	appointments.Get("", handlers.AdminListAppointments)
	appointments.Get("/calendar", handlers.AdminAppointmentCalendar)
	appointments.Patch("/:appointmentId/status", handlers.UpdateAppointmentStatus)

	gallery := admin.Group("/gallery")
	gallery.Get("", handlers.ListGalleryStyles)
	gallery.Post("", handlers.AdminCreateGalleryStyle)
	gallery.Patch("/:styleId/featured", handlers.AdminSetStyleFeatured)
	gallery.Delete("/:styleId", handlers.AdminDeleteGalleryStyle)

	prices := admin.Group("/prices")
	prices.Get("", handlers.AdminListPrices)
	prices.Post("", handlers.AdminCreatePrice)
	prices.Put("/:priceId", handlers.AdminUpdatePrice)
	prices.Delete("/:priceId", handlers.AdminDeletePrice)

	customers := admin.Group("/customers")
	customers.Get("", handlers.AdminListCustomers)
	customers.Post("", handlers.AdminCreateCustomer)
	customers.Put("/:customerId", handlers.AdminUpdateCustomer)
	customers.Delete("/:customerId", handlers.AdminDeleteCustomer)
}
