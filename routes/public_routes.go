package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stellarstyles/salon_backend/handlers"
)

func PublicRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/styles", handlers.ListGalleryStyles)
	api.Get("/prices", handlers.ListPrices)
	api.Get("/booking-options", handlers.GetBookingOptions)
	api.Get("/categories", handlers.GetCategories)
}
