package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stellarstyles/salon_backend/services"
)

// GetBookingOptions feeds the public booking form its fixed selects.
func GetBookingOptions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"services":   services.ServiceCatalog,
		"time_slots": services.TimeSlots,
	})
}

// GetCategories feeds the admin gallery and price forms.
func GetCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"gallery": services.GalleryCategories,
		"prices":  services.PriceCategories,
	})
}
