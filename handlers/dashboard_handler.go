package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stellarstyles/salon_backend/database"
	"github.com/stellarstyles/salon_backend/models"
)

// AdminDashboard returns the counts shown on the admin landing page,
// including the pending-appointments badge.
func AdminDashboard(c *fiber.Ctx) error {
	var appointmentCount, pendingCount, styleCount, priceCount, customerCount int64

	if err := database.DB.Model(&models.Appointment{}).Count(&appointmentCount).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	database.DB.Model(&models.Appointment{}).Where("status = ?", models.StatusPending).Count(&pendingCount)
	database.DB.Model(&models.GalleryStyle{}).Count(&styleCount)
	database.DB.Model(&models.PriceItem{}).Count(&priceCount)
	database.DB.Model(&models.CustomerRecord{}).Count(&customerCount)

	return c.JSON(fiber.Map{
		"appointments":         appointmentCount,
		"pending_appointments": pendingCount,
		"gallery_styles":       styleCount,
		"price_items":          priceCount,
		"customer_records":     customerCount,
	})
}
