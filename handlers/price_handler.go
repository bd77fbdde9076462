package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stellarstyles/salon_backend/database"
	"github.com/stellarstyles/salon_backend/models"
)

type PriceItemRequest struct {
	ServiceName string  `json:"service_name" validate:"required,min=2"`
	Category    string  `json:"category" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Duration    *string `json:"duration"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// ListPrices is the public price list: active items only, grouped for
// display by category then service name.
func ListPrices(c *fiber.Ctx) error {
	var prices []models.PriceItem
	err := database.DB.
		Where("is_active = ?", true).
		Order("category asc").
		Order("service_name asc").
		Find(&prices).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load prices"})
	}

	return c.JSON(prices)
}

// AdminListPrices includes inactive items so the admin can re-enable them.
func AdminListPrices(c *fiber.Ctx) error {
	var prices []models.PriceItem
	err := database.DB.
		Order("category asc").
		Order("service_name asc").
		Find(&prices).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load prices"})
	}

	return c.JSON(prices)
}

func AdminCreatePrice(c *fiber.Ctx) error {
	var req PriceItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	item := models.PriceItem{
		ServiceName: req.ServiceName,
		Category:    req.Category,
		Price:       req.Price,
		Duration:    req.Duration,
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := database.DB.Create(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save price item"})
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func AdminUpdatePrice(c *fiber.Ctx) error {
	var req PriceItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	priceID := c.Params("priceId")

	var item models.PriceItem
	if err := database.DB.First(&item, "id = ?", priceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Price item not found"})
	}

	item.ServiceName = req.ServiceName
	item.Category = req.Category
	item.Price = req.Price
	item.Duration = req.Duration
	item.Description = req.Description
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := database.DB.Save(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update price item"})
	}

	return c.JSON(item)
}

func AdminDeletePrice(c *fiber.Ctx) error {
	priceID := c.Params("priceId")

	var item models.PriceItem
	if err := database.DB.First(&item, "id = ?", priceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Price item not found"})
	}

	if err := database.DB.Delete(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete price item"})
	}

	return c.JSON(fiber.Map{"message": "Price item deleted"})
}
