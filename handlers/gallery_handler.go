package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	config "github.com/stellarstyles/salon_backend/configs"
	"github.com/stellarstyles/salon_backend/database"
	"github.com/stellarstyles/salon_backend/models"
)

const galleryFolder = "stellar_styles_gallery"

// ListGalleryStyles is the public gallery feed, newest first. Supports
// equality filters on category and the featured flag.
func ListGalleryStyles(c *fiber.Ctx) error {
	query := database.DB.Order("created_at desc")

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if c.Query("featured") == "true" {
		query = query.Where("is_featured = ?", true)
	}

	var styles []models.GalleryStyle
	if err := query.Find(&styles).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load gallery styles"})
	}

	return c.JSON(styles)
}

// AdminCreateGalleryStyle uploads the image to Cloudinary first and only
// writes the row once the asset exists, so the gallery never references a
// missing image.
func AdminCreateGalleryStyle(c *fiber.Ctx) error {
	title := c.FormValue("title")
	category := c.FormValue("category")
	description := c.FormValue("description")

	if title == "" || category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Title and category are required"})
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Image file is required"})
	}

	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to initialize Cloudinary"})
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadResult, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   galleryFolder,
		PublicID: fmt.Sprintf("style_%d", time.Now().UnixNano()),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to upload image"})
	}

	style := models.GalleryStyle{
		Title:         title,
		Category:      category,
		ImageURL:      uploadResult.SecureURL,
		ImagePublicID: uploadResult.PublicID,
		IsFeatured:    c.FormValue("is_featured") == "true",
	}
	if description != "" {
		style.Description = &description
	}

	if err := database.DB.Create(&style).Error; err != nil {
		// Roll back the orphaned upload so storage stays in step with the DB.
		_, _ = cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: uploadResult.PublicID})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save gallery style"})
	}

	return c.Status(fiber.StatusCreated).JSON(style)
}

type FeaturedRequest struct {
	IsFeatured bool `json:"is_featured"`
}

func AdminSetStyleFeatured(c *fiber.Ctx) error {
	var req FeaturedRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	styleID := c.Params("styleId")

	var style models.GalleryStyle
	if err := database.DB.First(&style, "id = ?", styleID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Gallery style not found"})
	}

	if err := database.DB.Model(&style).Update("is_featured", req.IsFeatured).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update gallery style"})
	}
	style.IsFeatured = req.IsFeatured

	return c.JSON(style)
}

// AdminDeleteGalleryStyle destroys the Cloudinary asset, then the row. A
// failed destroy is logged via the error response and aborts the delete so
// the image is never silently orphaned.
func AdminDeleteGalleryStyle(c *fiber.Ctx) error {
	styleID := c.Params("styleId")

	var style models.GalleryStyle
	if err := database.DB.First(&style, "id = ?", styleID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Gallery style not found"})
	}

	if style.ImagePublicID != "" {
		cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to initialize Cloudinary"})
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if _, err := cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: style.ImagePublicID}); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete image"})
		}
	}

	if err := database.DB.Delete(&style).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete gallery style"})
	}

	return c.JSON(fiber.Map{"message": "Gallery style deleted"})
}
