package handlers

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	config "github.com/stellarstyles/salon_backend/configs"
	"github.com/stellarstyles/salon_backend/database"
	"github.com/stellarstyles/salon_backend/models"
	"gorm.io/gorm"
)

const customerFolder = "stellar_styles_customers"

// AdminListCustomers returns customer records with their photos, newest
// first.
func AdminListCustomers(c *fiber.Ctx) error {
	var records []models.CustomerRecord
	err := database.DB.
		Preload("Photos").
		Order("created_at desc").
		Find(&records).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load customer records"})
	}

	return c.JSON(records)
}

type uploadedPhoto struct {
	url      string
	publicID string
}

// uploadCustomerPhotos pushes each file to Cloudinary in turn. The batch is
// all-or-nothing: if any upload fails, the ones that already succeeded are
// destroyed before the error is returned, so the record insert never runs
// against a half-uploaded set.
func uploadCustomerPhotos(cld *cloudinary.Cloudinary, files []*multipart.FileHeader) ([]uploadedPhoto, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var uploaded []uploadedPhoto
	for i, file := range files {
		result, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
			Folder:   customerFolder,
			PublicID: fmt.Sprintf("customer_%d_%d", time.Now().UnixNano(), i),
		})
		if err != nil {
			destroyPhotos(cld, uploaded)
			return nil, fmt.Errorf("upload of %s failed: %w", file.Filename, err)
		}
		uploaded = append(uploaded, uploadedPhoto{url: result.SecureURL, publicID: result.PublicID})
	}
	return uploaded, nil
}

func destroyPhotos(cld *cloudinary.Cloudinary, photos []uploadedPhoto) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, photo := range photos {
		if _, err := cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: photo.publicID}); err != nil {
			log.Printf("🔥 Failed to clean up uploaded photo %s: %v", photo.publicID, err)
		}
	}
}

// AdminCreateCustomer records a finished visit: customer details plus an
// optional batch of photos of the style done.
func AdminCreateCustomer(c *fiber.Ctx) error {
	customerName := c.FormValue("customer_name")
	styleDone := c.FormValue("style_done")
	appointmentDate := c.FormValue("appointment_date")

	if customerName == "" || styleDone == "" || appointmentDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Customer name, style and appointment date are required"})
	}

	record := models.CustomerRecord{
		CustomerName:    customerName,
		StyleDone:       styleDone,
		AppointmentDate: appointmentDate,
	}
	if phone := c.FormValue("customer_phone"); phone != "" {
		record.CustomerPhone = &phone
	}
	if notes := c.FormValue("notes"); notes != "" {
		record.Notes = &notes
	}

	var files []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form != nil {
		files = form.File["photos"]
	}

	var uploaded []uploadedPhoto
	var cld *cloudinary.Cloudinary
	if len(files) > 0 {
		var err error
		cld, err = cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to initialize Cloudinary"})
		}
		uploaded, err = uploadCustomerPhotos(cld, files)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Photo upload failed, nothing was saved"})
		}
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		for _, photo := range uploaded {
			customerPhoto := models.CustomerPhoto{
				CustomerRecordID: record.ID,
				PhotoURL:         photo.url,
				PhotoPublicID:    photo.publicID,
				UploadedAt:       time.Now(),
			}
			if err := tx.Create(&customerPhoto).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if cld != nil {
			destroyPhotos(cld, uploaded)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save customer record"})
	}

	database.DB.Preload("Photos").First(&record, "id = ?", record.ID)
	return c.Status(fiber.StatusCreated).JSON(record)
}

type UpdateCustomerRequest struct {
	CustomerName    string  `json:"customer_name" validate:"required,min=2"`
	CustomerPhone   *string `json:"customer_phone"`
	StyleDone       string  `json:"style_done" validate:"required"`
	Notes           *string `json:"notes"`
	AppointmentDate string  `json:"appointment_date" validate:"required,datetime=2006-01-02"`
}

func AdminUpdateCustomer(c *fiber.Ctx) error {
	var req UpdateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	customerID := c.Params("customerId")

	var record models.CustomerRecord
	if err := database.DB.First(&record, "id = ?", customerID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer record not found"})
	}

	record.CustomerName = req.CustomerName
	record.CustomerPhone = req.CustomerPhone
	record.StyleDone = req.StyleDone
	record.Notes = req.Notes
	record.AppointmentDate = req.AppointmentDate

	if err := database.DB.Save(&record).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update customer record"})
	}

	database.DB.Preload("Photos").First(&record, "id = ?", record.ID)
	return c.JSON(record)
}

// AdminDeleteCustomer removes the record, its photo rows and the stored
// assets. Asset deletion failures are logged but do not block the record
// delete; an orphaned blob is preferable to a record that cannot be removed.
func AdminDeleteCustomer(c *fiber.Ctx) error {
	customerID := c.Params("customerId")

	var record models.CustomerRecord
	if err := database.DB.Preload("Photos").First(&record, "id = ?", customerID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer record not found"})
	}

	if len(record.Photos) > 0 {
		cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
		if err == nil {
			var photos []uploadedPhoto
			for _, photo := range record.Photos {
				if photo.PhotoPublicID != "" {
					photos = append(photos, uploadedPhoto{publicID: photo.PhotoPublicID})
				}
			}
			destroyPhotos(cld, photos)
		}
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("customer_record_id = ?", record.ID).Delete(&models.CustomerPhoto{}).Error; err != nil {
			return err
		}
		return tx.Delete(&record).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete customer record"})
	}

	return c.JSON(fiber.Map{"message": "Customer record deleted"})
}
