package models

import (
	"time"

	"github.com/google/uuid"
)

type GalleryStyle struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Category    string    `gorm:"size:100;not null" json:"category"`
	ImageURL    string    `gorm:"type:text;not null" json:"image_url"`
	Description *string   `gorm:"type:text" json:"description"`
	IsFeatured  bool      `gorm:"default:false" json:"is_featured"`

	// ImagePublicID is the Cloudinary public ID, kept so the asset can be
	// destroyed when the style is deleted.
	ImagePublicID string `gorm:"size:255" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
