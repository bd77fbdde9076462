package models

import (
	"time"

	"github.com/google/uuid"
)

type PriceItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ServiceName string    `gorm:"size:255;not null" json:"service_name"`
	Category    string    `gorm:"size:100;not null" json:"category"`
	Price       float64   `gorm:"type:numeric(10,2);not null" json:"price"`
	Duration    *string   `gorm:"size:100" json:"duration"`
	Description *string   `gorm:"type:text" json:"description"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
