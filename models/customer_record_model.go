package models

import (
	"time"

	"github.com/google/uuid"
)

// CustomerRecord is the salon's own note of a visit: who came in, what style
// was done and reference photos. Separate from Appointment because walk-ins
// get records without ever having booked.
type CustomerRecord struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CustomerName    string    `gorm:"size:255;not null" json:"customer_name"`
	CustomerPhone   *string   `gorm:"size:30" json:"customer_phone"`
	StyleDone       string    `gorm:"size:255;not null" json:"style_done"`
	Notes           *string   `gorm:"type:text" json:"notes"`
	AppointmentDate string    `gorm:"size:10;not null" json:"appointment_date"`

	Photos []CustomerPhoto `gorm:"foreignkey:CustomerRecordID;constraint:OnDelete:CASCADE" json:"photos"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CustomerPhoto struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CustomerRecordID uuid.UUID `gorm:"not null;index" json:"customer_record_id"`
	PhotoURL         string    `gorm:"type:text;not null" json:"photo_url"`
	PhotoPublicID    string    `gorm:"size:255" json:"-"`
	UploadedAt       time.Time `json:"uploaded_at"`
}
