package models

import (
	"time"

	"github.com/google/uuid"
)

// Appointment statuses. A booking request starts out pending; the admin
// moves it through the lifecycle, customers only ever read it.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Appointment struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CustomerName  string    `gorm:"size:255;not null" json:"customer_name"`
	CustomerPhone string    `gorm:"size:30;not null;index" json:"customer_phone"`
	CustomerEmail *string   `gorm:"size:255" json:"customer_email"`
	ServiceType   string    `gorm:"size:100;not null" json:"service_type"`

	// PreferredDate is an opaque YYYY-MM-DD string. It is never parsed into
	// a time.Time for storage, so no time zone conversion can shift it.
	PreferredDate string  `gorm:"size:10;not null;index" json:"preferred_date"`
	PreferredTime string  `gorm:"size:20;not null" json:"preferred_time"`
	Notes         *string `gorm:"type:text" json:"notes"`

	Status    string `gorm:"size:20;not null;default:'pending'" json:"status"`
	Reference string `gorm:"size:10;unique" json:"reference"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var statusTransitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted},
	// completed and cancelled are terminal
}

// ValidStatus reports whether s is one of the four defined statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransition is the single authority on legal status moves. Every status
// mutation must consult it before writing. Re-applying the current status is
// allowed as a no-op so a repeated confirm does not error.
func CanTransition(from, to string) bool {
	if !ValidStatus(from) || !ValidStatus(to) {
		return false
	}
	if from == to {
		return true
	}
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
