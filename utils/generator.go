package utils

import (
	"math/rand"
	"time"

	"github.com/stellarstyles/salon_backend/models"
	"gorm.io/gorm"
)

const referenceLength = 8
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateUniqueReference produces a short booking reference that does not
// collide with any existing appointment. Quoted back to the customer in the
// confirmation email.
func GenerateUniqueReference(tx *gorm.DB) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		b := make([]byte, referenceLength)
		for i := range b {
			b[i] = letterBytes[seededRand.Intn(len(letterBytes))]
		}
		code := string(b)

		var appointment models.Appointment
		err := tx.Where("reference = ?", code).First(&appointment).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return code, nil
			}
			return "", err
		}
	}
}
