package services

import "testing"

func TestValidTimeSlot(t *testing.T) {
	for _, slot := range TimeSlots {
		if !ValidTimeSlot(slot) {
			t.Fatalf("offered slot %q rejected", slot)
		}
	}

	for _, label := range []string{"", "9:00", "09:00 AM", "6:00 PM", "9:00 am"} {
		if ValidTimeSlot(label) {
			t.Fatalf("label %q should not be a valid slot", label)
		}
	}
}
