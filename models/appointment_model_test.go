package models

import "testing"

func TestCanTransition_Lifecycle(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"pending to completed skips confirmation", StatusPending, StatusCompleted, false},
		{"confirmed back to pending", StatusConfirmed, StatusPending, false},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, false},
		{"completed is terminal", StatusCompleted, StatusConfirmed, false},
		{"completed cannot be cancelled", StatusCompleted, StatusCancelled, false},
		{"cancelled is terminal", StatusCancelled, StatusPending, false},
		{"cancelled cannot be confirmed", StatusCancelled, StatusConfirmed, false},
		{"unknown source status", "archived", StatusConfirmed, false},
		{"unknown target status", StatusPending, "archived", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Fatalf("CanTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestCanTransition_SameStatusIsIdempotent(t *testing.T) {
	for _, status := range []string{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled} {
		if !CanTransition(status, status) {
			t.Fatalf("re-applying %q should be an accepted no-op", status)
		}
	}
}

func TestValidStatus(t *testing.T) {
	for _, status := range []string{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled} {
		if !ValidStatus(status) {
			t.Fatalf("expected %q to be valid", status)
		}
	}
	for _, status := range []string{"", "all", "Pending", "done"} {
		if ValidStatus(status) {
			t.Fatalf("expected %q to be invalid", status)
		}
	}
}
