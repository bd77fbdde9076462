package handlers

import "testing"

func validBookingRequest() CreateAppointmentRequest {
	return CreateAppointmentRequest{
		CustomerName:  "Ada Obi",
		CustomerPhone: "08011112222",
		ServiceType:   "Box Braids",
		PreferredDate: "2026-09-12",
		PreferredTime: "9:00 AM",
	}
}

func TestCreateAppointmentRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateAppointmentRequest)
		wantErr bool
	}{
		{"complete request", func(r *CreateAppointmentRequest) {}, false},
		{"missing name", func(r *CreateAppointmentRequest) { r.CustomerName = "" }, true},
		{"missing phone", func(r *CreateAppointmentRequest) { r.CustomerPhone = "" }, true},
		{"missing service", func(r *CreateAppointmentRequest) { r.ServiceType = "" }, true},
		{"missing date", func(r *CreateAppointmentRequest) { r.PreferredDate = "" }, true},
		{"malformed date", func(r *CreateAppointmentRequest) { r.PreferredDate = "12/09/2026" }, true},
		{"missing time", func(r *CreateAppointmentRequest) { r.PreferredTime = "" }, true},
		{"malformed email", func(r *CreateAppointmentRequest) {
			bad := "not-an-email"
			r.CustomerEmail = &bad
		}, true},
		{"email omitted is fine", func(r *CreateAppointmentRequest) { r.CustomerEmail = nil }, false},
		{"notes optional", func(r *CreateAppointmentRequest) {
			notes := "please use jumbo extensions"
			r.Notes = &notes
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validBookingRequest()
			tt.mutate(&req)

			err := validate.Struct(req)
			if tt.wantErr && err == nil {
				t.Fatal("expected a validation error, got none")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestUpdateStatusRequest_Validation(t *testing.T) {
	for _, status := range []string{"pending", "confirmed", "completed", "cancelled"} {
		if err := validate.Struct(UpdateStatusRequest{Status: status}); err != nil {
			t.Fatalf("status %q should validate: %v", status, err)
		}
	}
	for _, status := range []string{"", "archived", "Confirmed"} {
		if err := validate.Struct(UpdateStatusRequest{Status: status}); err == nil {
			t.Fatalf("status %q should be rejected", status)
		}
	}
}
