package notifications

import "fmt"

// BookingReceivedBody is sent as soon as a booking request lands.
func BookingReceivedBody(serviceType, date, timeSlot, reference string) string {
	return fmt.Sprintf(
		"<h1>Booking Request Received</h1><p>Thank you! We've received your appointment request for <b>%s</b> on <b>%s</b> at <b>%s</b>.</p><p>Your booking reference is <b>%s</b>. We'll confirm your appointment via WhatsApp shortly.</p>",
		serviceType, date, timeSlot, reference,
	)
}

// BookingConfirmedBody is sent when the admin confirms a pending request.
func BookingConfirmedBody(serviceType, date, timeSlot string) string {
	return fmt.Sprintf(
		"<h1>Appointment Confirmed</h1><p>Your appointment for <b>%s</b> on <b>%s</b> at <b>%s</b> is confirmed. We look forward to seeing you!</p>",
		serviceType, date, timeSlot,
	)
}

// BookingCancelledBody is sent when the admin cancels a pending request.
func BookingCancelledBody(serviceType, date string) string {
	return fmt.Sprintf(
		"<h1>Appointment Cancelled</h1><p>Unfortunately your appointment request for <b>%s</b> on <b>%s</b> has been cancelled. Please reach out on WhatsApp to rebook.</p>",
		serviceType, date,
	)
}

// BookingReminderBody goes out the day before a confirmed appointment.
func BookingReminderBody(serviceType, date, timeSlot string) string {
	return fmt.Sprintf(
		"<h1>Appointment Reminder</h1><p>This is a friendly reminder of your <b>%s</b> appointment tomorrow, <b>%s</b> at <b>%s</b>.</p>",
		serviceType, date, timeSlot,
	)
}
