package services

// Fixed options offered on the public booking form. The service list ends in
// "Other" so free-text requests still fit the catalog.
var ServiceCatalog = []string{
	"Box Braids",
	"Knotless Braids",
	"Cornrows",
	"Passion Twists",
	"Faux Locs",
	"Natural Hair Styling",
	"Wash & Condition",
	"Wig Installation",
	"Weave Installation",
	"Bridal Hair",
	"Special Occasion",
	"Other",
}

// TimeSlots are the labels a booking can be requested for. They are opaque
// strings, not parsed times.
var TimeSlots = []string{
	"9:00 AM",
	"10:00 AM",
	"11:00 AM",
	"12:00 PM",
	"1:00 PM",
	"2:00 PM",
	"3:00 PM",
	"4:00 PM",
	"5:00 PM",
}

var GalleryCategories = []string{"Braids", "Natural", "Weave", "Special Occasion", "Other"}

var PriceCategories = []string{"Braids", "Natural", "Weave", "Special Occasion", "Treatments", "Other"}

// ValidTimeSlot reports whether label is one of the offered slots.
func ValidTimeSlot(label string) bool {
	for _, slot := range TimeSlots {
		if slot == label {
			return true
		}
	}
	return false
}
