package calendar

// TimeSlots is the fixed slot table offered for every booking, grouped into
// the rows the picker renders. Slots are not derived from clinic
// availability; nothing prevents two bookings from landing on the same slot.
var TimeSlots = [][]string{
	{"09:00 AM", "09:30 AM", "10:00 AM"},
	{"10:30 AM", "11:00 AM", "11:30 AM"},
	{"3:00 PM", "3:30 PM", "4:00 PM"},
	{"4:30 PM", "5:00 PM", "5:30 PM"},
}

// IsValidTimeSlot reports whether label is one of the offered slots
func IsValidTimeSlot(label string) bool {
	for _, row := range TimeSlots {
		for _, slot := range row {
			if slot == label {
				return true
			}
		}
	}
	return false
}
