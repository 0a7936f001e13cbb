// Package calendar implements the month-grid math and slot-selection rules
// behind the appointment picker. Months are zero-based (January = 0) and
// weekdays run 0=Sunday..6=Saturday, the conventions of the mobile client's
// calendar payloads.
package calendar

import "time"

// DaysInMonth returns the number of days in the given month, accounting for
// leap years. Day 0 of the following month is the last day of this one.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekdayOfMonth returns the weekday index of day 1, used to left-pad
// the grid with empty cells
func FirstWeekdayOfMonth(year, month int) int {
	return int(time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// MonthName returns the long English month name ("January")
func MonthName(month int) string {
	return time.Month(month + 1).String()
}

// FormatAppointmentDate produces the long-form label persisted into a
// booking's date field, e.g. "January 5, 2025". The formatting is one-way:
// the numeric parts are not retained on the booking.
func FormatAppointmentDate(year, month, day int) string {
	return time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.UTC).
		Format("January 2, 2006")
}

// WeekdayLabels are the grid column headers
var WeekdayLabels = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
