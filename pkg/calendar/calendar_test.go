package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		want  int
	}{
		{"february leap year", 2024, 1, 29},
		{"february non-leap year", 2023, 1, 28},
		{"february century non-leap", 1900, 1, 28},
		{"february 400-year leap", 2000, 1, 29},
		{"january", 2025, 0, 31},
		{"april", 2025, 3, 30},
		{"december", 2025, 11, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysInMonth(tt.year, tt.month))
		})
	}
}

func TestFirstWeekdayOfMonth(t *testing.T) {
	// Jan 1, 2025 was a Wednesday
	assert.Equal(t, 3, FirstWeekdayOfMonth(2025, 0))
	// Feb 1, 2024 was a Thursday
	assert.Equal(t, 4, FirstWeekdayOfMonth(2024, 1))
	// Jun 1, 2025 was a Sunday
	assert.Equal(t, 0, FirstWeekdayOfMonth(2025, 5))
}

func TestFormatAppointmentDate(t *testing.T) {
	assert.Equal(t, "January 5, 2025", FormatAppointmentDate(2025, 0, 5))
	assert.Equal(t, "December 31, 2024", FormatAppointmentDate(2024, 11, 31))
	assert.Equal(t, "February 29, 2024", FormatAppointmentDate(2024, 1, 29))
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "January", MonthName(0))
	assert.Equal(t, "December", MonthName(11))
}

func TestIsValidTimeSlot(t *testing.T) {
	assert.True(t, IsValidTimeSlot("09:00 AM"))
	assert.True(t, IsValidTimeSlot("5:30 PM"))
	assert.False(t, IsValidTimeSlot("08:00 AM"))
	assert.False(t, IsValidTimeSlot(""))
}
