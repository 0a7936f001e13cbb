package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionConfirmRequiresDayAndTime(t *testing.T) {
	s := NewSelection(2025, 0)

	// Nothing chosen
	_, _, err := s.Confirm()
	assert.ErrorIs(t, err, ErrIncompleteSelection)

	// Day only
	require.NoError(t, s.SelectDay(5))
	_, _, err = s.Confirm()
	assert.ErrorIs(t, err, ErrIncompleteSelection)

	// Time only
	s = NewSelection(2025, 0)
	require.NoError(t, s.SelectTime("09:00 AM"))
	_, _, err = s.Confirm()
	assert.ErrorIs(t, err, ErrIncompleteSelection)
}

func TestSelectionConfirm(t *testing.T) {
	s := NewSelection(2025, 0)
	require.NoError(t, s.SelectDay(5))
	require.NoError(t, s.SelectTime("09:00 AM"))

	date, timeSlot, err := s.Confirm()
	require.NoError(t, err)
	assert.Equal(t, "January 5, 2025", date)
	assert.Equal(t, "09:00 AM", timeSlot)
}

func TestSelectionSelectDayOutOfRange(t *testing.T) {
	s := NewSelection(2023, 1) // February 2023 has 28 days

	assert.ErrorIs(t, s.SelectDay(29), ErrDayOutOfRange)
	assert.ErrorIs(t, s.SelectDay(0), ErrDayOutOfRange)
	assert.NoError(t, s.SelectDay(28))
}

func TestSelectionSelectTimeUnknownSlot(t *testing.T) {
	s := NewSelection(2025, 0)
	assert.ErrorIs(t, s.SelectTime("07:00 AM"), ErrUnknownTimeSlot)
}

func TestSelectionNavigateWrapsYear(t *testing.T) {
	s := NewSelection(2024, 11)
	s.Navigate(DirectionNext)
	assert.Equal(t, 2025, s.Year)
	assert.Equal(t, 0, s.Month)

	s.Navigate(DirectionPrev)
	assert.Equal(t, 2024, s.Year)
	assert.Equal(t, 11, s.Month)
}

func TestSelectionNavigateResetsDay(t *testing.T) {
	s := NewSelection(2025, 3)
	require.NoError(t, s.SelectDay(15))
	require.NoError(t, s.SelectTime("3:00 PM"))

	s.Navigate(DirectionNext)

	assert.Equal(t, 0, s.Day)
	// The time slot survives a month change; only the day resets
	assert.Equal(t, "3:00 PM", s.TimeSlot)
	_, _, err := s.Confirm()
	assert.ErrorIs(t, err, ErrIncompleteSelection)
}
