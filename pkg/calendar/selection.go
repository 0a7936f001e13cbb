package calendar

import "errors"

var (
	ErrDayOutOfRange       = errors.New("day is outside the current month")
	ErrUnknownTimeSlot     = errors.New("time slot is not offered")
	ErrIncompleteSelection = errors.New("both a day and a time slot must be selected")
)

// Direction navigates the calendar one month at a time
type Direction string

const (
	DirectionPrev Direction = "prev"
	DirectionNext Direction = "next"
)

// Selection is the transient state of an in-progress booking: the month
// being viewed plus the chosen day and time slot. It exists only while a
// booking is composed and is discarded after confirmation.
type Selection struct {
	Year     int
	Month    int // zero-based
	Day      int // 0 = none selected
	TimeSlot string
}

// NewSelection starts a selection on the given month with no day or time
// chosen
func NewSelection(year, month int) Selection {
	return Selection{Year: year, Month: month}
}

// Navigate moves one month forward or back, wrapping the year at the
// December/January boundary. Changing months resets the day selection.
func (s *Selection) Navigate(dir Direction) {
	if dir == DirectionNext {
		if s.Month == 11 {
			s.Month = 0
			s.Year++
		} else {
			s.Month++
		}
	} else {
		if s.Month == 0 {
			s.Month = 11
			s.Year--
		} else {
			s.Month--
		}
	}
	s.Day = 0
}

// SelectDay chooses a day within the viewed month
func (s *Selection) SelectDay(day int) error {
	if day < 1 || day > DaysInMonth(s.Year, s.Month) {
		return ErrDayOutOfRange
	}
	s.Day = day
	return nil
}

// SelectTime chooses one of the offered slot labels
func (s *Selection) SelectTime(label string) error {
	if !IsValidTimeSlot(label) {
		return ErrUnknownTimeSlot
	}
	s.TimeSlot = label
	return nil
}

// Confirm validates the selection and returns the formatted date and time
// labels a booking is created with. It fails unless both a day and a time
// slot have been chosen, so a booking can never carry an empty date or time.
func (s Selection) Confirm() (date string, timeSlot string, err error) {
	if s.Day == 0 || s.TimeSlot == "" {
		return "", "", ErrIncompleteSelection
	}
	return FormatAppointmentDate(s.Year, s.Month, s.Day), s.TimeSlot, nil
}
