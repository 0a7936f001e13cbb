package handler

import (
	"net/http"
	"strconv"

	"eldercare-api/internal/delivery/dto"
	"eldercare-api/pkg/calendar"
	"eldercare-api/pkg/response"

	"github.com/gorilla/mux"
)

// CalendarHandler serves the appointment picker: the month grid and the
// fixed time-slot table. The logic is pure, so no usecase sits behind it.
type CalendarHandler struct {
}

func NewCalendarHandler() *CalendarHandler {
	return &CalendarHandler{}
}

// GetMonthGrid returns the grid for a year/month pair. Month is zero-based.
func (h *CalendarHandler) GetMonthGrid(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid year", nil)
		return
	}

	month, err := strconv.Atoi(vars["month"])
	if err != nil || month < 0 || month > 11 {
		response.Error(w, http.StatusBadRequest, "Invalid month, expected 0-11", nil)
		return
	}

	grid := &dto.MonthGridResponse{
		Year:          year,
		Month:         month,
		MonthName:     calendar.MonthName(month),
		Days:          calendar.DaysInMonth(year, month),
		FirstWeekday:  calendar.FirstWeekdayOfMonth(year, month),
		WeekdayLabels: calendar.WeekdayLabels,
	}

	response.Success(w, http.StatusOK, "Month grid retrieved successfully", grid)
}

func (h *CalendarHandler) GetTimeSlots(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Time slots retrieved successfully", &dto.TimeSlotsResponse{
		Rows: calendar.TimeSlots,
	})
}
