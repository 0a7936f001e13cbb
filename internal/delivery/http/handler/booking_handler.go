package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"eldercare-api/internal/delivery/dto"
	"eldercare-api/internal/repository"
	"eldercare-api/internal/usecase"
	"eldercare-api/pkg/calendar"
	"eldercare-api/pkg/response"
	"eldercare-api/pkg/validator"

	"github.com/gorilla/mux"
)

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.CreateBooking(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		case errors.Is(err, calendar.ErrDayOutOfRange),
			errors.Is(err, calendar.ErrUnknownTimeSlot),
			errors.Is(err, calendar.ErrIncompleteSelection):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create booking")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Booking created successfully", booking)
}

func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	statusFilter := r.URL.Query().Get("status")

	bookings, err := h.bookingUsecase.ListBookings(r.Context(), statusFilter)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidStatusFilter) {
			response.Error(w, http.StatusBadRequest, "Unknown status filter", nil)
			return
		}
		response.InternalServerError(w, "Failed to get bookings")
		return
	}

	response.Success(w, http.StatusOK, "Bookings retrieved successfully", bookings)
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	booking, err := h.bookingUsecase.GetBooking(r.Context(), vars["id"])
	if err != nil {
		if errors.Is(err, usecase.ErrBookingNotFound) {
			response.NotFound(w, "Booking not found")
			return
		}
		response.InternalServerError(w, "Failed to get booking")
		return
	}

	response.Success(w, http.StatusOK, "Booking retrieved successfully", booking)
}

func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.bookingUsecase.CancelBooking(r.Context(), vars["id"]); err != nil {
		h.writeMutationError(w, err, "Failed to cancel booking")
		return
	}

	response.Success(w, http.StatusOK, "Booking cancelled successfully", nil)
}

func (h *BookingHandler) CompleteBooking(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.bookingUsecase.CompleteBooking(r.Context(), vars["id"]); err != nil {
		h.writeMutationError(w, err, "Failed to complete booking")
		return
	}

	response.Success(w, http.StatusOK, "Booking completed successfully", nil)
}

func (h *BookingHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req dto.AddReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.bookingUsecase.AddReview(r.Context(), vars["id"], &req); err != nil {
		h.writeMutationError(w, err, "Failed to add review")
		return
	}

	response.Success(w, http.StatusOK, "Review added successfully", nil)
}

// writeMutationError maps the strict-mode repository errors; in lenient mode
// mutations never fail with these
func (h *BookingHandler) writeMutationError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, repository.ErrBookingNotFound):
		response.NotFound(w, "Booking not found")
	case errors.Is(err, repository.ErrInvalidTransition):
		response.Error(w, http.StatusConflict, "Booking status does not allow this transition", nil)
	case errors.Is(err, repository.ErrReviewNotAllowed):
		response.Error(w, http.StatusConflict, "Review is only allowed on completed bookings", nil)
	default:
		response.InternalServerError(w, fallback)
	}
}
