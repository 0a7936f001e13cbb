package dto

import "time"

// Request DTOs

// CreateBookingRequest carries the doctor and the calendar selection the
// picker confirmed. Month is zero-based (January = 0).
type CreateBookingRequest struct {
	DoctorID string `json:"doctor_id" validate:"required"`
	Year     int    `json:"year" validate:"required,gte=1970,lte=2100"`
	Month    int    `json:"month" validate:"gte=0,lte=11"`
	Day      int    `json:"day" validate:"required,gte=1,lte=31"`
	Time     string `json:"time" validate:"required"`
}

type AddReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"omitempty,max=500"`
}

// Response DTOs

type ReviewResponse struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type BookingResponse struct {
	ID              string          `json:"id"`
	DoctorID        string          `json:"doctor_id"`
	DoctorName      string          `json:"doctor_name"`
	DoctorSpecialty string          `json:"doctor_specialty"`
	DoctorImage     string          `json:"doctor_image"`
	Clinic          string          `json:"clinic"`
	Date            string          `json:"date"`
	Time            string          `json:"time"`
	Status          string          `json:"status"`
	Review          *ReviewResponse `json:"review,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}
