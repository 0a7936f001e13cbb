package entity

import (
	"time"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	BookingStatusUpcoming  BookingStatus = "upcoming"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// IsValid reports whether s is one of the known booking statuses
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusUpcoming, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether s admits no further transitions.
// Completed and cancelled bookings never return to upcoming.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// Review is an optional rating attached to a booking after creation
type Review struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Booking represents a scheduled appointment between the user and a doctor.
// Doctor fields are a snapshot copied at creation time, not a live reference
// to the catalog record. Date and time hold the human-readable labels shown
// in the app ("January 5, 2025", "09:00 AM").
type Booking struct {
	ID              string        `json:"id"`
	DoctorID        string        `json:"doctor_id"`
	DoctorName      string        `json:"doctor_name"`
	DoctorSpecialty string        `json:"doctor_specialty"`
	DoctorImage     string        `json:"doctor_image"`
	Clinic          string        `json:"clinic"`
	Date            string        `json:"date"`
	Time            string        `json:"time"`
	Status          BookingStatus `json:"status"`
	Review          *Review       `json:"review,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// IsUpcoming checks if the booking is still upcoming
func (b *Booking) IsUpcoming() bool {
	return b.Status == BookingStatusUpcoming
}

// IsCompleted checks if the booking has been completed
func (b *Booking) IsCompleted() bool {
	return b.Status == BookingStatusCompleted
}

// IsCancelled checks if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

// CanTransitionTo reports whether the state machine permits moving to target.
// Only upcoming bookings may transition, and only to completed or cancelled.
func (b *Booking) CanTransitionTo(target BookingStatus) bool {
	if b.Status != BookingStatusUpcoming {
		return false
	}
	return target == BookingStatusCompleted || target == BookingStatusCancelled
}

// Complete moves the booking to completed
func (b *Booking) Complete() {
	b.Status = BookingStatusCompleted
	b.UpdatedAt = time.Now()
}

// Cancel moves the booking to cancelled
func (b *Booking) Cancel() {
	b.Status = BookingStatusCancelled
	b.UpdatedAt = time.Now()
}

// AttachReview sets the review without changing status
func (b *Booking) AttachReview(review Review) {
	b.Review = &review
	b.UpdatedAt = time.Now()
}
