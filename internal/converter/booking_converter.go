package converter

import (
	"eldercare-api/internal/delivery/dto"
	"eldercare-api/internal/domain/entity"
)

// BookingToResponse converts a Booking entity to BookingResponse DTO
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	response := &dto.BookingResponse{
		ID:              booking.ID,
		DoctorID:        booking.DoctorID,
		DoctorName:      booking.DoctorName,
		DoctorSpecialty: booking.DoctorSpecialty,
		DoctorImage:     booking.DoctorImage,
		Clinic:          booking.Clinic,
		Date:            booking.Date,
		Time:            booking.Time,
		Status:          string(booking.Status),
		CreatedAt:       booking.CreatedAt,
		UpdatedAt:       booking.UpdatedAt,
	}

	if booking.Review != nil {
		response.Review = &dto.ReviewResponse{
			Rating:  booking.Review.Rating,
			Comment: booking.Review.Comment,
		}
	}

	return response
}

// BookingsToResponses converts a slice of Booking entities to slice of BookingResponse DTOs
func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i, booking := range bookings {
		resp := BookingToResponse(&booking)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
