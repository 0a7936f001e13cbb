package usecase

import (
	"context"
	"errors"
	"time"

	"eldercare-api/internal/converter"
	"eldercare-api/internal/delivery/dto"
	"eldercare-api/internal/domain/entity"
	"eldercare-api/internal/domain/repository"
	"eldercare-api/pkg/calendar"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrInvalidStatusFilter = errors.New("unknown booking status filter")
)

type BookingUsecase interface {
	CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	ListBookings(ctx context.Context, statusFilter string) (*dto.BookingListResponse, error)
	GetBooking(ctx context.Context, id string) (*dto.BookingResponse, error)
	CancelBooking(ctx context.Context, id string) error
	CompleteBooking(ctx context.Context, id string) error
	AddReview(ctx context.Context, id string, req *dto.AddReviewRequest) error
}

type bookingUsecase struct {
	log         *logrus.Logger
	bookingRepo repository.BookingRepository
	doctorRepo  repository.DoctorRepository
}

func NewBookingUsecase(
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	doctorRepo repository.DoctorRepository,
) BookingUsecase {
	return &bookingUsecase{
		log:         log,
		bookingRepo: bookingRepo,
		doctorRepo:  doctorRepo,
	}
}

// CreateBooking confirms the calendar selection and appends a new booking.
//
// Flow:
// 1. Look up the doctor in the catalog
// 2. Validate the (day, time slot) selection through the calendar rules
// 3. Build the booking as a snapshot of the doctor record, status upcoming
// 4. Append and persist the whole collection
func (u *bookingUsecase) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	// Step 1: the booked provider must exist in the catalog
	doctor := u.doctorRepo.FindByID(req.DoctorID)
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	// Step 2: a booking is never created with an empty date or time
	selection := calendar.NewSelection(req.Year, req.Month)
	if err := selection.SelectDay(req.Day); err != nil {
		return nil, err
	}
	if err := selection.SelectTime(req.Time); err != nil {
		return nil, err
	}
	date, timeSlot, err := selection.Confirm()
	if err != nil {
		return nil, err
	}

	// Step 3: snapshot the doctor fields; the booking never follows later
	// catalog changes
	clinic := doctor.Clinic
	if clinic == "" {
		clinic = "Women's Health Clinic"
	}

	now := time.Now()
	booking := &entity.Booking{
		ID:              uuid.New().String(),
		DoctorID:        doctor.ID,
		DoctorName:      doctor.Name,
		DoctorSpecialty: doctor.Specialty,
		DoctorImage:     doctor.Image,
		Clinic:          clinic,
		Date:            date,
		Time:            timeSlot,
		Status:          entity.BookingStatusUpcoming,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// Step 4: persist the full collection
	if err := u.bookingRepo.Create(ctx, booking); err != nil {
		u.log.Errorf("Failed to create booking for doctor %s: %+v", doctor.ID, err)
		return nil, err
	}

	u.log.Infof("Booking created: id=%s, doctor=%s, date=%q, time=%q", booking.ID, doctor.ID, date, timeSlot)
	return converter.BookingToResponse(booking), nil
}

// ListBookings returns bookings, optionally narrowed to one status tab.
// Both "cancelled" and the tab spelling "canceled" select cancelled bookings.
func (u *bookingUsecase) ListBookings(ctx context.Context, statusFilter string) (*dto.BookingListResponse, error) {
	var bookings []entity.Booking

	switch statusFilter {
	case "":
		bookings = u.bookingRepo.All(ctx)
	case "canceled":
		bookings = u.bookingRepo.FindByStatus(ctx, entity.BookingStatusCancelled)
	default:
		status := entity.BookingStatus(statusFilter)
		if !status.IsValid() {
			return nil, ErrInvalidStatusFilter
		}
		bookings = u.bookingRepo.FindByStatus(ctx, status)
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    len(bookings),
	}, nil
}

func (u *bookingUsecase) GetBooking(ctx context.Context, id string) (*dto.BookingResponse, error) {
	booking, err := u.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	return converter.BookingToResponse(booking), nil
}

func (u *bookingUsecase) CancelBooking(ctx context.Context, id string) error {
	changed, err := u.bookingRepo.UpdateStatus(ctx, id, entity.BookingStatusCancelled)
	if err != nil {
		u.log.Warnf("Failed to cancel booking %s: %+v", id, err)
		return err
	}
	if !changed {
		// Lenient mode: unknown id or already terminal, nothing observable
		u.log.Infof("Cancel booking %s was a no-op", id)
		return nil
	}

	u.log.Infof("Booking cancelled: id=%s", id)
	return nil
}

func (u *bookingUsecase) CompleteBooking(ctx context.Context, id string) error {
	changed, err := u.bookingRepo.UpdateStatus(ctx, id, entity.BookingStatusCompleted)
	if err != nil {
		u.log.Warnf("Failed to complete booking %s: %+v", id, err)
		return err
	}
	if !changed {
		u.log.Infof("Complete booking %s was a no-op", id)
		return nil
	}

	u.log.Infof("Booking completed: id=%s", id)
	return nil
}

func (u *bookingUsecase) AddReview(ctx context.Context, id string, req *dto.AddReviewRequest) error {
	review := entity.Review{
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	changed, err := u.bookingRepo.AttachReview(ctx, id, review)
	if err != nil {
		u.log.Warnf("Failed to attach review to booking %s: %+v", id, err)
		return err
	}
	if !changed {
		u.log.Infof("Review for booking %s was a no-op", id)
		return nil
	}

	u.log.Infof("Review attached: booking=%s, rating=%d", id, req.Rating)
	return nil
}
