package usecase

import (
	"context"
	"io"
	"testing"

	"eldercare-api/internal/delivery/dto"
	"eldercare-api/internal/domain/entity"
	"eldercare-api/internal/infrastructure/store"
	"eldercare-api/internal/repository"
	"eldercare-api/pkg/calendar"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newBookingUsecase(t *testing.T) BookingUsecase {
	t.Helper()
	bookingRepo := repository.NewBookingRepository(store.NewMemoryStore(), testLogger(), "eldercare:bookings", false)
	return NewBookingUsecase(testLogger(), bookingRepo, repository.NewDoctorRepository())
}

func createRequest() *dto.CreateBookingRequest {
	return &dto.CreateBookingRequest{
		DoctorID: "1",
		Year:     2025,
		Month:    0, // January
		Day:      5,
		Time:     "09:00 AM",
	}
}

func TestCreateBookingSnapshotsDoctor(t *testing.T) {
	u := newBookingUsecase(t)

	booking, err := u.CreateBooking(context.Background(), createRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "1", booking.DoctorID)
	assert.Equal(t, "Dr. David Patel", booking.DoctorName)
	assert.Equal(t, "Cardiologist", booking.DoctorSpecialty)
	assert.Equal(t, "Cardiology Center, USA", booking.Clinic)
	assert.Equal(t, "January 5, 2025", booking.Date)
	assert.Equal(t, "09:00 AM", booking.Time)
	assert.Equal(t, string(entity.BookingStatusUpcoming), booking.Status)
}

func TestCreateBookingAppearsOnlyUnderUpcoming(t *testing.T) {
	u := newBookingUsecase(t)
	ctx := context.Background()

	booking, err := u.CreateBooking(ctx, createRequest())
	require.NoError(t, err)

	upcoming, err := u.ListBookings(ctx, "upcoming")
	require.NoError(t, err)
	require.Equal(t, 1, upcoming.Total)
	assert.Equal(t, booking.ID, upcoming.Bookings[0].ID)

	completed, err := u.ListBookings(ctx, "completed")
	require.NoError(t, err)
	assert.Zero(t, completed.Total)

	cancelled, err := u.ListBookings(ctx, "cancelled")
	require.NoError(t, err)
	assert.Zero(t, cancelled.Total)
}

func TestCancelMovesBookingToCancelledTab(t *testing.T) {
	u := newBookingUsecase(t)
	ctx := context.Background()

	booking, err := u.CreateBooking(ctx, createRequest())
	require.NoError(t, err)

	require.NoError(t, u.CancelBooking(ctx, booking.ID))

	upcoming, err := u.ListBookings(ctx, "upcoming")
	require.NoError(t, err)
	assert.Zero(t, upcoming.Total)

	// The tab spelling "canceled" selects cancelled bookings too
	cancelled, err := u.ListBookings(ctx, "canceled")
	require.NoError(t, err)
	require.Equal(t, 1, cancelled.Total)
	assert.Equal(t, string(entity.BookingStatusCancelled), cancelled.Bookings[0].Status)
}

func TestRescheduleAfterCancelCreatesNewBooking(t *testing.T) {
	u := newBookingUsecase(t)
	ctx := context.Background()

	booking, err := u.CreateBooking(ctx, createRequest())
	require.NoError(t, err)
	require.NoError(t, u.CancelBooking(ctx, booking.ID))

	// Rescheduling a cancelled booking books the same doctor again; the
	// old booking's status does not block it
	req := createRequest()
	req.Day = 6
	rebooked, err := u.CreateBooking(ctx, req)
	require.NoError(t, err)
	assert.NotEqual(t, booking.ID, rebooked.ID)
	assert.Equal(t, string(entity.BookingStatusUpcoming), rebooked.Status)

	all, err := u.ListBookings(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)
}

func TestBookingIDsAreUnique(t *testing.T) {
	u := newBookingUsecase(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		booking, err := u.CreateBooking(ctx, createRequest())
		require.NoError(t, err)
		assert.False(t, seen[booking.ID], "duplicate booking id %s", booking.ID)
		seen[booking.ID] = true
	}
}

func TestCreateBookingUnknownDoctor(t *testing.T) {
	u := newBookingUsecase(t)

	req := createRequest()
	req.DoctorID = "999"
	_, err := u.CreateBooking(context.Background(), req)
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestCreateBookingRejectsInvalidSelection(t *testing.T) {
	u := newBookingUsecase(t)
	ctx := context.Background()

	req := createRequest()
	req.Day = 30
	req.Month = 1 // February 2025 has 28 days
	_, err := u.CreateBooking(ctx, req)
	assert.ErrorIs(t, err, calendar.ErrDayOutOfRange)

	req = createRequest()
	req.Time = "midnight"
	_, err = u.CreateBooking(ctx, req)
	assert.ErrorIs(t, err, calendar.ErrUnknownTimeSlot)

	all, err := u.ListBookings(ctx, "")
	require.NoError(t, err)
	assert.Zero(t, all.Total)
}

func TestCompleteThenReview(t *testing.T) {
	u := newBookingUsecase(t)
	ctx := context.Background()

	booking, err := u.CreateBooking(ctx, createRequest())
	require.NoError(t, err)

	require.NoError(t, u.CompleteBooking(ctx, booking.ID))
	require.NoError(t, u.AddReview(ctx, booking.ID, &dto.AddReviewRequest{Rating: 5, Comment: "wonderful"}))

	got, err := u.GetBooking(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.BookingStatusCompleted), got.Status)
	require.NotNil(t, got.Review)
	assert.Equal(t, 5, got.Review.Rating)
	assert.Equal(t, "wonderful", got.Review.Comment)
}

func TestMutationsOnUnknownIDSucceedSilently(t *testing.T) {
	u := newBookingUsecase(t)
	ctx := context.Background()

	// Lenient mode: unknown ids are no-ops, not errors
	assert.NoError(t, u.CancelBooking(ctx, "no-such-id"))
	assert.NoError(t, u.CompleteBooking(ctx, "no-such-id"))
	assert.NoError(t, u.AddReview(ctx, "no-such-id", &dto.AddReviewRequest{Rating: 3}))
}

func TestListBookingsRejectsUnknownFilter(t *testing.T) {
	u := newBookingUsecase(t)

	_, err := u.ListBookings(context.Background(), "pending")
	assert.ErrorIs(t, err, ErrInvalidStatusFilter)
}

func TestGetBookingUnknownID(t *testing.T) {
	u := newBookingUsecase(t)

	_, err := u.GetBooking(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
