package repository

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"eldercare-api/internal/domain/entity"
	domainRepo "eldercare-api/internal/domain/repository"
	"eldercare-api/internal/infrastructure/store"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testStoreKey = "eldercare:bookings"

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestRepo(t *testing.T, strict bool) (domainRepo.BookingRepository, *store.MemoryStore) {
	t.Helper()
	kv := store.NewMemoryStore()
	repo := NewBookingRepository(kv, testLogger(), testStoreKey, strict)
	return repo, kv
}

func newTestBooking(id string) *entity.Booking {
	now := time.Now()
	return &entity.Booking{
		ID:              id,
		DoctorID:        "1",
		DoctorName:      "Dr. David Patel",
		DoctorSpecialty: "Cardiologist",
		DoctorImage:     "/assets/img/doctors/david-patel.png",
		Clinic:          "Cardiology Center, USA",
		Date:            "January 5, 2025",
		Time:            "09:00 AM",
		Status:          entity.BookingStatusUpcoming,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func TestLoadMissingKeyStartsEmpty(t *testing.T) {
	repo, _ := newTestRepo(t, false)

	require.NoError(t, repo.Load(context.Background()))
	assert.Empty(t, repo.All(context.Background()))
}

func TestLoadMalformedDataStartsEmpty(t *testing.T) {
	repo, kv := newTestRepo(t, false)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, testStoreKey, "{not json"))

	err := repo.Load(ctx)
	assert.ErrorIs(t, err, ErrDeserialization)
	assert.Empty(t, repo.All(ctx))
}

func TestCreateAndReloadRoundTrip(t *testing.T) {
	repo, kv := newTestRepo(t, false)
	ctx := context.Background()

	ids := []string{}
	for i := 0; i < 5; i++ {
		booking := newTestBooking(uuid.New().String())
		booking.Time = "10:00 AM"
		require.NoError(t, repo.Create(ctx, booking))
		ids = append(ids, booking.ID)
	}

	// A fresh repository reading the same store reproduces the collection:
	// same ids, same fields, same order
	reloaded := NewBookingRepository(kv, testLogger(), testStoreKey, false)
	require.NoError(t, reloaded.Load(ctx))

	original := repo.All(ctx)
	restored := reloaded.All(ctx)
	require.Len(t, restored, len(ids))
	for i := range original {
		assert.Equal(t, ids[i], restored[i].ID)
		assert.Equal(t, original[i].DoctorName, restored[i].DoctorName)
		assert.Equal(t, original[i].Date, restored[i].Date)
		assert.Equal(t, original[i].Time, restored[i].Time)
		assert.Equal(t, original[i].Status, restored[i].Status)
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	repo, _ := newTestRepo(t, false)
	ctx := context.Background()

	booking := newTestBooking(uuid.New().String())
	require.NoError(t, repo.Create(ctx, booking))

	changed, err := repo.UpdateStatus(ctx, booking.ID, entity.BookingStatusCancelled)
	require.NoError(t, err)
	assert.True(t, changed)

	found, err := repo.FindByID(ctx, booking.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, entity.BookingStatusCancelled, found.Status)
}

func TestStatusNeverReturnsToUpcoming(t *testing.T) {
	repo, _ := newTestRepo(t, false)
	ctx := context.Background()

	booking := newTestBooking(uuid.New().String())
	require.NoError(t, repo.Create(ctx, booking))

	changed, err := repo.UpdateStatus(ctx, booking.ID, entity.BookingStatusCompleted)
	require.NoError(t, err)
	require.True(t, changed)

	// A completed booking is terminal; cancelling it is a no-op
	changed, err = repo.UpdateStatus(ctx, booking.ID, entity.BookingStatusCancelled)
	require.NoError(t, err)
	assert.False(t, changed)

	found, err := repo.FindByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCompleted, found.Status)
}

func TestMutationsOnUnknownIDAreNoOps(t *testing.T) {
	repo, _ := newTestRepo(t, false)
	ctx := context.Background()

	booking := newTestBooking(uuid.New().String())
	require.NoError(t, repo.Create(ctx, booking))
	before := repo.All(ctx)

	changed, err := repo.UpdateStatus(ctx, "no-such-id", entity.BookingStatusCancelled)
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = repo.UpdateStatus(ctx, "no-such-id", entity.BookingStatusCompleted)
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = repo.AttachReview(ctx, "no-such-id", entity.Review{Rating: 5, Comment: "great"})
	require.NoError(t, err)
	assert.False(t, changed)

	assert.Equal(t, before, repo.All(ctx))
}

func TestStrictModeSurfacesErrors(t *testing.T) {
	repo, _ := newTestRepo(t, true)
	ctx := context.Background()

	_, err := repo.UpdateStatus(ctx, "no-such-id", entity.BookingStatusCancelled)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	booking := newTestBooking(uuid.New().String())
	require.NoError(t, repo.Create(ctx, booking))

	_, err = repo.AttachReview(ctx, booking.ID, entity.Review{Rating: 4, Comment: "ok"})
	assert.ErrorIs(t, err, ErrReviewNotAllowed)

	changed, err := repo.UpdateStatus(ctx, booking.ID, entity.BookingStatusCancelled)
	require.NoError(t, err)
	require.True(t, changed)

	_, err = repo.UpdateStatus(ctx, booking.ID, entity.BookingStatusCompleted)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestAttachReviewKeepsStatus(t *testing.T) {
	repo, _ := newTestRepo(t, false)
	ctx := context.Background()

	booking := newTestBooking(uuid.New().String())
	require.NoError(t, repo.Create(ctx, booking))

	changed, err := repo.AttachReview(ctx, booking.ID, entity.Review{Rating: 5, Comment: "excellent care"})
	require.NoError(t, err)
	assert.True(t, changed)

	found, err := repo.FindByID(ctx, booking.ID)
	require.NoError(t, err)
	require.NotNil(t, found.Review)
	assert.Equal(t, 5, found.Review.Rating)
	assert.Equal(t, "excellent care", found.Review.Comment)
	assert.Equal(t, entity.BookingStatusUpcoming, found.Status)
}

// failingStore rejects writes after a configurable number of successes
type failingStore struct {
	inner    *store.MemoryStore
	failures int
	writes   int
}

func (s *failingStore) Get(ctx context.Context, key string) (string, error) {
	return s.inner.Get(ctx, key)
}

func (s *failingStore) Set(ctx context.Context, key string, value string) error {
	s.writes++
	if s.failures > 0 {
		s.failures--
		return fmt.Errorf("store unavailable")
	}
	return s.inner.Set(ctx, key, value)
}

func TestCreateRetriesOnceThenRollsBack(t *testing.T) {
	ctx := context.Background()

	// Both the write and its retry fail: the append must be rolled back
	kv := &failingStore{inner: store.NewMemoryStore(), failures: 2}
	repo := NewBookingRepository(kv, testLogger(), testStoreKey, false)

	err := repo.Create(ctx, newTestBooking(uuid.New().String()))
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Equal(t, 2, kv.writes)
	assert.Empty(t, repo.All(ctx))
}

func TestCreateSucceedsOnRetry(t *testing.T) {
	ctx := context.Background()

	kv := &failingStore{inner: store.NewMemoryStore(), failures: 1}
	repo := NewBookingRepository(kv, testLogger(), testStoreKey, false)

	booking := newTestBooking(uuid.New().String())
	require.NoError(t, repo.Create(ctx, booking))
	assert.Len(t, repo.All(ctx), 1)
}

func TestUpdateStatusRollsBackOnPersistFailure(t *testing.T) {
	ctx := context.Background()

	kv := &failingStore{inner: store.NewMemoryStore()}
	repo := NewBookingRepository(kv, testLogger(), testStoreKey, false)

	booking := newTestBooking(uuid.New().String())
	require.NoError(t, repo.Create(ctx, booking))

	kv.failures = 2
	_, err := repo.UpdateStatus(ctx, booking.ID, entity.BookingStatusCancelled)
	assert.ErrorIs(t, err, ErrPersistence)

	found, err := repo.FindByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusUpcoming, found.Status)
}

func TestFindByStatus(t *testing.T) {
	repo, _ := newTestRepo(t, false)
	ctx := context.Background()

	upcoming := newTestBooking(uuid.New().String())
	cancelled := newTestBooking(uuid.New().String())
	require.NoError(t, repo.Create(ctx, upcoming))
	require.NoError(t, repo.Create(ctx, cancelled))

	_, err := repo.UpdateStatus(ctx, cancelled.ID, entity.BookingStatusCancelled)
	require.NoError(t, err)

	got := repo.FindByStatus(ctx, entity.BookingStatusUpcoming)
	require.Len(t, got, 1)
	assert.Equal(t, upcoming.ID, got[0].ID)

	got = repo.FindByStatus(ctx, entity.BookingStatusCancelled)
	require.Len(t, got, 1)
	assert.Equal(t, cancelled.ID, got[0].ID)

	assert.Empty(t, repo.FindByStatus(ctx, entity.BookingStatusCompleted))
}

func TestFindByIDUnknownReturnsNil(t *testing.T) {
	repo, _ := newTestRepo(t, false)

	found, err := repo.FindByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, found)
}
