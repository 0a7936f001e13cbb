package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"eldercare-api/internal/domain/entity"
	domainRepo "eldercare-api/internal/domain/repository"
	"eldercare-api/internal/infrastructure/store"

	"github.com/sirupsen/logrus"
)

// bookingRepository keeps the booking collection in memory and rewrites the
// whole serialized collection to the key-value store on every mutation.
// A mutex serializes mutations so two concurrent writes cannot overwrite
// each other's full-collection snapshot.
type bookingRepository struct {
	mu       sync.RWMutex
	store    store.KeyValueStore
	log      *logrus.Logger
	storeKey string
	strict   bool
	bookings []entity.Booking
}

func NewBookingRepository(kv store.KeyValueStore, log *logrus.Logger, storeKey string, strict bool) domainRepo.BookingRepository {
	return &bookingRepository{
		store:    kv,
		log:      log,
		storeKey: storeKey,
		strict:   strict,
		bookings: []entity.Booking{},
	}
}

func (r *bookingRepository) Load(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	value, err := r.store.Get(ctx, r.storeKey)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			r.bookings = []entity.Booking{}
			return nil
		}
		return err
	}

	var bookings []entity.Booking
	if err := json.Unmarshal([]byte(value), &bookings); err != nil {
		// Unparseable blob: start empty rather than crash
		r.bookings = []entity.Booking{}
		return fmt.Errorf("%w: %v", ErrDeserialization, err)
	}

	r.bookings = bookings
	return nil
}

func (r *bookingRepository) All(_ context.Context) []entity.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out
}

func (r *bookingRepository) FindByID(_ context.Context, id string) (*entity.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.bookings {
		if r.bookings[i].ID == id {
			booking := r.bookings[i]
			return &booking, nil
		}
	}
	return nil, nil
}

func (r *bookingRepository) FindByStatus(_ context.Context, status entity.BookingStatus) []entity.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []entity.Booking{}
	for _, booking := range r.bookings {
		if booking.Status == status {
			out = append(out, booking)
		}
	}
	return out
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bookings = append(r.bookings, *booking)

	if err := r.persist(ctx); err != nil {
		// Roll back the append so memory and store stay consistent
		r.bookings = r.bookings[:len(r.bookings)-1]
		return err
	}
	return nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id string, status entity.BookingStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		if r.strict {
			return false, ErrBookingNotFound
		}
		return false, nil
	}

	booking := &r.bookings[idx]
	if !booking.CanTransitionTo(status) {
		if r.strict {
			return false, ErrInvalidTransition
		}
		return false, nil
	}

	previous := *booking
	switch status {
	case entity.BookingStatusCompleted:
		booking.Complete()
	case entity.BookingStatusCancelled:
		booking.Cancel()
	}

	if err := r.persist(ctx); err != nil {
		r.bookings[idx] = previous
		return false, err
	}
	return true, nil
}

func (r *bookingRepository) AttachReview(ctx context.Context, id string, review entity.Review) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		if r.strict {
			return false, ErrBookingNotFound
		}
		return false, nil
	}

	booking := &r.bookings[idx]
	// Lenient mode mirrors the app: a review may be attached in any status
	if r.strict && !booking.IsCompleted() {
		return false, ErrReviewNotAllowed
	}

	previous := *booking
	booking.AttachReview(review)

	if err := r.persist(ctx); err != nil {
		r.bookings[idx] = previous
		return false, err
	}
	return true, nil
}

// indexOf must be called with the mutex held
func (r *bookingRepository) indexOf(id string) int {
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			return i
		}
	}
	return -1
}

// persist serializes the whole collection and writes it under the fixed
// store key, retrying once on failure. Must be called with the mutex held.
func (r *bookingRepository) persist(ctx context.Context) error {
	value, err := json.Marshal(r.bookings)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if err := r.store.Set(ctx, r.storeKey, string(value)); err != nil {
		r.log.Warnf("Store write failed, retrying once: %+v", err)
		if err := r.store.Set(ctx, r.storeKey, string(value)); err != nil {
			r.log.Errorf("Store write failed after retry: %+v", err)
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}
	}
	return nil
}
