package repository

import (
	"context"

	"eldercare-api/internal/domain/entity"
)

// BookingRepository is the single source of truth for the booking
// collection. Every mutation rewrites the entire serialized collection in
// the backing key-value store before it returns, so in-memory state and
// stored state stay consistent.
type BookingRepository interface {
	// Load replaces the in-memory collection with the stored one. A missing
	// key leaves the collection empty. Malformed stored data resets the
	// collection to empty and returns a deserialization error the caller is
	// expected to log and ignore.
	Load(ctx context.Context) error

	All(ctx context.Context) []entity.Booking
	FindByID(ctx context.Context, id string) (*entity.Booking, error)
	FindByStatus(ctx context.Context, status entity.BookingStatus) []entity.Booking

	// Create appends the booking and persists. On persistence failure the
	// append is rolled back.
	Create(ctx context.Context, booking *entity.Booking) error

	// UpdateStatus applies a state-machine transition by id and persists.
	// Returns whether a booking was changed: unknown ids and transitions out
	// of a terminal state are silent no-ops in lenient mode and errors in
	// strict mode.
	UpdateStatus(ctx context.Context, id string, status entity.BookingStatus) (bool, error)

	// AttachReview sets the review on a booking without changing its status,
	// under the same no-op contract as UpdateStatus.
	AttachReview(ctx context.Context, id string, review entity.Review) (bool, error)
}
