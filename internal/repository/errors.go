package repository

import "errors"

var (
	// ErrDeserialization means the stored collection blob is unparseable.
	// Callers treat it as "start empty": it is logged, never surfaced.
	ErrDeserialization = errors.New("stored booking data is malformed")

	// ErrPersistence means the store write failed after a retry and the
	// in-memory mutation was rolled back
	ErrPersistence = errors.New("failed to persist booking collection")

	// Strict-mode errors. In lenient mode the same conditions are silent
	// no-ops.
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidTransition = errors.New("booking status does not allow this transition")
	ErrReviewNotAllowed  = errors.New("review is only allowed on completed bookings")

	// User repository errors
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
)
