package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an app account. Accounts live in process memory only;
// there is no identity backend behind them.
type User struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
