package repository

import (
	"eldercare-api/internal/domain/entity"

	"github.com/google/uuid"
)

// UserRepository holds app accounts in process memory
type UserRepository interface {
	Create(user *entity.User) error
	FindByEmail(email string) *entity.User
	FindByID(id uuid.UUID) *entity.User
	Update(user *entity.User) error
}
