package repository

import (
	"strings"
	"sync"

	"eldercare-api/internal/domain/entity"
	domainRepo "eldercare-api/internal/domain/repository"

	"github.com/google/uuid"
)

// userRepository keeps accounts in memory; they reset on restart
type userRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*entity.User
}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{users: make(map[uuid.UUID]*entity.User)}
}

func (r *userRepository) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return ErrEmailAlreadyExists
		}
	}

	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *userRepository) FindByEmail(email string) *entity.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			found := *user
			return &found
		}
	}
	return nil
}

func (r *userRepository) FindByID(id uuid.UUID) *entity.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil
	}
	found := *user
	return &found
}

func (r *userRepository) Update(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return ErrUserNotFound
	}
	stored := *user
	r.users[user.ID] = &stored
	return nil
}
