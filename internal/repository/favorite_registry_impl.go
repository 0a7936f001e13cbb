package repository

import (
	"sync"

	"eldercare-api/internal/domain/entity"
	domainRepo "eldercare-api/internal/domain/repository"
)

// favoriteRegistry is a memory-only membership list. Add does not dedupe:
// adding the same id twice keeps both entries, and Remove clears them all.
type favoriteRegistry[T any] struct {
	mu    sync.RWMutex
	keyOf func(T) string
	items []T
}

func newFavoriteRegistry[T any](keyOf func(T) string) *favoriteRegistry[T] {
	return &favoriteRegistry[T]{
		keyOf: keyOf,
		items: []T{},
	}
}

// NewDoctorFavorites creates the favorite-doctors registry
func NewDoctorFavorites() domainRepo.FavoriteRegistry[entity.Doctor] {
	return newFavoriteRegistry(func(d entity.Doctor) string { return d.ID })
}

// NewHospitalFavorites creates the favorite-hospitals registry
func NewHospitalFavorites() domainRepo.FavoriteRegistry[entity.Hospital] {
	return newFavoriteRegistry(func(h entity.Hospital) string { return h.ID })
}

func (r *favoriteRegistry[T]) Add(item T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, item)
}

func (r *favoriteRegistry[T]) Remove(id string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.items[:0]
	removed := 0
	for _, item := range r.items {
		if r.keyOf(item) == id {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	r.items = kept
	return removed
}

func (r *favoriteRegistry[T]) IsFavorite(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if r.keyOf(item) == id {
			return true
		}
	}
	return false
}

func (r *favoriteRegistry[T]) List() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}
