package repository

// FavoriteRegistry is an in-memory, non-persisted membership collection.
// Two instances exist, one for doctors and one for hospitals; both reset to
// empty on process restart.
//
// Add appends unconditionally: adding the same id twice produces duplicate
// entries. Remove filters out every entry matching the id and returns how
// many were removed.
type FavoriteRegistry[T any] interface {
	Add(item T)
	Remove(id string) int
	IsFavorite(id string) bool
	List() []T
}
