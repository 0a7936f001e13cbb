package dto

// Request DTOs

// AddFavoriteRequest names the catalog record to favorite by id; the full
// record is copied from the catalog server-side
type AddFavoriteRequest struct {
	ID string `json:"id" validate:"required"`
}

// Response DTOs

type FavoriteStatusResponse struct {
	ID         string `json:"id"`
	IsFavorite bool   `json:"is_favorite"`
}
