package repository

import (
	"testing"

	"eldercare-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteAddRemoveMembership(t *testing.T) {
	favorites := NewDoctorFavorites()

	doctor := entity.Doctor{ID: "1", Name: "Dr. David Patel"}
	favorites.Add(doctor)

	assert.True(t, favorites.IsFavorite("1"))
	assert.False(t, favorites.IsFavorite("2"))

	removed := favorites.Remove("1")
	assert.Equal(t, 1, removed)
	assert.False(t, favorites.IsFavorite("1"))
	assert.Empty(t, favorites.List())
}

func TestFavoriteDuplicateAddsAndSingleRemove(t *testing.T) {
	favorites := NewDoctorFavorites()

	// Add does not dedupe: the same doctor twice means two entries
	doctor := entity.Doctor{ID: "1", Name: "Dr. David Patel"}
	favorites.Add(doctor)
	favorites.Add(doctor)

	assert.True(t, favorites.IsFavorite("1"))
	require.Len(t, favorites.List(), 2)

	// One Remove clears every entry for the id
	removed := favorites.Remove("1")
	assert.Equal(t, 2, removed)
	assert.False(t, favorites.IsFavorite("1"))
	assert.Empty(t, favorites.List())
}

func TestFavoriteRemoveKeepsOtherEntries(t *testing.T) {
	favorites := NewHospitalFavorites()

	favorites.Add(entity.Hospital{ID: "1", Name: "Sunrise Health Clinic"})
	favorites.Add(entity.Hospital{ID: "2", Name: "Golden Cardiology"})

	favorites.Remove("1")

	assert.False(t, favorites.IsFavorite("1"))
	assert.True(t, favorites.IsFavorite("2"))
	require.Len(t, favorites.List(), 1)
	assert.Equal(t, "Golden Cardiology", favorites.List()[0].Name)
}

func TestFavoriteRemoveUnknownIDIsNoOp(t *testing.T) {
	favorites := NewDoctorFavorites()
	favorites.Add(entity.Doctor{ID: "1"})

	assert.Equal(t, 0, favorites.Remove("missing"))
	assert.Len(t, favorites.List(), 1)
}
