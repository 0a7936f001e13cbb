package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorSearchBySpecialty(t *testing.T) {
	repo := NewDoctorRepository()

	pediatrics := repo.Search("", "Pediatrics")
	require.Len(t, pediatrics, 2)
	for _, doctor := range pediatrics {
		assert.Equal(t, "Pediatrics", doctor.Specialty)
	}

	// "All" and empty both match every specialty
	assert.Len(t, repo.Search("", "All"), len(repo.FindAll()))
	assert.Len(t, repo.Search("", ""), len(repo.FindAll()))
}

func TestDoctorSearchByQuery(t *testing.T) {
	repo := NewDoctorRepository()

	got := repo.Search("patel", "")
	require.Len(t, got, 1)
	assert.Equal(t, "Dr. David Patel", got[0].Name)

	// Clinic names match too
	got = repo.Search("maple", "")
	require.Len(t, got, 1)
	assert.Equal(t, "Dr. Michael Johnson", got[0].Name)

	assert.Empty(t, repo.Search("nobody", ""))
}

func TestDoctorFindByID(t *testing.T) {
	repo := NewDoctorRepository()

	doctor := repo.FindByID("1")
	require.NotNil(t, doctor)
	assert.Equal(t, "Dr. David Patel", doctor.Name)

	assert.Nil(t, repo.FindByID("999"))
}

func TestHospitalCatalog(t *testing.T) {
	repo := NewHospitalRepository()

	hospitals := repo.FindAll()
	require.Len(t, hospitals, 2)
	assert.Equal(t, "Sunrise Health Clinic", hospitals[0].Name)

	hospital := repo.FindByID("2")
	require.NotNil(t, hospital)
	assert.Equal(t, "Golden Cardiology", hospital.Name)

	assert.Len(t, repo.Nearby(), 2)
}
