package repository

import "eldercare-api/internal/domain/entity"

// DoctorRepository serves the static doctor catalog
type DoctorRepository interface {
	FindAll() []entity.Doctor
	FindByID(id string) *entity.Doctor
	// Search filters by free-text query over name and clinic, and by
	// specialty ("All" or empty matches every specialty).
	Search(query, specialty string) []entity.Doctor
	Specialties() []string
}

// HospitalRepository serves the static medical-center catalog
type HospitalRepository interface {
	FindAll() []entity.Hospital
	FindByID(id string) *entity.Hospital
	// Nearby returns the centers shown as map markers
	Nearby() []entity.Hospital
}
