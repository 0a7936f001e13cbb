package repository

import (
	"eldercare-api/internal/domain/entity"
	domainRepo "eldercare-api/internal/domain/repository"
)

type hospitalRepository struct {
	hospitals []entity.Hospital
}

func NewHospitalRepository() domainRepo.HospitalRepository {
	return &hospitalRepository{hospitals: hospitalCatalog}
}

func (r *hospitalRepository) FindAll() []entity.Hospital {
	out := make([]entity.Hospital, len(r.hospitals))
	copy(out, r.hospitals)
	return out
}

func (r *hospitalRepository) FindByID(id string) *entity.Hospital {
	for i := range r.hospitals {
		if r.hospitals[i].ID == id {
			hospital := r.hospitals[i]
			return &hospital
		}
	}
	return nil
}

// Nearby returns every catalog center; without real geolocation the map
// shows the full set of markers
func (r *hospitalRepository) Nearby() []entity.Hospital {
	return r.FindAll()
}
