package repository

import (
	"strings"

	"eldercare-api/internal/domain/entity"
	domainRepo "eldercare-api/internal/domain/repository"
)

type doctorRepository struct {
	doctors     []entity.Doctor
	specialties []string
}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{
		doctors:     doctorCatalog,
		specialties: doctorSpecialties,
	}
}

func (r *doctorRepository) FindAll() []entity.Doctor {
	out := make([]entity.Doctor, len(r.doctors))
	copy(out, r.doctors)
	return out
}

func (r *doctorRepository) FindByID(id string) *entity.Doctor {
	for i := range r.doctors {
		if r.doctors[i].ID == id {
			doctor := r.doctors[i]
			return &doctor
		}
	}
	return nil
}

func (r *doctorRepository) Search(query, specialty string) []entity.Doctor {
	query = strings.ToLower(strings.TrimSpace(query))

	out := []entity.Doctor{}
	for _, doctor := range r.doctors {
		if specialty != "" && specialty != "All" && doctor.Specialty != specialty {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(doctor.Name), query) &&
			!strings.Contains(strings.ToLower(doctor.Clinic), query) {
			continue
		}
		out = append(out, doctor)
	}
	return out
}

func (r *doctorRepository) Specialties() []string {
	out := make([]string, len(r.specialties))
	copy(out, r.specialties)
	return out
}
