package converter

import (
	"eldercare-api/internal/delivery/dto"
	"eldercare-api/internal/domain/entity"
)

func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:        doctor.ID,
		Name:      doctor.Name,
		Specialty: doctor.Specialty,
		Clinic:    doctor.Clinic,
		Rating:    doctor.Rating,
		Reviews:   doctor.Reviews,
		Image:     doctor.Image,
	}
}

func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		responses[i] = *DoctorToResponse(&doctor)
	}
	return responses
}
