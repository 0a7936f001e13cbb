package converter

import (
	"eldercare-api/internal/delivery/dto"
	"eldercare-api/internal/domain/entity"
)

func HospitalToResponse(hospital *entity.Hospital) *dto.HospitalResponse {
	if hospital == nil {
		return nil
	}

	return &dto.HospitalResponse{
		ID:        hospital.ID,
		Name:      hospital.Name,
		Address:   hospital.Address,
		Type:      hospital.Type,
		Rating:    hospital.Rating,
		Reviews:   hospital.Reviews,
		Distance:  hospital.Distance,
		Image:     hospital.Image,
		Latitude:  hospital.Latitude,
		Longitude: hospital.Longitude,
	}
}

func HospitalsToResponses(hospitals []entity.Hospital) []dto.HospitalResponse {
	responses := make([]dto.HospitalResponse, len(hospitals))
	for i, hospital := range hospitals {
		responses[i] = *HospitalToResponse(&hospital)
	}
	return responses
}
