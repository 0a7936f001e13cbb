package usecase

import (
	"errors"

	"eldercare-api/internal/converter"
	"eldercare-api/internal/delivery/dto"
	"eldercare-api/internal/domain/repository"
)

var ErrHospitalNotFound = errors.New("hospital not found")

type CatalogUsecase interface {
	ListDoctors(query, specialty string) *dto.DoctorListResponse
	GetDoctor(id string) (*dto.DoctorResponse, error)
	ListSpecialties() *dto.SpecialtyListResponse
	ListHospitals() *dto.HospitalListResponse
	GetHospital(id string) (*dto.HospitalResponse, error)
	NearbyHospitals() *dto.HospitalListResponse
}

type catalogUsecase struct {
	doctorRepo   repository.DoctorRepository
	hospitalRepo repository.HospitalRepository
}

func NewCatalogUsecase(doctorRepo repository.DoctorRepository, hospitalRepo repository.HospitalRepository) CatalogUsecase {
	return &catalogUsecase{
		doctorRepo:   doctorRepo,
		hospitalRepo: hospitalRepo,
	}
}

func (u *catalogUsecase) ListDoctors(query, specialty string) *dto.DoctorListResponse {
	doctors := u.doctorRepo.Search(query, specialty)
	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}
}

func (u *catalogUsecase) GetDoctor(id string) (*dto.DoctorResponse, error) {
	doctor := u.doctorRepo.FindByID(id)
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return converter.DoctorToResponse(doctor), nil
}

func (u *catalogUsecase) ListSpecialties() *dto.SpecialtyListResponse {
	return &dto.SpecialtyListResponse{Specialties: u.doctorRepo.Specialties()}
}

func (u *catalogUsecase) ListHospitals() *dto.HospitalListResponse {
	hospitals := u.hospitalRepo.FindAll()
	return &dto.HospitalListResponse{
		Hospitals: converter.HospitalsToResponses(hospitals),
		Total:     len(hospitals),
	}
}

func (u *catalogUsecase) GetHospital(id string) (*dto.HospitalResponse, error) {
	hospital := u.hospitalRepo.FindByID(id)
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}
	return converter.HospitalToResponse(hospital), nil
}

func (u *catalogUsecase) NearbyHospitals() *dto.HospitalListResponse {
	hospitals := u.hospitalRepo.Nearby()
	return &dto.HospitalListResponse{
		Hospitals: converter.HospitalsToResponses(hospitals),
		Total:     len(hospitals),
	}
}
