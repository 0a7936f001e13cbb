package usecase

import (
	"eldercare-api/internal/converter"
	"eldercare-api/internal/delivery/dto"
	"eldercare-api/internal/domain/entity"
	"eldercare-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type FavoriteUsecase interface {
	AddFavoriteDoctor(id string) error
	RemoveFavoriteDoctor(id string)
	IsFavoriteDoctor(id string) bool
	ListFavoriteDoctors() *dto.DoctorListResponse

	AddFavoriteHospital(id string) error
	RemoveFavoriteHospital(id string)
	IsFavoriteHospital(id string) bool
	ListFavoriteHospitals() *dto.HospitalListResponse
}

type favoriteUsecase struct {
	log               *logrus.Logger
	doctorRepo        repository.DoctorRepository
	hospitalRepo      repository.HospitalRepository
	doctorFavorites   repository.FavoriteRegistry[entity.Doctor]
	hospitalFavorites repository.FavoriteRegistry[entity.Hospital]
}

func NewFavoriteUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	hospitalRepo repository.HospitalRepository,
	doctorFavorites repository.FavoriteRegistry[entity.Doctor],
	hospitalFavorites repository.FavoriteRegistry[entity.Hospital],
) FavoriteUsecase {
	return &favoriteUsecase{
		log:               log,
		doctorRepo:        doctorRepo,
		hospitalRepo:      hospitalRepo,
		doctorFavorites:   doctorFavorites,
		hospitalFavorites: hospitalFavorites,
	}
}

func (u *favoriteUsecase) AddFavoriteDoctor(id string) error {
	doctor := u.doctorRepo.FindByID(id)
	if doctor == nil {
		return ErrDoctorNotFound
	}
	u.doctorFavorites.Add(*doctor)
	return nil
}

func (u *favoriteUsecase) RemoveFavoriteDoctor(id string) {
	removed := u.doctorFavorites.Remove(id)
	if removed > 1 {
		u.log.Infof("Removed %d duplicate favorite entries for doctor %s", removed, id)
	}
}

func (u *favoriteUsecase) IsFavoriteDoctor(id string) bool {
	return u.doctorFavorites.IsFavorite(id)
}

func (u *favoriteUsecase) ListFavoriteDoctors() *dto.DoctorListResponse {
	doctors := u.doctorFavorites.List()
	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}
}

func (u *favoriteUsecase) AddFavoriteHospital(id string) error {
	hospital := u.hospitalRepo.FindByID(id)
	if hospital == nil {
		return ErrHospitalNotFound
	}
	u.hospitalFavorites.Add(*hospital)
	return nil
}

func (u *favoriteUsecase) RemoveFavoriteHospital(id string) {
	removed := u.hospitalFavorites.Remove(id)
	if removed > 1 {
		u.log.Infof("Removed %d duplicate favorite entries for hospital %s", removed, id)
	}
}

func (u *favoriteUsecase) IsFavoriteHospital(id string) bool {
	return u.hospitalFavorites.IsFavorite(id)
}

func (u *favoriteUsecase) ListFavoriteHospitals() *dto.HospitalListResponse {
	hospitals := u.hospitalFavorites.List()
	return &dto.HospitalListResponse{
		Hospitals: converter.HospitalsToResponses(hospitals),
		Total:     len(hospitals),
	}
}
