package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"eldercare-api/internal/delivery/dto"
	"eldercare-api/internal/usecase"
	"eldercare-api/pkg/response"
	"eldercare-api/pkg/validator"

	"github.com/gorilla/mux"
)

type FavoriteHandler struct {
	favoriteUsecase usecase.FavoriteUsecase
	validator       *validator.CustomValidator
}

func NewFavoriteHandler(favoriteUsecase usecase.FavoriteUsecase, validator *validator.CustomValidator) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUsecase: favoriteUsecase,
		validator:       validator,
	}
}

func (h *FavoriteHandler) ListFavoriteDoctors(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Favorite doctors retrieved successfully", h.favoriteUsecase.ListFavoriteDoctors())
}

func (h *FavoriteHandler) AddFavoriteDoctor(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeAddRequest(w, r)
	if !ok {
		return
	}

	if err := h.favoriteUsecase.AddFavoriteDoctor(req.ID); err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to add favorite")
		return
	}

	response.Success(w, http.StatusCreated, "Favorite doctor added successfully", nil)
}

func (h *FavoriteHandler) RemoveFavoriteDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	h.favoriteUsecase.RemoveFavoriteDoctor(vars["id"])
	response.Success(w, http.StatusOK, "Favorite doctor removed successfully", nil)
}

func (h *FavoriteHandler) GetFavoriteDoctorStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	status := &dto.FavoriteStatusResponse{
		ID:         vars["id"],
		IsFavorite: h.favoriteUsecase.IsFavoriteDoctor(vars["id"]),
	}
	response.Success(w, http.StatusOK, "Favorite status retrieved successfully", status)
}

func (h *FavoriteHandler) ListFavoriteHospitals(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Favorite hospitals retrieved successfully", h.favoriteUsecase.ListFavoriteHospitals())
}

func (h *FavoriteHandler) AddFavoriteHospital(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeAddRequest(w, r)
	if !ok {
		return
	}

	if err := h.favoriteUsecase.AddFavoriteHospital(req.ID); err != nil {
		if errors.Is(err, usecase.ErrHospitalNotFound) {
			response.NotFound(w, "Hospital not found")
			return
		}
		response.InternalServerError(w, "Failed to add favorite")
		return
	}

	response.Success(w, http.StatusCreated, "Favorite hospital added successfully", nil)
}

func (h *FavoriteHandler) RemoveFavoriteHospital(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	h.favoriteUsecase.RemoveFavoriteHospital(vars["id"])
	response.Success(w, http.StatusOK, "Favorite hospital removed successfully", nil)
}

func (h *FavoriteHandler) GetFavoriteHospitalStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	status := &dto.FavoriteStatusResponse{
		ID:         vars["id"],
		IsFavorite: h.favoriteUsecase.IsFavoriteHospital(vars["id"]),
	}
	response.Success(w, http.StatusOK, "Favorite status retrieved successfully", status)
}

func (h *FavoriteHandler) decodeAddRequest(w http.ResponseWriter, r *http.Request) (*dto.AddFavoriteRequest, bool) {
	var req dto.AddFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return nil, false
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return nil, false
	}
	return &req, true
}
