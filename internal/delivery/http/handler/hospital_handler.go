package handler

import (
	"errors"
	"net/http"

	"eldercare-api/internal/usecase"
	"eldercare-api/pkg/response"

	"github.com/gorilla/mux"
)

type HospitalHandler struct {
	catalogUsecase usecase.CatalogUsecase
}

func NewHospitalHandler(catalogUsecase usecase.CatalogUsecase) *HospitalHandler {
	return &HospitalHandler{catalogUsecase: catalogUsecase}
}

func (h *HospitalHandler) ListHospitals(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Hospitals retrieved successfully", h.catalogUsecase.ListHospitals())
}

func (h *HospitalHandler) GetHospital(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	hospital, err := h.catalogUsecase.GetHospital(vars["id"])
	if err != nil {
		if errors.Is(err, usecase.ErrHospitalNotFound) {
			response.NotFound(w, "Hospital not found")
			return
		}
		response.InternalServerError(w, "Failed to get hospital")
		return
	}

	response.Success(w, http.StatusOK, "Hospital retrieved successfully", hospital)
}

// NearbyHospitals serves the map screen markers
func (h *HospitalHandler) NearbyHospitals(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Nearby hospitals retrieved successfully", h.catalogUsecase.NearbyHospitals())
}
