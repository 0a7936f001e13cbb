package handler

import (
	"errors"
	"net/http"

	"eldercare-api/internal/usecase"
	"eldercare-api/pkg/response"

	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	catalogUsecase usecase.CatalogUsecase
}

func NewDoctorHandler(catalogUsecase usecase.CatalogUsecase) *DoctorHandler {
	return &DoctorHandler{catalogUsecase: catalogUsecase}
}

func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	specialty := r.URL.Query().Get("specialty")

	doctors := h.catalogUsecase.ListDoctors(query, specialty)
	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	doctor, err := h.catalogUsecase.GetDoctor(vars["id"])
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to get doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

func (h *DoctorHandler) ListSpecialties(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Specialties retrieved successfully", h.catalogUsecase.ListSpecialties())
}
