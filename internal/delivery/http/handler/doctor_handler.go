package handler

import (
	"errors"
	"net/http"

	"go-doctor-directory/internal/usecase"
	"go-doctor-directory/pkg/response"

	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	directoryUsecase usecase.DoctorDirectoryUsecase
}

func NewDoctorHandler(directoryUsecase usecase.DoctorDirectoryUsecase) *DoctorHandler {
	return &DoctorHandler{
		directoryUsecase: directoryUsecase,
	}
}

// ListDoctors returns the doctors matching the filters in the query string
func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	view := h.directoryUsecase.Browse(r.Context(), r.URL.Query())
	response.Success(w, http.StatusOK, "Doctors retrieved successfully", view)
}

func (h *DoctorHandler) GetSpecialties(w http.ResponseWriter, r *http.Request) {
	specialties := h.directoryUsecase.GetSpecialties(r.Context())
	response.Success(w, http.StatusOK, "Specialties retrieved successfully", specialties)
}

func (h *DoctorHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	suggestions := h.directoryUsecase.Suggest(r.Context(), r.URL.Query().Get("q"))
	response.Success(w, http.StatusOK, "Suggestions retrieved successfully", suggestions)
}

func (h *DoctorHandler) GetClinicDetails(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	details, err := h.directoryUsecase.GetClinicDetails(r.Context(), vars["id"])
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		case errors.Is(err, usecase.ErrClinicVisitNotOffered):
			response.Error(w, http.StatusConflict, "Doctor does not offer clinic visits", nil)
		default:
			response.InternalServerError(w, "Failed to get clinic details")
		}
		return
	}

	response.Success(w, http.StatusOK, "Clinic details retrieved successfully", details)
}
