package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/domain/entity"
	"go-doctor-directory/internal/usecase"
	"go-doctor-directory/pkg/response"
	"go-doctor-directory/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type SessionHandler struct {
	sessionUsecase usecase.DirectorySessionUsecase
	validator      *validator.CustomValidator
}

func NewSessionHandler(sessionUsecase usecase.DirectorySessionUsecase, validator *validator.CustomValidator) *SessionHandler {
	return &SessionHandler{
		sessionUsecase: sessionUsecase,
		validator:      validator,
	}
}

// CreateSession starts a session, seeding its filters from the request query string
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionUsecase.Create(r.Context(), r.URL.Query())
	if err != nil {
		response.InternalServerError(w, "Failed to create session")
		return
	}

	response.Success(w, http.StatusCreated, "Session created successfully", session)
}

func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	session, err := h.sessionUsecase.Get(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, usecase.ErrSessionNotFound) {
			response.NotFound(w, "Session not found")
			return
		}
		response.InternalServerError(w, "Failed to get session")
		return
	}

	response.Success(w, http.StatusOK, "Session retrieved successfully", session)
}

func (h *SessionHandler) DispatchAction(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	var req dto.FilterActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	session, err := h.sessionUsecase.Dispatch(r.Context(), sessionID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSessionNotFound):
			response.NotFound(w, "Session not found")
		case errors.Is(err, entity.ErrUnknownAction):
			response.Error(w, http.StatusBadRequest, "Unknown filter action", nil)
		default:
			response.InternalServerError(w, "Failed to apply filter action")
		}
		return
	}

	response.Success(w, http.StatusOK, "Filters updated successfully", session)
}

func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	if err := h.sessionUsecase.Delete(r.Context(), sessionID); err != nil {
		if errors.Is(err, usecase.ErrSessionNotFound) {
			response.NotFound(w, "Session not found")
			return
		}
		response.InternalServerError(w, "Failed to delete session")
		return
	}

	response.Success(w, http.StatusOK, "Session deleted successfully", nil)
}

func parseSessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	vars := mux.Vars(r)
	sessionID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid session ID", nil)
		return uuid.Nil, false
	}
	return sessionID, true
}
