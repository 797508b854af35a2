package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type FilterActionRequest struct {
	Type   string   `json:"type" validate:"required,oneof=set_search set_consult_type toggle_specialty set_specialties set_sort reset"`
	Value  string   `json:"value" validate:"required_if=Type toggle_specialty,max=200"`
	Values []string `json:"values" validate:"omitempty,max=100,dive,required,max=200"`
}

// Response DTOs

type FilterStateResponse struct {
	ConsultType string   `json:"consult_type"`
	Specialties []string `json:"specialties"`
	SortBy      string   `json:"sort_by"`
	Search      string   `json:"search"`
}

// DirectoryResponse is the derived view of the dataset for one FilterState
type DirectoryResponse struct {
	Filters       FilterStateResponse `json:"filters"`
	Query         string              `json:"query"`
	Doctors       []DoctorResponse    `json:"doctors"`
	Total         int                 `json:"total"`
	Specialties   []string            `json:"specialties"`
	DatasetLoaded bool                `json:"dataset_loaded"`
}

type SessionResponse struct {
	SessionID uuid.UUID `json:"session_id"`
	DirectoryResponse
}
