package dto

// Response DTOs

type DoctorResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name,omitempty"`
	DisplayName      string   `json:"display_name"`
	Initial          string   `json:"initial"`
	Specialties      []string `json:"specialties"`
	SpecialtiesLabel string   `json:"specialties_label,omitempty"`
	ConsultationType string   `json:"consultation_type,omitempty"`
	Fees             *float64 `json:"fees"`
	FeeLabel         string   `json:"fee_label"`
	Experience       float64  `json:"experience"`
	ExperienceLabel  string   `json:"experience_label"`
	Phone            string   `json:"phone,omitempty"`
	PhoneLink        string   `json:"phone_link,omitempty"`
	DirectionsLink   string   `json:"directions_link"`
	CanVisitClinic   bool     `json:"can_visit_clinic"`
	CanVideoConsult  bool     `json:"can_video_consult"`
}

type ClinicDetailsResponse struct {
	DoctorID       string `json:"doctor_id"`
	Title          string `json:"title"`
	Address        string `json:"address"`
	ContactNumber  string `json:"contact_number"`
	WorkingDays    string `json:"working_days"`
	WorkingHours   string `json:"working_hours"`
	ClosedNotice   string `json:"closed_notice"`
	DirectionsLink string `json:"directions_link"`
	CallLink       string `json:"call_link"`
}

type SpecialtyListResponse struct {
	Specialties []string `json:"specialties"`
	Total       int      `json:"total"`
}

type SuggestionResponse struct {
	Query       string   `json:"query"`
	Suggestions []string `json:"suggestions"`
}
