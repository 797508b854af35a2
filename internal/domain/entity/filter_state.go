package entity

// Sort keys understood by the filter pipeline
const (
	SortByFees       = "fees"
	SortByExperience = "experience"
)

// FilterState is the complete set of search, filter and sort criteria.
// Empty fields mean the corresponding stage is inactive.
type FilterState struct {
	ConsultType string   `json:"consult_type"`
	Specialties []string `json:"specialties"`
	SortBy      string   `json:"sort_by"`
	Search      string   `json:"search"`
}

// IsEmpty reports whether no criteria are set
func (s FilterState) IsEmpty() bool {
	return s.ConsultType == "" && len(s.Specialties) == 0 && s.SortBy == "" && s.Search == ""
}

// Clone returns a copy that shares no memory with s
func (s FilterState) Clone() FilterState {
	clone := s
	if s.Specialties != nil {
		clone.Specialties = make([]string, len(s.Specialties))
		copy(clone.Specialties, s.Specialties)
	}
	return clone
}
