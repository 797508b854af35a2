package entity

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Consultation types offered by the remote dataset
const (
	ConsultationTypeVideo  = "video"
	ConsultationTypeClinic = "clinic"
)

// Doctor represents a single record of the remote doctor dataset.
// Optional numeric fields are pointers so an absent value can be told apart from zero.
type Doctor struct {
	ID               DoctorID `json:"id,omitempty"`
	Name             string   `json:"name,omitempty"`
	Specialties      []string `json:"specialties,omitempty"`
	ConsultationType string   `json:"consultationType,omitempty"`
	Fees             *float64 `json:"fees,omitempty"`
	Experience       *float64 `json:"experience,omitempty"`
	Phone            string   `json:"phone,omitempty"`

	// Position in the loaded dataset
	Index int `json:"-"`
}

// FeeOrZero returns the consultation fee, treating a missing fee as 0
func (d *Doctor) FeeOrZero() float64 {
	if d.Fees == nil {
		return 0
	}
	return *d.Fees
}

// ExperienceOrZero returns the years of experience, treating a missing value as 0
func (d *Doctor) ExperienceOrZero() float64 {
	if d.Experience == nil {
		return 0
	}
	return *d.Experience
}

// HasAnySpecialty reports whether any of the doctor's specialties is in the given set
func (d *Doctor) HasAnySpecialty(selected map[string]struct{}) bool {
	for _, specialty := range d.Specialties {
		if _, ok := selected[specialty]; ok {
			return true
		}
	}
	return false
}

// DoctorID is an identifier that may arrive as a JSON string or number
type DoctorID string

func (id *DoctorID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = DoctorID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = DoctorID(n.String())
	return nil
}

// WithFallbackID returns the identifier or, when absent, the positional index
func (d *Doctor) WithFallbackID() DoctorID {
	if d.ID != "" {
		return d.ID
	}
	return DoctorID(strconv.Itoa(d.Index))
}
