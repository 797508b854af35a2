package converter

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/domain/entity"
)

const (
	unknownDoctorName     = "Unknown Doctor"
	noSpecialtiesLabel    = "No specialties listed"
	unavailableFeeLabel   = "N/A"
	feeCurrencySymbol     = "₹"
	DirectionsLink        = "https://maps.google.com/?q=city+hospital"
	ClinicAddress         = "123 Medical Center, City Hospital Road"
	DefaultContactNumber  = "+1 234-567-8900"
	ClinicWorkingDays     = "Monday - Saturday"
	ClinicWorkingHours    = "9:00 AM - 6:00 PM"
	ClinicClosedNotice    = "Closed on Sundays & Public Holidays"
	initialPlaceholder    = "DR"
)

// DoctorToResponse converts a Doctor entity to its card representation
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	specialties := doctor.Specialties
	if specialties == nil {
		specialties = []string{}
	}

	response := &dto.DoctorResponse{
		ID:               string(doctor.WithFallbackID()),
		Name:             doctor.Name,
		DisplayName:      "Dr. " + nameOrPlaceholder(doctor.Name),
		Initial:          initial(doctor.Name),
		Specialties:      specialties,
		ConsultationType: doctor.ConsultationType,
		Fees:             doctor.Fees,
		FeeLabel:         feeLabel(doctor.Fees),
		Experience:       doctor.ExperienceOrZero(),
		ExperienceLabel:  formatNumber(doctor.ExperienceOrZero()) + " Years Experience",
		Phone:            doctor.Phone,
		DirectionsLink:   DirectionsLink,
		CanVisitClinic:   strings.EqualFold(doctor.ConsultationType, entity.ConsultationTypeClinic),
		CanVideoConsult:  strings.EqualFold(doctor.ConsultationType, entity.ConsultationTypeVideo),
	}
	if len(specialties) == 0 {
		response.SpecialtiesLabel = noSpecialtiesLabel
	}
	if doctor.Phone != "" {
		response.PhoneLink = "tel:" + doctor.Phone
	}

	return response
}

// DoctorsToResponses converts a slice of Doctor entities to card responses
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

// DoctorToClinicDetails builds the clinic visit details of a doctor
func DoctorToClinicDetails(doctor *entity.Doctor) *dto.ClinicDetailsResponse {
	contact := doctor.Phone
	if contact == "" {
		contact = DefaultContactNumber
	}

	return &dto.ClinicDetailsResponse{
		DoctorID:       string(doctor.WithFallbackID()),
		Title:          "Clinic Details - Dr. " + nameOrPlaceholder(doctor.Name),
		Address:        ClinicAddress,
		ContactNumber:  contact,
		WorkingDays:    ClinicWorkingDays,
		WorkingHours:   ClinicWorkingHours,
		ClosedNotice:   ClinicClosedNotice,
		DirectionsLink: DirectionsLink,
		CallLink:       "tel:" + contact,
	}
}

func FilterStateToResponse(state entity.FilterState) dto.FilterStateResponse {
	specialties := state.Specialties
	if specialties == nil {
		specialties = []string{}
	}
	return dto.FilterStateResponse{
		ConsultType: state.ConsultType,
		Specialties: specialties,
		SortBy:      state.SortBy,
		Search:      state.Search,
	}
}

func nameOrPlaceholder(name string) string {
	if name == "" {
		return unknownDoctorName
	}
	return name
}

func initial(name string) string {
	if name == "" {
		name = initialPlaceholder
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r))
}

// feeLabel shows N/A for a missing or zero fee
func feeLabel(fees *float64) string {
	if fees == nil || *fees == 0 {
		return unavailableFeeLabel
	}
	return feeCurrencySymbol + formatNumber(*fees)
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
