package usecase

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"go-doctor-directory/internal/converter"
	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/domain/entity"
	"go-doctor-directory/internal/domain/repository"
	"go-doctor-directory/internal/querysync"
	"go-doctor-directory/internal/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"
)

// maxSuggestions caps the search-bar autocomplete list
const maxSuggestions = 3

var (
	ErrDoctorNotFound        = errors.New("doctor not found")
	ErrClinicVisitNotOffered = errors.New("doctor does not offer clinic visits")
)

var (
	directoryQueries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "doctordirectory_queries_total",
		Help: "The total number of derived directory views",
	})
	suggestionQueries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "doctordirectory_suggest_total",
		Help: "The total number of processed suggestions",
	})
)

type DoctorDirectoryUsecase interface {
	Browse(ctx context.Context, query url.Values) *dto.DirectoryResponse
	View(ctx context.Context, state entity.FilterState, publishedQuery string) *dto.DirectoryResponse
	GetSpecialties(ctx context.Context) *dto.SpecialtyListResponse
	Suggest(ctx context.Context, input string) *dto.SuggestionResponse
	GetClinicDetails(ctx context.Context, doctorID string) (*dto.ClinicDetailsResponse, error)
	IsDatasetLoaded() bool
}

type doctorDirectoryUsecase struct {
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
}

func NewDoctorDirectoryUsecase(log *logrus.Logger, doctorRepo repository.DoctorRepository) DoctorDirectoryUsecase {
	return &doctorDirectoryUsecase{
		log:        log,
		doctorRepo: doctorRepo,
	}
}

// Browse derives a view straight from a request query string, without a session.
// Every request is its own page load: one load pass, then one publish pass.
func (u *doctorDirectoryUsecase) Browse(ctx context.Context, query url.Values) *dto.DirectoryResponse {
	sync := querysync.NewSynchronizer()
	state := sync.Load(query, entity.FilterState{})

	published, err := sync.Publish(state)
	if err != nil {
		u.log.Warnf("Failed to publish query string: %+v", err)
	}
	return u.View(ctx, state, published)
}

// View runs the filter pipeline for state
func (u *doctorDirectoryUsecase) View(ctx context.Context, state entity.FilterState, publishedQuery string) *dto.DirectoryResponse {
	directoryQueries.Inc()

	doctors := u.doctorRepo.FindAll()
	visible := service.FilterDoctors(doctors, state)

	u.log.WithFields(logrus.Fields{
		"query":   publishedQuery,
		"matches": len(visible),
		"total":   len(doctors),
	}).Debug("Derived directory view")

	return &dto.DirectoryResponse{
		Filters:       converter.FilterStateToResponse(state),
		Query:         publishedQuery,
		Doctors:       converter.DoctorsToResponses(visible),
		Total:         len(visible),
		Specialties:   service.SpecialtyOptions(doctors),
		DatasetLoaded: u.doctorRepo.IsLoaded(),
	}
}

func (u *doctorDirectoryUsecase) GetSpecialties(ctx context.Context) *dto.SpecialtyListResponse {
	specialties := service.SpecialtyOptions(u.doctorRepo.FindAll())
	return &dto.SpecialtyListResponse{
		Specialties: specialties,
		Total:       len(specialties),
	}
}

func (u *doctorDirectoryUsecase) Suggest(ctx context.Context, input string) *dto.SuggestionResponse {
	suggestionQueries.Inc()
	return &dto.SuggestionResponse{
		Query:       input,
		Suggestions: service.SuggestDoctorNames(u.doctorRepo.FindAll(), input, maxSuggestions),
	}
}

func (u *doctorDirectoryUsecase) GetClinicDetails(ctx context.Context, doctorID string) (*dto.ClinicDetailsResponse, error) {
	doctors := u.doctorRepo.FindAll()
	for i := range doctors {
		doctor := &doctors[i]
		if string(doctor.WithFallbackID()) != doctorID {
			continue
		}
		if !strings.EqualFold(doctor.ConsultationType, entity.ConsultationTypeClinic) {
			return nil, ErrClinicVisitNotOffered
		}
		return converter.DoctorToClinicDetails(doctor), nil
	}

	u.log.Warnf("Failed to find doctor: %s", doctorID)
	return nil, ErrDoctorNotFound
}

func (u *doctorDirectoryUsecase) IsDatasetLoaded() bool {
	return u.doctorRepo.IsLoaded()
}
