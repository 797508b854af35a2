package http

import (
	"net/http"

	"go-doctor-directory/internal/delivery/http/handler"
	"go-doctor-directory/internal/delivery/http/middleware"
	"go-doctor-directory/pkg/response"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DatasetStatus reports whether the doctor dataset has arrived
type DatasetStatus interface {
	IsDatasetLoaded() bool
}

type Router struct {
	router            *mux.Router
	doctorHandler     *handler.DoctorHandler
	sessionHandler    *handler.SessionHandler
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
	datasetStatus     DatasetStatus
}

func NewRouter(
	doctorHandler *handler.DoctorHandler,
	sessionHandler *handler.SessionHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	datasetStatus DatasetStatus,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		doctorHandler:     doctorHandler,
		sessionHandler:    sessionHandler,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
		datasetStatus:     datasetStatus,
	}
}

func (r *Router) Setup() *mux.Router {
	// Metrics
	r.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// Preflight requests are answered by the CORS middleware
	r.router.Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, req *http.Request) {})

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Directory routes
	api.HandleFunc("/doctors", r.doctorHandler.ListDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/suggestions", r.doctorHandler.Suggest).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}/clinic", r.doctorHandler.GetClinicDetails).Methods(http.MethodGet)
	api.HandleFunc("/specialties", r.doctorHandler.GetSpecialties).Methods(http.MethodGet)

	// Session routes
	api.HandleFunc("/sessions", r.sessionHandler.CreateSession).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}", r.sessionHandler.GetSession).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}", r.sessionHandler.DeleteSession).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{id}/actions", r.sessionHandler.DispatchAction).Methods(http.MethodPost)

	// Add middleware
	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"status":         "ok",
		"dataset_loaded": r.datasetStatus.IsDatasetLoaded(),
	})
}
