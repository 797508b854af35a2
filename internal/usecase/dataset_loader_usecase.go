package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go-doctor-directory/internal/domain/entity"
	"go-doctor-directory/internal/domain/repository"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"
)

var ErrDatasetLoadAttempted = errors.New("doctor dataset load already attempted")

var (
	datasetLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "doctordirectory_dataset_loads_total",
		Help: "The total number of dataset load attempts by result",
	}, []string{"result"})
	datasetSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "doctordirectory_dataset_doctors",
		Help: "The number of doctors in the loaded dataset",
	})
)

// DoctorSource provides the raw doctor dataset
type DoctorSource interface {
	FetchDoctors(ctx context.Context) ([]entity.Doctor, error)
}

type DatasetLoaderUsecase interface {
	Load(ctx context.Context) error
}

type datasetLoaderUsecase struct {
	log        *logrus.Logger
	source     DoctorSource
	doctorRepo repository.DoctorRepository
	attempted  atomic.Bool
}

func NewDatasetLoaderUsecase(
	log *logrus.Logger,
	source DoctorSource,
	doctorRepo repository.DoctorRepository,
) DatasetLoaderUsecase {
	return &datasetLoaderUsecase{
		log:        log,
		source:     source,
		doctorRepo: doctorRepo,
	}
}

// Load fetches the dataset exactly once. A failed attempt is logged and leaves
// the dataset empty; it is never retried.
func (u *datasetLoaderUsecase) Load(ctx context.Context) error {
	if !u.attempted.CompareAndSwap(false, true) {
		return ErrDatasetLoadAttempted
	}

	startTime := time.Now()
	doctors, err := u.source.FetchDoctors(ctx)
	if err != nil {
		datasetLoads.WithLabelValues("failure").Inc()
		u.log.Errorf("Error fetching doctors: %+v", err)
		return fmt.Errorf("load doctor dataset: %w", err)
	}

	for i := range doctors {
		doctors[i].Index = i
	}

	if err := u.doctorRepo.Store(doctors); err != nil {
		datasetLoads.WithLabelValues("failure").Inc()
		u.log.Errorf("Failed to store doctor dataset: %+v", err)
		return fmt.Errorf("store doctor dataset: %w", err)
	}

	datasetLoads.WithLabelValues("success").Inc()
	datasetSize.Set(float64(len(doctors)))
	u.log.WithFields(logrus.Fields{
		"doctors": len(doctors),
		"elapsed": time.Since(startTime).String(),
	}).Info("Doctor dataset loaded")

	return nil
}
