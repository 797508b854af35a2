package repository

import (
	"sync/atomic"

	"go-doctor-directory/internal/domain/entity"
	domainRepo "go-doctor-directory/internal/domain/repository"
)

type doctorRepository struct {
	doctors atomic.Pointer[[]entity.Doctor]
}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

// Store publishes the dataset. Only the first call succeeds.
func (r *doctorRepository) Store(doctors []entity.Doctor) error {
	snapshot := make([]entity.Doctor, len(doctors))
	copy(snapshot, doctors)

	if !r.doctors.CompareAndSwap(nil, &snapshot) {
		return domainRepo.ErrDatasetAlreadyLoaded
	}
	return nil
}

// FindAll returns the loaded dataset, or an empty slice before the load.
// The returned slice is shared and must be treated as read-only.
func (r *doctorRepository) FindAll() []entity.Doctor {
	doctors := r.doctors.Load()
	if doctors == nil {
		return []entity.Doctor{}
	}
	return *doctors
}

func (r *doctorRepository) IsLoaded() bool {
	return r.doctors.Load() != nil
}
