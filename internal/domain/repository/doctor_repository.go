package repository

import (
	"errors"

	"go-doctor-directory/internal/domain/entity"
)

var ErrDatasetAlreadyLoaded = errors.New("doctor dataset already loaded")

// DoctorRepository holds the doctor dataset fetched at startup.
// The dataset is written once and read-only afterwards.
type DoctorRepository interface {
	Store(doctors []entity.Doctor) error
	FindAll() []entity.Doctor
	IsLoaded() bool
}
