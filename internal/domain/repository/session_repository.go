package repository

import (
	"context"

	"go-doctor-directory/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionRepository stores the filter state of each directory session.
// FindByID returns nil without error when the session does not exist.
type SessionRepository interface {
	Save(ctx context.Context, id uuid.UUID, state entity.FilterState) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FilterState, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
