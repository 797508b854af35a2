package repository

import (
	"context"
	"sync"
	"time"

	"go-doctor-directory/internal/domain/entity"
	domainRepo "go-doctor-directory/internal/domain/repository"

	"github.com/google/uuid"
)

type memorySessionEntry struct {
	state     entity.FilterState
	expiresAt time.Time
}

type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]memorySessionEntry
	ttl      time.Duration
	now      func() time.Time
}

// NewMemorySessionRepository keeps sessions in process memory.
// A session expires ttl after its last save; a zero ttl never expires.
func NewMemorySessionRepository(ttl time.Duration) domainRepo.SessionRepository {
	return &memorySessionRepository{
		sessions: make(map[uuid.UUID]memorySessionEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (r *memorySessionRepository) Save(ctx context.Context, id uuid.UUID, state entity.FilterState) error {
	entry := memorySessionEntry{state: state.Clone()}
	if r.ttl > 0 {
		entry.expiresAt = r.now().Add(r.ttl)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[id] = entry
	r.evictExpiredLocked()
	return nil
}

func (r *memorySessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FilterState, error) {
	r.mu.RLock()
	entry, ok := r.sessions[id]
	r.mu.RUnlock()

	if !ok || r.expired(entry) {
		return nil, nil
	}

	state := entry.state.Clone()
	return &state, nil
}

func (r *memorySessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

func (r *memorySessionRepository) expired(entry memorySessionEntry) bool {
	return !entry.expiresAt.IsZero() && r.now().After(entry.expiresAt)
}

func (r *memorySessionRepository) evictExpiredLocked() {
	for id, entry := range r.sessions {
		if r.expired(entry) {
			delete(r.sessions, id)
		}
	}
}
