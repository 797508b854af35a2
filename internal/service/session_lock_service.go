package service

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// Interval for cleaning up stale mutexes
	mutexCleanupInterval = 10 * time.Minute

	// How long a mutex must be unused before cleanup
	mutexStaleThreshold = 10 * time.Minute
)

// =============================================================================
// Types
// =============================================================================

// SessionLockService serializes state transitions of a single directory session.
//
// Every session has exactly one logical owner: callers acquire the session
// mutex, read the state, apply the reducer and save before releasing it.
// Mutexes of idle sessions are swept by a background goroutine.
type SessionLockService struct {
	log *logrus.Logger

	// Per-session mutex
	sessionMu sync.Map // map[uuid.UUID]*mutexWithTimestamp

	staleThreshold time.Duration

	// Graceful shutdown
	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

// mutexWithTimestamp tracks mutex usage for cleanup
type mutexWithTimestamp struct {
	mu       sync.Mutex
	lastUsed atomic.Int64 // Unix nanoseconds
}

// =============================================================================
// Constructor
// =============================================================================

// NewSessionLockService creates a new SessionLockService.
// Starts background goroutine for mutex cleanup.
// Call Stop() during graceful shutdown.
func NewSessionLockService(log *logrus.Logger) *SessionLockService {
	svc := &SessionLockService{
		log:            log,
		staleThreshold: mutexStaleThreshold,
		stopChan:       make(chan struct{}),
	}

	svc.wg.Add(1)
	go svc.cleanupMutexMapLoop(mutexCleanupInterval)

	return svc
}

// =============================================================================
// Lifecycle Methods
// =============================================================================

// Stop gracefully shuts down the service.
// Safe to call multiple times.
func (s *SessionLockService) Stop() {
	if s.stopped.CompareAndSwap(false, true) {
		close(s.stopChan)
		s.wg.Wait()
		s.log.Info("SessionLockService stopped")
	}
}

// =============================================================================
// Public Methods
// =============================================================================

// Lock acquires the mutex of a session and returns the function releasing it
func (s *SessionLockService) Lock(sessionID uuid.UUID) (unlock func()) {
	for {
		mt := s.getSessionMutex(sessionID)
		if s.lockIfCurrent(sessionID, mt) {
			return func() {
				mt.lastUsed.Store(time.Now().UnixNano())
				mt.mu.Unlock()
			}
		}
	}
}

// =============================================================================
// Private Helper Methods
// =============================================================================

func (s *SessionLockService) getSessionMutex(sessionID uuid.UUID) *mutexWithTimestamp {
	mt, _ := s.sessionMu.LoadOrStore(sessionID, &mutexWithTimestamp{})
	result := mt.(*mutexWithTimestamp)
	result.lastUsed.Store(time.Now().UnixNano())
	return result
}

// lockIfCurrent locks mt and keeps it only while it is still the mapped entry.
// The sweeper may delete an entry between lookup and Lock; holding a deleted
// mutex would not exclude callers that map a fresh one.
func (s *SessionLockService) lockIfCurrent(sessionID uuid.UUID, mt *mutexWithTimestamp) bool {
	mt.mu.Lock()
	if current, ok := s.sessionMu.Load(sessionID); ok && current == mt {
		return true
	}
	mt.mu.Unlock()
	return false
}

func (s *SessionLockService) cleanupMutexMapLoop(interval time.Duration) {
	defer s.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			s.log.Debug("Mutex cleanup goroutine stopping")
			return
		case <-ticker.C:
			s.cleanupStaleMutexes()
		}
	}
}

// cleanupStaleMutexes removes unused mutexes, checking lastUsed under the lock
func (s *SessionLockService) cleanupStaleMutexes() int {
	cutoffTime := time.Now().Add(-s.staleThreshold).UnixNano()
	var cleaned int

	s.sessionMu.Range(func(key, value any) bool {
		mt, ok := value.(*mutexWithTimestamp)
		if !ok {
			return true
		}

		// If the lock is held the session is in use
		if mt.mu.TryLock() {
			if mt.lastUsed.Load() < cutoffTime {
				s.sessionMu.Delete(key)
				cleaned++
			}
			mt.mu.Unlock()
		}
		return true
	})

	if cleaned > 0 {
		s.log.Debugf("Cleaned up %d stale session mutexes", cleaned)
	}
	return cleaned
}
