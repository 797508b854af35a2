package usecase

import (
	"context"
	"errors"
	"net/url"

	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/domain/entity"
	"go-doctor-directory/internal/domain/repository"
	"go-doctor-directory/internal/querysync"
	"go-doctor-directory/internal/service"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"
)

var ErrSessionNotFound = errors.New("session not found")

var (
	sessionsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "doctordirectory_sessions_created_total",
		Help: "The total number of created directory sessions",
	})
	sessionActions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "doctordirectory_session_actions_total",
		Help: "The total number of dispatched filter actions by type",
	}, []string{"type"})
)

// DirectorySessionUsecase is the single owner of every session's FilterState.
// State only changes through Dispatch, which applies the reducer and then
// recomputes the view.
type DirectorySessionUsecase interface {
	Create(ctx context.Context, query url.Values) (*dto.SessionResponse, error)
	Get(ctx context.Context, sessionID uuid.UUID) (*dto.SessionResponse, error)
	Dispatch(ctx context.Context, sessionID uuid.UUID, req *dto.FilterActionRequest) (*dto.SessionResponse, error)
	Delete(ctx context.Context, sessionID uuid.UUID) error
}

type directorySessionUsecase struct {
	log         *logrus.Logger
	sessionRepo repository.SessionRepository
	directory   DoctorDirectoryUsecase
	locks       *service.SessionLockService
}

func NewDirectorySessionUsecase(
	log *logrus.Logger,
	sessionRepo repository.SessionRepository,
	directory DoctorDirectoryUsecase,
	locks *service.SessionLockService,
) DirectorySessionUsecase {
	return &directorySessionUsecase{
		log:         log,
		sessionRepo: sessionRepo,
		directory:   directory,
		locks:       locks,
	}
}

// Create starts a session seeded from a deep-link query string
func (u *directorySessionUsecase) Create(ctx context.Context, query url.Values) (*dto.SessionResponse, error) {
	sessionID := uuid.New()
	sync := querysync.NewSynchronizer()
	state := sync.Load(query, entity.FilterState{})

	if err := u.sessionRepo.Save(ctx, sessionID, state); err != nil {
		u.log.Warnf("Failed to save session: %+v", err)
		return nil, err
	}
	sessionsCreated.Inc()

	return u.render(ctx, sessionID, state, sync)
}

func (u *directorySessionUsecase) Get(ctx context.Context, sessionID uuid.UUID) (*dto.SessionResponse, error) {
	state, err := u.find(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return u.render(ctx, sessionID, *state, querysync.ResumeSynchronizer())
}

func (u *directorySessionUsecase) Dispatch(ctx context.Context, sessionID uuid.UUID, req *dto.FilterActionRequest) (*dto.SessionResponse, error) {
	unlock := u.locks.Lock(sessionID)
	defer unlock()

	state, err := u.find(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	next, err := entity.ReduceFilterState(*state, entity.FilterAction{
		Type:   entity.FilterActionType(req.Type),
		Value:  req.Value,
		Values: req.Values,
	})
	if err != nil {
		u.log.Warnf("Failed to apply filter action %q: %+v", req.Type, err)
		return nil, err
	}

	if err := u.sessionRepo.Save(ctx, sessionID, next); err != nil {
		u.log.Warnf("Failed to save session: %+v", err)
		return nil, err
	}
	sessionActions.WithLabelValues(req.Type).Inc()

	return u.render(ctx, sessionID, next, querysync.ResumeSynchronizer())
}

func (u *directorySessionUsecase) Delete(ctx context.Context, sessionID uuid.UUID) error {
	unlock := u.locks.Lock(sessionID)
	defer unlock()

	if _, err := u.find(ctx, sessionID); err != nil {
		return err
	}

	if err := u.sessionRepo.Delete(ctx, sessionID); err != nil {
		u.log.Warnf("Failed to delete session: %+v", err)
		return err
	}
	return nil
}

func (u *directorySessionUsecase) find(ctx context.Context, sessionID uuid.UUID) (*entity.FilterState, error) {
	state, err := u.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		u.log.Warnf("Failed to find session: %+v", err)
		return nil, err
	}
	if state == nil {
		return nil, ErrSessionNotFound
	}
	return state, nil
}

// render publishes the query string for state and derives the matching view
func (u *directorySessionUsecase) render(ctx context.Context, sessionID uuid.UUID, state entity.FilterState, sync *querysync.Synchronizer) (*dto.SessionResponse, error) {
	published, err := sync.Publish(state)
	if err != nil {
		u.log.Warnf("Failed to publish query string: %+v", err)
		return nil, err
	}

	return &dto.SessionResponse{
		SessionID:         sessionID,
		DirectoryResponse: *u.directory.View(ctx, state, published),
	}, nil
}
