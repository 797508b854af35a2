package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-doctor-directory/config"
	deliveryHttp "go-doctor-directory/internal/delivery/http"
	"go-doctor-directory/internal/delivery/http/handler"
	"go-doctor-directory/internal/delivery/http/middleware"
	domainRepo "go-doctor-directory/internal/domain/repository"
	"go-doctor-directory/internal/infrastructure/cache"
	"go-doctor-directory/internal/infrastructure/datasource"
	"go-doctor-directory/internal/repository"
	"go-doctor-directory/internal/service"
	"go-doctor-directory/internal/usecase"
	"go-doctor-directory/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// App holds all dependencies for the application
type App struct {
	Config        *config.Config
	Log           *logrus.Logger
	RedisClient   *redis.Client
	Server        *http.Server
	DatasetLoader usecase.DatasetLoaderUsecase
	SessionLocks  *service.SessionLockService
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return NewWithConfig(context.Background(), cfg)
}

// NewWithConfig wires the application from an already loaded configuration
func NewWithConfig(ctx context.Context, cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	// Setup logger
	app.Log = setupLogger(cfg.App)
	app.Log.Info("Configuration loaded successfully")

	// Initialize session store
	sessionRepo, err := app.initializeSessionStore(ctx)
	if err != nil {
		return nil, err
	}

	// Initialize all layers
	app.Server = app.initializeServer(sessionRepo)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.AppConfig) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}

func (app *App) initializeSessionStore(ctx context.Context) (domainRepo.SessionRepository, error) {
	switch app.Config.Session.Store {
	case config.SessionStoreRedis:
		redisClient, err := cache.NewRedisClient(ctx, app.Config.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		app.Log.Info("Redis session store connected successfully")
		return repository.NewRedisSessionRepository(redisClient, app.Config.Session.TTL), nil
	case config.SessionStoreMemory, "":
		app.Log.Info("Using in-memory session store")
		return repository.NewMemorySessionRepository(app.Config.Session.TTL), nil
	default:
		return nil, fmt.Errorf("unknown session store %q", app.Config.Session.Store)
	}
}

// initializeServer creates and configures the HTTP server
func (app *App) initializeServer(sessionRepo domainRepo.SessionRepository) *http.Server {
	cfg := app.Config
	log := app.Log

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	doctorRepo := repository.NewDoctorRepository()

	// Initialize data source
	fetcher := datasource.NewFetcher(cfg.DataSource.URL, datasource.WithTimeout(cfg.DataSource.Timeout))
	log.WithField("url", fetcher.URL()).Info("Doctor data source configured")

	// Initialize services
	app.SessionLocks = service.NewSessionLockService(log)

	// Initialize usecases
	app.DatasetLoader = usecase.NewDatasetLoaderUsecase(log, fetcher, doctorRepo)
	directoryUsecase := usecase.NewDoctorDirectoryUsecase(log, doctorRepo)
	sessionUsecase := usecase.NewDirectorySessionUsecase(log, sessionRepo, directoryUsecase, app.SessionLocks)

	// Initialize handlers
	doctorHandler := handler.NewDoctorHandler(directoryUsecase)
	sessionHandler := handler.NewSessionHandler(sessionUsecase, customValidator)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(doctorHandler, sessionHandler, corsMiddleware, loggingMiddleware, directoryUsecase)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// Run starts the HTTP server and the one-shot dataset fetch, then blocks
// until SIGINT or SIGTERM and shuts down gracefully.
func (app *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return app.RunContext(ctx)
}

// RunContext is Run with the shutdown trigger supplied by the caller
func (app *App) RunContext(ctx context.Context) error {
	defer app.Close()

	g, gctx := errgroup.WithContext(ctx)

	// The server answers with an empty dataset until the fetch completes
	go func() {
		if err := app.DatasetLoader.Load(gctx); err != nil {
			app.Log.Warnf("Serving without doctor dataset: %v", err)
		}
	}()

	g.Go(func() error {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		app.Log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := app.Server.Shutdown(shutdownCtx); err != nil {
			app.Log.Errorf("Server forced to shutdown: %v", err)
			return err
		}
		return nil
	})

	err := g.Wait()
	app.Log.Info("Server shutdown complete")
	return err
}

// Close releases background workers and connections
func (app *App) Close() {
	if app.SessionLocks != nil {
		app.SessionLocks.Stop()
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
