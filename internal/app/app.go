package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/RubachokBoss/learnbook/internal/config"
	"github.com/RubachokBoss/learnbook/internal/database"
	"github.com/RubachokBoss/learnbook/internal/delivery/httpd"
	"github.com/RubachokBoss/learnbook/internal/middleware"
	"github.com/RubachokBoss/learnbook/internal/repository"
	"github.com/RubachokBoss/learnbook/internal/repository/memory"
	"github.com/RubachokBoss/learnbook/internal/service"
	"github.com/RubachokBoss/learnbook/internal/service/integration"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type App struct {
	server    *http.Server
	router    chi.Router
	logger    zerolog.Logger
	config    *config.Config
	db        *sql.DB
	publisher integration.EventPublisher
}

func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	store, db, err := openStore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	publisher := newPublisher(cfg.RabbitMQ, log)

	learnerService := service.NewLearnerService(store, publisher, log)
	contentService := service.NewContentService(store, publisher, log)
	catalogs := service.NewCatalogs(store, log)
	sessionService := service.NewSessionService(store, publisher, log)

	handler := httpd.NewHandler(
		learnerService,
		contentService,
		catalogs,
		sessionService,
		store.Driver,
		log,
	)

	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Recovery(log))
	if cfg.Server.RequestTimeout > 0 {
		router.Use(chimiddleware.Timeout(cfg.Server.RequestTimeout))
	}
	router.Use(middleware.NewCORS(cfg.CORS))

	var apiMiddleware []func(http.Handler) http.Handler
	if cfg.Auth.JWTSecret != "" {
		apiMiddleware = append(apiMiddleware, middleware.BearerAuth(cfg.Auth.JWTSecret, log))
	} else {
		log.Warn().Msg("auth.jwt_secret is empty, API is unauthenticated")
	}

	handler.RegisterRoutes(router, apiMiddleware...)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &App{
		server:    server,
		router:    router,
		logger:    log,
		config:    cfg,
		db:        db,
		publisher: publisher,
	}, nil
}

func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*repository.Store, *sql.DB, error) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		log.Warn().Msg("Using in-memory storage, data will not survive a restart")
		return memory.NewStore(), nil, nil
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	store := repository.NewPostgresStore(db, log)
	if err := store.Ping(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info().Msg("Database connection established")

	return store, db, nil
}

func newPublisher(cfg config.RabbitMQConfig, log zerolog.Logger) integration.EventPublisher {
	if !cfg.Enabled {
		return integration.NopPublisher{}
	}

	publisher, err := integration.NewRabbitMQPublisher(cfg.URL, cfg.Exchange, log)
	if err != nil {
		log.Warn().Err(err).Msg("RabbitMQ unavailable, events will be dropped")
		return integration.NopPublisher{}
	}

	return publisher
}

// Router returns the fully wired handler, middleware included.
func (a *App) Router() http.Handler {
	return a.router
}

func (a *App) Run() error {
	a.logger.Info().Msgf("Starting learnbook API on %s", a.config.Server.Address)

	if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info().Msg("Shutting down learnbook API...")

	err := a.server.Shutdown(ctx)

	if err := a.publisher.Close(); err != nil {
		a.logger.Error().Err(err).Msg("Failed to close event publisher")
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to close database connection")
		}
	}

	return err
}

// ShutdownTimeout is how long Shutdown may wait for in-flight requests.
func (a *App) ShutdownTimeout() time.Duration {
	if a.config.Server.ShutdownTimeout <= 0 {
		return 10 * time.Second
	}
	return a.config.Server.ShutdownTimeout
}
