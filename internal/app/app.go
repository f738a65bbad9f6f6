package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"student-service/internal/config"
	"student-service/internal/db"
	"student-service/internal/events"
	"student-service/internal/health"
	"student-service/internal/kafka"
	"student-service/internal/logger"
	"student-service/internal/messaging"
	"student-service/internal/metrics"
	"student-service/internal/middleware"
	"student-service/internal/student"
	"student-service/internal/telemetry"

	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

type App struct {
	config    *config.Config
	router    chi.Router
	server    *http.Server
	logger    *slog.Logger
	db        *bun.DB
	publisher events.Publisher

	meterProvider *sdkmetric.MeterProvider
}

func New() (*App, error) {
	slogLogger := logger.NewWithServiceContext(ServiceName, Version)

	// Set as default logger so slog.Info() uses the same handler
	slog.SetDefault(slogLogger)

	slogLogger.Info("initializing application", "git_commit", GitCommit, "build_time", BuildTime)

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	slogLogger.Info("config loaded", "env", cfg.Env)

	ctx := context.Background()

	meterProvider, err := telemetry.InitMeterProvider(ctx, cfg.Telemetry, ServiceName, Version, cfg.Env, slogLogger)
	if err != nil {
		slogLogger.Warn("metrics export unavailable", "error", err)
	}

	meter := otel.Meter(ServiceName)
	m, err := metrics.New(meter)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}

	database, err := db.New(cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := m.Database.RegisterDB(database.DB, meter); err != nil {
		slogLogger.Warn("failed to register database metrics", "error", err)
	}

	if err := db.RunMigrations(ctx, database, (*student.Student)(nil)); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	if err := db.CreateIndexes(ctx, database); err != nil {
		database.Close()
		return nil, err
	}

	publisher := newPublisher(cfg.Events, slogLogger, m)

	app := &App{
		config:    cfg,
		router:    chi.NewRouter(),
		logger:    slogLogger,
		db:        database,
		publisher: publisher,

		meterProvider: meterProvider,
	}

	app.router.Use(middleware.CORS(cfg.Server.CORSOrigins))

	healthHandler := health.NewHandler(database)
	healthHandler.RegisterRoutes(app.router)

	hooks := student.NewHooks(student.NewStorageSchema(), student.NewBcryptHasher(cfg.Security.BcryptSaltRounds))
	studentRepo := student.NewRepository(database, hooks, m)
	studentService := student.NewService(studentRepo, publisher, slogLogger, m)
	studentHandler := student.NewHandler(studentService, slogLogger, m)

	app.router.Route("/api", func(r chi.Router) {
		studentHandler.RegisterRoutes(r)
	})

	slogLogger.Info("application initialized successfully")

	return app, nil
}

// newPublisher connects the configured broker. A broker that cannot be
// reached is logged and replaced by a no-op so the API still serves.
func newPublisher(cfg config.EventsConfig, logger *slog.Logger, m *metrics.Metrics) events.Publisher {
	switch cfg.Broker {
	case "nats":
		producer, err := messaging.NewProducer(cfg.NATS.URL, cfg.NATS.Subject, logger, m.Messaging)
		if err != nil {
			logger.Warn("failed to initialize NATS producer", "error", err)
			return events.Noop{}
		}
		return producer
	case "kafka":
		producer, err := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger, m.Messaging)
		if err != nil {
			logger.Warn("failed to initialize kafka producer", "error", err)
			return events.Noop{}
		}
		return producer
	case "":
		logger.Info("no event broker configured")
	default:
		logger.Warn("unknown event broker, events disabled", "broker", cfg.Broker)
	}
	return events.Noop{}
}

func (a *App) Run() error {
	a.server = &http.Server{
		Addr:         fmt.Sprintf(":%s", a.config.Server.Port),
		Handler:      a.router,
		ReadTimeout:  time.Duration(a.config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(a.config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(a.config.Server.IdleTimeout) * time.Second,
	}

	a.logger.Info("server starting", "port", a.config.Server.Port)
	if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("shutting down server")

	var err error
	if a.server != nil {
		err = a.server.Shutdown(ctx)
	}
	if a.publisher != nil {
		if cerr := a.publisher.Close(); cerr != nil {
			a.logger.Warn("failed to close event publisher", "error", cerr)
		}
	}
	db.Close(a.db)
	if terr := telemetry.Shutdown(ctx, a.meterProvider, a.logger); terr != nil {
		a.logger.Warn("failed to flush metrics", "error", terr)
	}
	return err
}
