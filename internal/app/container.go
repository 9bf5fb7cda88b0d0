package app

import (
	"context"
	"log"
	"time"

	"job-portal/internal/config"
	"job-portal/internal/database"
	"job-portal/internal/database/migration"
	dbpostgres "job-portal/internal/database/postgres"
	"job-portal/internal/delivery/http/handler"
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/delivery/http/routes"
	"job-portal/internal/pkg/jwt"
	"job-portal/internal/repository"
	"job-portal/internal/upload"
	"job-portal/internal/usecase"
	"job-portal/internal/ws"
)

// Container wires repositories, usecases, handlers, and the ws hub on
// top of a shared pool. Everything downstream receives its dependencies
// explicitly.
type Container struct {
	Config config.Config
	DB     database.DB
	Hub    *ws.Hub
	Routes *routes.Registry
	Logger *log.Logger
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	runner := migration.Runner{Dir: cfg.Database.MigrationsDir}
	if err := runner.Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, err
	}

	uploadStore, err := upload.NewStore(cfg.Upload.Dir, cfg.Upload.MaxSizeBytes)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	tokens := jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.ExpiresIn)
	hub := ws.NewHub(logger)

	users := repository.NewPostgresUserRepository(db)
	jobs := repository.NewPostgresJobRepository(db)
	applications := repository.NewPostgresApplicationRepository(db)
	savedJobs := repository.NewPostgresSavedJobRepository(db)
	analytics := repository.NewPostgresAnalyticsRepository(db)

	authUC := usecase.NewAuthUsecase(users, tokens)
	userUC := usecase.NewUserUsecase(users, uploadStore)
	jobUC := usecase.NewJobUsecase(jobs, savedJobs, applications)
	applicationUC := usecase.NewApplicationUsecase(applications, jobs, users, ws.NewNotifier(hub))
	savedJobUC := usecase.NewSavedJobUsecase(savedJobs, jobs)
	analyticsUC := usecase.NewAnalyticsUsecase(analytics)

	registry := &routes.Registry{
		Auth:           handler.NewAuthHandler(authUC),
		Users:          handler.NewUserHandler(userUC),
		Jobs:           handler.NewJobHandler(jobUC),
		Applications:   handler.NewApplicationHandler(applicationUC),
		SavedJobs:      handler.NewSavedJobHandler(savedJobUC),
		Analytics:      handler.NewAnalyticsHandler(analyticsUC),
		Uploads:        handler.NewUploadHandler(uploadStore),
		Health:         handler.NewHealthHandler(db),
		WS:             ws.NewHandler(hub, tokens, logger),
		AuthMiddleware: middleware.NewAuthMiddleware(tokens),
	}

	return &Container{
		Config: cfg,
		DB:     db,
		Hub:    hub,
		Routes: registry,
		Logger: logger,
	}, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
