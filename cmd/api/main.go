package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/agrilink/internal/api/http"
	"github.com/spec-kit/agrilink/internal/api/http/handlers"
	"github.com/spec-kit/agrilink/internal/auth"
	"github.com/spec-kit/agrilink/internal/config"
	"github.com/spec-kit/agrilink/internal/events"
	"github.com/spec-kit/agrilink/internal/observability"
	"github.com/spec-kit/agrilink/internal/persistence"
	"github.com/spec-kit/agrilink/internal/repository"
	"github.com/spec-kit/agrilink/internal/service"
	"github.com/spec-kit/agrilink/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	appointmentRepo := repository.NewAppointmentRepository(pool)
	submissionRepo := repository.NewCropSubmissionRepository(pool)
	fertilizerRepo := repository.NewFertilizerRepository(pool)
	documentRepo := repository.NewDocumentRepository(pool)
	notificationRepo := repository.NewNotificationRepository(pool)
	serviceRepo := repository.NewServiceRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, userRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo, userRepo, dispatcher)
	submissionService := service.NewCropSubmissionService(submissionRepo, dispatcher)
	fertilizerService := service.NewFertilizerService(fertilizerRepo, dispatcher)
	documentService := service.NewDocumentService(documentRepo)
	catalogService := service.NewCatalogService(serviceRepo, redis.Client, logger)
	directoryService := service.NewDirectoryService(userRepo)

	officerPicker := service.NewRepoOfficerPicker(userRepo)
	notificationService := service.NewNotificationService(
		notificationRepo, officerPicker, dispatcher, logger, cfg.Notification.OfficerFanoutCap)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewMiddleware(authService.TokenManager(), cfg.Auth.CookieName)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	metrics := observability.NewMetrics()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService, cfg.Auth.CookieName, cfg.App.IsProduction()),
		Appointments:   handlers.NewAppointmentsHandler(appointmentService),
		Submissions:    handlers.NewCropSubmissionsHandler(submissionService),
		Fertilizer:     handlers.NewFertilizerHandler(fertilizerService),
		Documents:      handlers.NewDocumentsHandler(documentService),
		Services:       handlers.NewServicesHandler(catalogService),
		Directory:      handlers.NewDirectoryHandler(directoryService),
		Notifications:  handlers.NewNotificationsHandler(notificationService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
