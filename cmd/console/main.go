package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/offerly/console/internal/api/http"
	"github.com/offerly/console/internal/api/http/handlers"
	"github.com/offerly/console/internal/auth"
	"github.com/offerly/console/internal/config"
	"github.com/offerly/console/internal/observability"
	"github.com/offerly/console/internal/repository"
	"github.com/offerly/console/internal/service"
	"github.com/offerly/console/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.App, cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sessionRepo := repository.NewSessionRepository()
	activity := service.NewActivityService(logger)
	consoleService, err := service.NewConsoleService(*cfg, service.ConsoleDependencies{
		SessionRepo: sessionRepo,
		Activity:    activity,
		Logger:      logger,
	})
	if err != nil {
		logger.Fatal("failed to init console service", zap.Error(err))
	}

	tokens := auth.NewTokenManager(cfg.Session.Secret, cfg.Session.TTLMinutes)
	sessionMiddleware := auth.NewSessionMiddleware(tokens, consoleService, cfg.Session.CookieName)

	worker.StartSessionJanitor(ctx, worker.NewSessionJanitor(consoleService, cfg.Session.SweepInterval(), logger))

	metrics := observability.NewMetrics()
	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:            handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, consoleService, metrics),
		Shell:             handlers.NewShellHandler(),
		Menu:              handlers.NewMenuHandler(),
		Offerings:         handlers.NewOfferingHandler(),
		Dashboard:         handlers.NewDashboardHandler(),
		Login:             handlers.NewLoginHandler(),
		SessionMiddleware: sessionMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	cancel()
	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
