package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ics-security/hrm-chat-gateway/internal/application/action"
	"github.com/ics-security/hrm-chat-gateway/internal/application/auth"
	"github.com/ics-security/hrm-chat-gateway/internal/application/chat"
	"github.com/ics-security/hrm-chat-gateway/internal/application/session"
	"github.com/ics-security/hrm-chat-gateway/internal/application/usecase"
	"github.com/ics-security/hrm-chat-gateway/internal/infrastructure/hrmapi"
	infrapdf "github.com/ics-security/hrm-chat-gateway/internal/infrastructure/pdf"
	"github.com/ics-security/hrm-chat-gateway/internal/infrastructure/sqlite"
	httpRouter "github.com/ics-security/hrm-chat-gateway/internal/interfaces/http"
	"github.com/ics-security/hrm-chat-gateway/pkg/config"
	"github.com/ics-security/hrm-chat-gateway/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting gateway")

	store, err := sqlite.New(cfg.Store.Path, log)
	if err != nil {
		log.Fatal().Err(err).Msg("open local store")
	}
	defer store.Close()

	sessions, err := session.NewStore(store, log)
	if err != nil {
		log.Fatal().Err(err).Msg("restore sessions")
	}

	backend := hrmapi.NewClient(cfg.Backend.BaseURL)

	chatCtl := chat.NewController(backend, log)
	dispatcher := action.NewDispatcher(backend, chatCtl, log)

	authUC := auth.NewAuthUseCase(backend, sessions, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, auth.DemoConfig{
		Enabled:  cfg.Demo.Enabled,
		Password: cfg.Demo.Password,
	}, log)

	auditUC := usecase.NewAuditUseCase(store, log)
	briefingUC := usecase.NewBriefingUseCase(backend)
	analyticsUC := usecase.NewAnalyticsUseCase(backend, infrapdf.NewMarotoReportGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 120,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "HRM Chat Gateway",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ChatCtl:     chatCtl,
		Dispatcher:  dispatcher,
		BriefingUC:  briefingUC,
		AnalyticsUC: analyticsUC,
		AuditUC:     auditUC,
		Backend:     backend,
		Sessions:    sessions,
		JWTSecret:   cfg.JWT.Secret,
		Cookie: httpRouter.CookieConfig{
			Name:       cfg.JWT.CookieName,
			ExpMinutes: cfg.JWT.Expiration,
			Secure:     cfg.App.Env == "production",
		},
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("gateway stopped")
}
