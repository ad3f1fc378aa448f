package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/i474232898/weather-widget/internal/api/http"
	"github.com/i474232898/weather-widget/internal/config"
	"github.com/i474232898/weather-widget/internal/scheduler"
	"github.com/i474232898/weather-widget/internal/store"
	"github.com/i474232898/weather-widget/internal/view"
	"github.com/i474232898/weather-widget/internal/weather"
	"github.com/i474232898/weather-widget/internal/weather/providers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound provider calls. A zero timeout waits indefinitely.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	memStore := store.NewMemoryStore(cfg.StoreMaxHistory, cfg.StoreMaxAge)

	var provider weather.Provider = providers.NewVisualCrossingProvider(httpClient, config.APIKey, providers.VisualCrossingOptions{
		BaseURL:    cfg.BaseURL,
		UnitGroup:  cfg.UnitGroup,
		MaxRetries: cfg.MaxRetries,
	})
	if cfg.RateLimitRPS > 0 {
		provider = providers.NewRateLimitedProvider(provider, cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	if config.APIKey() == "" {
		log.Printf("WARN: %s is not set; fetches will fail until it is", config.APIKeyEnv)
	}

	service := weather.NewService(memStore, provider, cfg.DefaultLocation)

	widget, err := view.NewController(service, view.NewMemoryBindings(), view.Options{
		TextFadeDelay:  cfg.TextFadeDelay,
		VideoFadeDelay: cfg.VideoFadeDelay,
		VideoBasePath:  cfg.VideoBasePath,
	})
	if err != nil {
		log.Fatalf("failed to create widget: %v", err)
	}
	defer widget.Close()

	// Show the default location on startup.
	if err := widget.SubmitLocation(context.Background(), ""); err != nil {
		log.Printf("WARN: initial fetch failed: %v", err)
	}

	sched := scheduler.New(cfg.RefreshInterval, widget)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "weather-widget",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-widget",
			"state":   widget.State(),
		})
	})

	httpapi.RegisterRoutes(app, service, widget)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()
	log.Printf("INFO: listening on :%s", cfg.Port)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
