package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"

	"pancitos-bot/config"
	"pancitos-bot/handlers"
	"pancitos-bot/services"
	"pancitos-bot/webhooks"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found")
	}

	// Initialize structured logger
	logHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(logHandler))

	// Load configuration; missing secrets abort before any listener binds
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	if cfg.AllowUnsignedWebhooks {
		slog.Warn("ALLOW_UNSIGNED_WEBHOOKS is set, unsigned webhook posts will be processed")
	}

	// Wire the send gateway and the event handlers
	messenger := services.NewMessenger(cfg.PageAccessToken)
	bot := handlers.NewBot(cfg, messenger)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		// Meta batches at most 1000 updates per post, well under 1 MB
		BodyLimit: 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			slog.Error("Request error", "error", err, "status", code)
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path}\n",
	}))

	// Register webhook routes
	webhooks.RegisterRoutes(app, cfg, bot)

	// Account linking consent view
	app.Get("/authorize", bot.HandleAuthorize)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "pancitos-bot",
		})
	})

	// Start server
	go func() {
		slog.Info("Server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Shut down cleanly on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("Shutdown failed", "error", err)
		os.Exit(1)
	}
}
