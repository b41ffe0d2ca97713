// Package main provides the entry point for the WriteWise API server.
package main

import (
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"github.com/writewise/writewise/internal/analysis"
	"github.com/writewise/writewise/internal/api"
	"github.com/writewise/writewise/internal/grammar"
	"github.com/writewise/writewise/pkg/logging"
	"github.com/writewise/writewise/pkg/ratelimit"
)

func main() {
	if err := logging.Setup(getEnv("LOG_LEVEL", "info"), getEnv("LOG_FORMAT", "json")); err != nil {
		log.Fatal().Err(err).Msg("Failed to configure logging")
	}

	// The grammar checker wraps a long-lived connection to the
	// LanguageTool server; it is created once here and closed on
	// shutdown, and handed to everything that needs it.
	var opts []grammar.LanguageToolOption
	if interval := grammarInterval(); interval > 0 {
		opts = append(opts, grammar.WithLimiter(ratelimit.New(interval)))
	}
	checker := grammar.NewLanguageTool(
		getEnv("LANGUAGETOOL_URL", "http://localhost:8010"),
		getEnv("LANGUAGETOOL_LANG", "en-US"),
		opts...,
	)
	defer checker.Close()

	analyzer := analysis.New(checker)

	app := fiber.New(fiber.Config{
		AppName:               "WriteWise API",
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "UTC",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: getEnv("CORS_ORIGINS", "*"),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	api.SetupRoutes(app, api.NewHandlers(analyzer))

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info().Msg("Shutting down server")
		if err := app.Shutdown(); err != nil {
			log.Error().Err(err).Msg("Server shutdown error")
		}
	}()

	port := getEnv("PORT", "8000")
	log.Info().Str("port", port).Msg("Starting WriteWise server")
	if err := app.Listen(":" + port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

// grammarInterval reads the minimum interval between LanguageTool
// requests from LANGUAGETOOL_MIN_INTERVAL_MS. Zero disables throttling.
func grammarInterval() time.Duration {
	ms, err := strconv.Atoi(getEnv("LANGUAGETOOL_MIN_INTERVAL_MS", "0"))
	if err != nil || ms <= 0 {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}

// getEnv returns the environment variable value or a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
