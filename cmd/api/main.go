package main

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"attendance-backend/config"
	"attendance-backend/internal/routes"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env not found, using system environment")
	}

	config.ConnectDB()

	app := fiber.New(fiber.Config{BodyLimit: 10 * 1024 * 1024})

	app.Use(cors.New())
	app.Use(logger.New())

	// Selfies stored by the local blob backend are served from here.
	app.Static("/uploads", config.GetEnv("UPLOAD_DIR", "./uploads"))

	routes.SetupEmployeeRoutes(app, config.DB)
	routes.SetupAttendanceRoutes(app, config.DB)
	routes.SetupOfficeRoutes(app, config.DB)
	routes.SetupReportRoutes(app, config.DB)

	addr := ":" + config.GetEnv("PORT", "3000")
	log.Info().Str("addr", addr).Msg("server listening")
	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
