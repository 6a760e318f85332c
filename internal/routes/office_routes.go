package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"attendance-backend/internal/handler"
	"attendance-backend/internal/middleware"
	"attendance-backend/internal/model"
	"attendance-backend/internal/repository"
)

func SetupOfficeRoutes(app *fiber.App, db *gorm.DB) {
	hdl := handler.NewOfficeHandler(repository.NewOfficeRepository(db))

	api := app.Group("/api/office", middleware.Auth)

	api.Get("/", hdl.Get)
	api.Put("/", middleware.Role(model.RoleAdmin), hdl.Update)
	api.Post("/check", hdl.CheckLocation)
}
