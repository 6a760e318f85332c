package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"attendance-backend/internal/handler"
	"attendance-backend/internal/middleware"
	"attendance-backend/internal/model"
	"attendance-backend/internal/repository"
)

func SetupReportRoutes(app *fiber.App, db *gorm.DB) {
	hdl := handler.NewReportHandler(
		repository.NewAttendanceRepository(db),
		repository.NewEmployeeRepository(db),
	)

	api := app.Group("/api/reports", middleware.Auth, middleware.Role(model.RoleAdmin))

	api.Get("/summary", hdl.Summary)
}
