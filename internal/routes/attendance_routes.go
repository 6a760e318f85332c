package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"attendance-backend/config"
	"attendance-backend/internal/handler"
	"attendance-backend/internal/middleware"
	"attendance-backend/internal/model"
	"attendance-backend/internal/repository"
	"attendance-backend/internal/storage"
	"attendance-backend/internal/usecase"
)

func SetupAttendanceRoutes(app *fiber.App, db *gorm.DB) {
	attendanceRepo := repository.NewAttendanceRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	officeRepo := repository.NewOfficeRepository(db)

	engine := usecase.NewAttendanceEngine(attendanceRepo, employeeRepo, storage.NewFromEnv(), config.StageTimeout())
	hdl := handler.NewAttendanceHandler(engine, attendanceRepo, officeRepo)

	api := app.Group("/api/attendance", middleware.Auth)

	api.Post("/clock-in", hdl.ClockIn)
	api.Post("/clock-out", hdl.ClockOut)
	api.Get("/today", hdl.TodayStatus)
	api.Get("/history", hdl.History)
	api.Get("/records", middleware.Role(model.RoleAdmin), hdl.Records)
}
