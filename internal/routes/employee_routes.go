package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"attendance-backend/config"
	"attendance-backend/internal/handler"
	"attendance-backend/internal/mailer"
	"attendance-backend/internal/middleware"
	"attendance-backend/internal/model"
	"attendance-backend/internal/repository"
	"attendance-backend/internal/usecase"
)

func SetupEmployeeRoutes(app *fiber.App, db *gorm.DB) {
	employeeRepo := repository.NewEmployeeRepository(db)
	auth := usecase.NewAuthUsecase(employeeRepo, config.JWTSecret())
	hdl := handler.NewEmployeeHandler(employeeRepo, auth, mailer.NewFromEnv())

	app.Post("/api/auth/login", hdl.Login)

	api := app.Group("/api/employees", middleware.Auth)

	api.Get("/me", hdl.Me)
	api.Post("/", middleware.Role(model.RoleAdmin), hdl.Create)
	api.Get("/", middleware.Role(model.RoleAdmin), hdl.GetAll)
	api.Patch("/:employeeID/status", middleware.Role(model.RoleAdmin), hdl.SetActive)
}
