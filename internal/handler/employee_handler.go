package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"attendance-backend/internal/mailer"
	"attendance-backend/internal/model"
	"attendance-backend/internal/repository"
	"attendance-backend/internal/usecase"
)

type EmployeeHandler struct {
	repo repository.EmployeeRepository
	auth *usecase.AuthUsecase
	mail mailer.Mailer
}

func NewEmployeeHandler(repo repository.EmployeeRepository, auth *usecase.AuthUsecase, mail mailer.Mailer) *EmployeeHandler {
	return &EmployeeHandler{repo: repo, auth: auth, mail: mail}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *EmployeeHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email and password are required"})
	}

	token, employee, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid email or password"})
		}
		if errors.Is(err, usecase.ErrEmployeeInactive) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "your account has been deactivated"})
		}
		return engineError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "login successful",
		"token":   token,
		"data":    employee,
	})
}

type createEmployeeRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	Role       string `json:"role" validate:"omitempty,oneof=admin employee"`
}

// Create registers a new employee account and mails them their credentials.
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var req createEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not hash password"})
	}

	role := req.Role
	if role == "" {
		role = model.RoleEmployee
	}

	employee := &model.Employee{
		EmployeeID: req.EmployeeID,
		Name:       req.Name,
		Email:      req.Email,
		Password:   string(hashed),
		Role:       role,
		IsActive:   true,
	}
	if err := h.repo.Create(c.UserContext(), employee); err != nil {
		if errors.Is(err, repository.ErrEmployeeExists) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "employee id or email already registered"})
		}
		return engineError(c, err)
	}

	go func() {
		if err := h.mail.SendWelcome(req.Email, req.Name, req.EmployeeID, req.Password); err != nil {
			log.Warn().Err(err).Str("employee_id", req.EmployeeID).Msg("welcome mail failed")
		}
	}()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "employee created", "data": employee})
}

func (h *EmployeeHandler) GetAll(c *fiber.Ctx) error {
	employees, err := h.repo.GetAll(c.UserContext(), c.Query("q"))
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(fiber.Map{"data": employees})
}

type setActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// SetActive toggles the account-active flag; deactivated employees cannot
// log in or clock in.
func (h *EmployeeHandler) SetActive(c *fiber.Ctx) error {
	var req setActiveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "is_active is required"})
	}

	employee, err := h.repo.FindByEmployeeID(c.UserContext(), c.Params("employeeID"))
	if err != nil {
		return engineError(c, err)
	}

	employee.IsActive = *req.IsActive
	if err := h.repo.Update(c.UserContext(), employee); err != nil {
		return engineError(c, err)
	}

	return c.JSON(fiber.Map{"message": "employee status updated", "data": employee})
}

func (h *EmployeeHandler) Me(c *fiber.Ctx) error {
	employeeID, _ := c.Locals("employee_id").(string)
	employee, err := h.repo.FindByEmployeeID(c.UserContext(), employeeID)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(fiber.Map{"data": employee})
}
