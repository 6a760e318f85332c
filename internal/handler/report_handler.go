package handler

import (
	"github.com/gofiber/fiber/v2"

	"attendance-backend/internal/repository"
	"attendance-backend/internal/usecase"
)

type ReportHandler struct {
	attendanceRepo repository.AttendanceRepository
	employeeRepo   repository.EmployeeRepository
}

func NewReportHandler(attendanceRepo repository.AttendanceRepository, employeeRepo repository.EmployeeRepository) *ReportHandler {
	return &ReportHandler{attendanceRepo: attendanceRepo, employeeRepo: employeeRepo}
}

// Summary aggregates sessions per active employee for the requested period
// (from/to, YYYY-MM-DD, inclusive; both optional).
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	from := c.Query("from")
	to := c.Query("to")

	employees, err := h.employeeRepo.GetActive(c.UserContext())
	if err != nil {
		return engineError(c, err)
	}

	sessions, err := h.attendanceRepo.List(c.UserContext(), repository.SessionFilter{From: from, To: to})
	if err != nil {
		return engineError(c, err)
	}

	return c.JSON(fiber.Map{
		"period": fiber.Map{"from": from, "to": to},
		"data":   usecase.Summarize(sessions, employees),
	})
}
