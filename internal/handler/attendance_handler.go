package handler

import (
	"errors"
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"attendance-backend/internal/geofence"
	"attendance-backend/internal/repository"
	"attendance-backend/internal/usecase"
)

type AttendanceHandler struct {
	engine         *usecase.AttendanceEngine
	attendanceRepo repository.AttendanceRepository
	officeRepo     repository.OfficeRepository
}

func NewAttendanceHandler(engine *usecase.AttendanceEngine, attendanceRepo repository.AttendanceRepository, officeRepo repository.OfficeRepository) *AttendanceHandler {
	return &AttendanceHandler{engine: engine, attendanceRepo: attendanceRepo, officeRepo: officeRepo}
}

// ClockIn expects a multipart form with latitude, longitude and a "photo"
// file (the verification selfie).
func (h *AttendanceHandler) ClockIn(c *fiber.Ctx) error {
	employeeID, _ := c.Locals("employee_id").(string)

	location, err := parseLocation(c.FormValue("latitude"), c.FormValue("longitude"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "latitude and longitude are required"})
	}

	var photo []byte
	contentType := "image/jpeg"
	if file, err := c.FormFile("photo"); err == nil {
		f, err := file.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not read photo"})
		}
		defer f.Close()
		photo, err = io.ReadAll(f)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not read photo"})
		}
		if ct := file.Header.Get("Content-Type"); ct != "" {
			contentType = ct
		}
	}

	fence, err := h.officeFence(c)
	if err != nil {
		return engineError(c, err)
	}

	session, err := h.engine.ClockIn(c.UserContext(), usecase.ClockInInput{
		EmployeeID:       employeeID,
		Location:         location,
		Photo:            photo,
		PhotoContentType: contentType,
	}, fence)
	if err != nil {
		return engineError(c, err)
	}

	return c.JSON(fiber.Map{"message": "clock-in successful", "data": session})
}

type clockOutRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (h *AttendanceHandler) ClockOut(c *fiber.Ctx) error {
	employeeID, _ := c.Locals("employee_id").(string)

	var req clockOutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	session, err := h.engine.ClockOut(c.UserContext(), employeeID, geofence.GeoPoint{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return engineError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":      "clock-out successful",
		"hours_worked": session.HoursWorked,
		"data":         session,
	})
}

// TodayStatus tells the client which state machine state applies today, so
// it can offer clock-in or clock-out accordingly.
func (h *AttendanceHandler) TodayStatus(c *fiber.Ctx) error {
	employeeID, _ := c.Locals("employee_id").(string)
	today := h.engine.Today()

	session, err := h.attendanceRepo.FindByDate(c.UserContext(), employeeID, today)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return c.JSON(fiber.Map{"status": "not_clocked_in", "data": nil})
	}
	if err != nil {
		return engineError(c, err)
	}

	status := "clocked_in"
	if !session.Open() {
		status = "clocked_out"
	}
	return c.JSON(fiber.Map{"status": status, "data": session})
}

// History returns the caller's own sessions, optionally bounded by
// from/to date query params (YYYY-MM-DD, inclusive).
func (h *AttendanceHandler) History(c *fiber.Ctx) error {
	employeeID, _ := c.Locals("employee_id").(string)

	sessions, err := h.attendanceRepo.List(c.UserContext(), repository.SessionFilter{
		EmployeeID: employeeID,
		From:       c.Query("from"),
		To:         c.Query("to"),
	})
	if err != nil {
		return engineError(c, err)
	}

	return c.JSON(fiber.Map{"data": sessions})
}

// Records is the admin view over all sessions with optional employee and
// date range filters.
func (h *AttendanceHandler) Records(c *fiber.Ctx) error {
	sessions, err := h.attendanceRepo.List(c.UserContext(), repository.SessionFilter{
		EmployeeID: c.Query("employee_id"),
		From:       c.Query("from"),
		To:         c.Query("to"),
	})
	if err != nil {
		return engineError(c, err)
	}

	return c.JSON(fiber.Map{"data": sessions})
}

func (h *AttendanceHandler) officeFence(c *fiber.Ctx) (geofence.Fence, error) {
	setting, err := h.officeRepo.Get(c.UserContext())
	if err != nil {
		return geofence.Fence{}, err
	}
	return geofence.Fence{
		Center:       geofence.GeoPoint{Latitude: setting.Latitude, Longitude: setting.Longitude},
		RadiusMeters: setting.RadiusMeters,
	}, nil
}

func parseLocation(latStr, lngStr string) (geofence.GeoPoint, error) {
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return geofence.GeoPoint{}, err
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return geofence.GeoPoint{}, err
	}
	return geofence.GeoPoint{Latitude: lat, Longitude: lng}, nil
}
