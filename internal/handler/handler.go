package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"attendance-backend/internal/geofence"
	"attendance-backend/internal/repository"
	"attendance-backend/internal/usecase"
)

var validate = validator.New()

// engineError maps the attendance engine's error taxonomy onto HTTP
// responses. Every kind carries an actionable message; OutOfRange includes
// the measured distance so the client can show how far away the user is.
func engineError(c *fiber.Ctx, err error) error {
	var oor *usecase.OutOfRangeError
	var te *usecase.TimeoutError
	var se *usecase.StorageError

	switch {
	case errors.Is(err, usecase.ErrAlreadyClockedIn):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "you have already clocked in today"})
	case errors.Is(err, usecase.ErrAlreadyClockedOut):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "you have already clocked out today"})
	case errors.Is(err, usecase.ErrNoOpenSession):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "you have not clocked in today"})
	case errors.Is(err, usecase.ErrMissingPhoto):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "a verification selfie is required"})
	case errors.Is(err, usecase.ErrEmployeeInactive):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "your account has been deactivated"})
	case errors.Is(err, repository.ErrEmployeeNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "employee not found"})
	case errors.Is(err, repository.ErrOfficeNotConfigured):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "office location has not been configured"})
	case errors.Is(err, geofence.ErrInvalidCoordinate), errors.Is(err, geofence.ErrInvalidRadius):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &oor):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":           "you are outside the office area",
			"distance_meters": oor.DistanceMeters,
			"radius_meters":   oor.RadiusMeters,
		})
	case errors.As(err, &te):
		return c.Status(fiber.StatusGatewayTimeout).JSON(fiber.Map{"error": "operation timed out", "stage": te.Stage})
	case errors.As(err, &se):
		log.Error().Err(err).Str("stage", se.Stage).Msg("storage failure")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "storage failure, please try again"})
	default:
		log.Error().Err(err).Msg("unexpected error")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
}
