package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"attendance-backend/internal/geofence"
	"attendance-backend/internal/model"
	"attendance-backend/internal/repository"
)

type OfficeHandler struct {
	repo repository.OfficeRepository
}

func NewOfficeHandler(repo repository.OfficeRepository) *OfficeHandler {
	return &OfficeHandler{repo: repo}
}

func (h *OfficeHandler) Get(c *fiber.Ctx) error {
	setting, err := h.repo.Get(c.UserContext())
	if errors.Is(err, repository.ErrOfficeNotConfigured) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "office location has not been configured"})
	}
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(fiber.Map{"data": setting})
}

type updateOfficeRequest struct {
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Latitude     float64 `json:"latitude" validate:"latitude"`
	Longitude    float64 `json:"longitude" validate:"longitude"`
	RadiusMeters float64 `json:"radius_meters" validate:"required,gt=0"`
}

// Update overwrites the office geofence used to gate clock-ins.
func (h *OfficeHandler) Update(c *fiber.Ctx) error {
	var req updateOfficeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	setting := &model.OfficeSetting{
		Name:         req.Name,
		Address:      req.Address,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		RadiusMeters: req.RadiusMeters,
	}
	if err := h.repo.Save(c.UserContext(), setting); err != nil {
		return engineError(c, err)
	}

	return c.JSON(fiber.Map{"message": "office location saved", "data": setting})
}

type checkLocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// CheckLocation lets the client verify its position against the geofence
// before attempting a clock-in.
func (h *OfficeHandler) CheckLocation(c *fiber.Ctx) error {
	var req checkLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	setting, err := h.repo.Get(c.UserContext())
	if err != nil {
		return engineError(c, err)
	}

	res, err := geofence.IsWithinRange(
		geofence.GeoPoint{Latitude: req.Latitude, Longitude: req.Longitude},
		geofence.Fence{
			Center:       geofence.GeoPoint{Latitude: setting.Latitude, Longitude: setting.Longitude},
			RadiusMeters: setting.RadiusMeters,
		},
	)
	if err != nil {
		return engineError(c, err)
	}

	return c.JSON(fiber.Map{
		"in_range":        res.InRange,
		"distance_meters": res.DistanceMeters,
		"radius_meters":   setting.RadiusMeters,
	})
}
