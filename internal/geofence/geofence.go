package geofence

import (
	"errors"
	"fmt"
	"math"
)

// earthRadiusMeters is the mean Earth radius used by the haversine formula.
const earthRadiusMeters = 6371000

var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrInvalidRadius     = errors.New("invalid radius")
)

// GeoPoint is an immutable latitude/longitude pair in degrees.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate checks the coordinate domain: latitude in [-90, 90] and
// longitude in [-180, 180].
func (p GeoPoint) Validate() error {
	if math.IsNaN(p.Latitude) || p.Latitude < -90 || p.Latitude > 90 {
		return fmt.Errorf("%w: latitude %v out of range [-90, 90]", ErrInvalidCoordinate, p.Latitude)
	}
	if math.IsNaN(p.Longitude) || p.Longitude < -180 || p.Longitude > 180 {
		return fmt.Errorf("%w: longitude %v out of range [-180, 180]", ErrInvalidCoordinate, p.Longitude)
	}
	return nil
}

// Fence is a circular boundary around an office location.
type Fence struct {
	Center       GeoPoint
	RadiusMeters float64
}

// Result carries the admission decision and the measured distance, so
// callers can tell the user how far away they are.
type Result struct {
	InRange        bool    `json:"in_range"`
	DistanceMeters float64 `json:"distance_meters"`
}

// Distance returns the great-circle distance between two points in meters
// using the haversine formula.
func Distance(a, b GeoPoint) float64 {
	dLat := (b.Latitude - a.Latitude) * (math.Pi / 180.0)
	dLng := (b.Longitude - a.Longitude) * (math.Pi / 180.0)

	latA := a.Latitude * (math.Pi / 180.0)
	latB := b.Latitude * (math.Pi / 180.0)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLng/2)*math.Sin(dLng/2)*math.Cos(latA)*math.Cos(latB)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// IsWithinRange decides whether the reported point is inside the fence.
// A point exactly on the boundary counts as in range.
func IsWithinRange(point GeoPoint, fence Fence) (Result, error) {
	if err := point.Validate(); err != nil {
		return Result{}, err
	}
	if err := fence.Center.Validate(); err != nil {
		return Result{}, err
	}
	if math.IsNaN(fence.RadiusMeters) || fence.RadiusMeters <= 0 {
		return Result{}, fmt.Errorf("%w: radius %v must be positive", ErrInvalidRadius, fence.RadiusMeters)
	}

	d := Distance(point, fence.Center)
	return Result{InRange: d <= fence.RadiusMeters, DistanceMeters: d}, nil
}
