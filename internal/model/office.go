package model

import "gorm.io/gorm"

// OfficeSetting is the singleton geofence configuration: employees must be
// within RadiusMeters of (Latitude, Longitude) to clock in.
type OfficeSetting struct {
	gorm.Model
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters float64 `json:"radius_meters" gorm:"default:100"`
}
