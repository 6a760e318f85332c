package database

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"attendance-backend/internal/model"
)

// SeedAll provisions a development office geofence, an admin account and a
// couple of sample employees. Existing rows are left alone.
func SeedAll(db *gorm.DB) {
	office := model.OfficeSetting{
		Name:         "Head Office",
		Address:      "Connaught Place, New Delhi",
		Latitude:     28.6139,
		Longitude:    77.2090,
		RadiusMeters: 100,
	}
	db.FirstOrCreate(&office, model.OfficeSetting{Name: office.Name})

	employees := []model.Employee{
		{EmployeeID: "ADMIN01", Name: "Site Admin", Email: "admin@example.com", Role: model.RoleAdmin, IsActive: true},
		{EmployeeID: "EMP001", Name: "Jane Doe", Email: "jane@example.com", Role: model.RoleEmployee, IsActive: true},
		{EmployeeID: "EMP002", Name: "John Roe", Email: "john@example.com", Role: model.RoleEmployee, IsActive: true},
	}

	for _, e := range employees {
		hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		if err != nil {
			log.Error().Err(err).Msg("seed password hash failed")
			continue
		}
		e.Password = string(hashed)
		db.FirstOrCreate(&e, model.Employee{EmployeeID: e.EmployeeID})
	}

	log.Info().Msg("seeding done")
}
