package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"attendance-backend/internal/model"
)

var ErrOfficeNotConfigured = errors.New("office location not configured")

// OfficeRepository manages the singleton geofence configuration row.
type OfficeRepository interface {
	Get(ctx context.Context) (*model.OfficeSetting, error)
	Save(ctx context.Context, setting *model.OfficeSetting) error
}

type officeRepository struct {
	db *gorm.DB
}

func NewOfficeRepository(db *gorm.DB) OfficeRepository {
	return &officeRepository{db}
}

func (r *officeRepository) Get(ctx context.Context) (*model.OfficeSetting, error) {
	var setting model.OfficeSetting
	err := r.db.WithContext(ctx).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOfficeNotConfigured
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// Save overwrites the existing configuration, or creates it on first use.
func (r *officeRepository) Save(ctx context.Context, setting *model.OfficeSetting) error {
	existing, err := r.Get(ctx)
	if errors.Is(err, ErrOfficeNotConfigured) {
		return r.db.WithContext(ctx).Create(setting).Error
	}
	if err != nil {
		return err
	}

	setting.ID = existing.ID
	setting.CreatedAt = existing.CreatedAt
	return r.db.WithContext(ctx).Save(setting).Error
}
