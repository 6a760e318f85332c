package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"attendance-backend/internal/model"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmployeeExists   = errors.New("employee already exists")
)

type EmployeeRepository interface {
	Create(ctx context.Context, employee *model.Employee) error
	FindByEmployeeID(ctx context.Context, employeeID string) (*model.Employee, error)
	FindByEmail(ctx context.Context, email string) (*model.Employee, error)
	GetAll(ctx context.Context, search string) ([]model.Employee, error)
	GetActive(ctx context.Context) ([]model.Employee, error)
	Update(ctx context.Context, employee *model.Employee) error
}

type employeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db}
}

func (r *employeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	err := r.db.WithContext(ctx).Create(employee).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrEmployeeExists
	}
	return err
}

func (r *employeeRepository) FindByEmployeeID(ctx context.Context, employeeID string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.WithContext(ctx).Where("employee_id = ?", employeeID).First(&employee).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) FindByEmail(ctx context.Context, email string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&employee).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) GetAll(ctx context.Context, search string) ([]model.Employee, error) {
	q := r.db.WithContext(ctx).Model(&model.Employee{})
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("name LIKE ? OR employee_id LIKE ? OR email LIKE ?", like, like, like)
	}

	var employees []model.Employee
	err := q.Order("name asc").Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) GetActive(ctx context.Context) ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name asc").
		Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) Update(ctx context.Context, employee *model.Employee) error {
	return r.db.WithContext(ctx).Save(employee).Error
}
