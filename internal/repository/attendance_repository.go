package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"attendance-backend/internal/model"
)

var (
	// ErrDuplicateSession is returned by Create when a session already
	// exists for the same (employeeID, date). The engine relies on this to
	// resolve clock-in races between two devices.
	ErrDuplicateSession = errors.New("attendance session already exists for this date")

	ErrSessionNotFound = errors.New("attendance session not found")
)

// SessionFilter narrows List results. Empty fields are ignored; From and To
// are inclusive YYYY-MM-DD bounds.
type SessionFilter struct {
	EmployeeID string
	From       string
	To         string
}

type AttendanceRepository interface {
	FindByDate(ctx context.Context, employeeID, date string) (*model.AttendanceSession, error)
	Create(ctx context.Context, session *model.AttendanceSession) error
	Update(ctx context.Context, session *model.AttendanceSession) error
	List(ctx context.Context, filter SessionFilter) ([]model.AttendanceSession, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db}
}

func (r *attendanceRepository) FindByDate(ctx context.Context, employeeID, date string) (*model.AttendanceSession, error) {
	var session model.AttendanceSession
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND date = ?", employeeID, date).
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *attendanceRepository) Create(ctx context.Context, session *model.AttendanceSession) error {
	err := r.db.WithContext(ctx).Create(session).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateSession
	}
	return err
}

func (r *attendanceRepository) Update(ctx context.Context, session *model.AttendanceSession) error {
	return r.db.WithContext(ctx).Save(session).Error
}

func (r *attendanceRepository) List(ctx context.Context, filter SessionFilter) ([]model.AttendanceSession, error) {
	q := r.db.WithContext(ctx).Model(&model.AttendanceSession{})
	if filter.EmployeeID != "" {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.From != "" {
		q = q.Where("date >= ?", filter.From)
	}
	if filter.To != "" {
		q = q.Where("date <= ?", filter.To)
	}

	var sessions []model.AttendanceSession
	err := q.Order("date desc, employee_id asc").Find(&sessions).Error
	return sessions, err
}
