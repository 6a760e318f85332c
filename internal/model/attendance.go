package model

import (
	"time"

	"gorm.io/gorm"
)

// AttendanceSession is one employee's clock-in/clock-out record for one
// calendar date. The composite unique index on (employee_id, date) is the
// storage-level guard for the one-session-per-day rule: a second insert for
// the same pair fails with a duplicate key error even when two devices race.
type AttendanceSession struct {
	gorm.Model
	EmployeeID   string `json:"employee_id" gorm:"uniqueIndex:idx_employee_date;not null"`
	EmployeeName string `json:"employee_name"`
	Date         string `json:"date" gorm:"uniqueIndex:idx_employee_date;not null"` // YYYY-MM-DD

	ClockInTime     time.Time `json:"clock_in_time"`
	ClockInLat      float64   `json:"clock_in_lat"`
	ClockInLng      float64   `json:"clock_in_lng"`
	ClockInPhotoURL string    `json:"clock_in_photo_url"`

	ClockOutTime *time.Time `json:"clock_out_time,omitempty"`
	ClockOutLat  *float64   `json:"clock_out_lat,omitempty"`
	ClockOutLng  *float64   `json:"clock_out_lng,omitempty"`

	// Derived from the stored timestamps at clock-out, never from
	// formatted time-of-day strings.
	HoursWorked *float64 `json:"hours_worked,omitempty"`
}

// Open reports whether the session has not been clocked out yet.
func (s *AttendanceSession) Open() bool {
	return s.ClockOutTime == nil
}
