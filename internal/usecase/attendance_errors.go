package usecase

import (
	"errors"
	"fmt"
)

// Stages of a clock-in/clock-out operation, reported by TimeoutError and
// StorageError so callers know which collaborator call failed.
const (
	StageDirectory = "directory"
	StageStore     = "store"
	StageUpload    = "upload"
)

var (
	ErrAlreadyClockedIn  = errors.New("already clocked in today")
	ErrAlreadyClockedOut = errors.New("already clocked out today")
	ErrNoOpenSession     = errors.New("no open attendance session for today")
	ErrMissingPhoto      = errors.New("verification photo is required")
	ErrEmployeeInactive  = errors.New("employee account is deactivated")
)

// OutOfRangeError rejects a clock-in attempted outside the office geofence.
type OutOfRangeError struct {
	DistanceMeters float64
	RadiusMeters   float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("out of range: %.0fm from office, allowed radius %.0fm", e.DistanceMeters, e.RadiusMeters)
}

// TimeoutError reports that a collaborator call exceeded its budget. No
// partial session is committed when it occurs.
type TimeoutError struct {
	Stage string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timeout at %s stage", e.Stage)
}

// StorageError wraps a non-timeout failure from the photo store or the
// session store.
type StorageError struct {
	Stage string
	Err   error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure at %s stage: %v", e.Stage, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
