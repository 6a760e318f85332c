package usecase

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"attendance-backend/internal/geofence"
	"attendance-backend/internal/model"
	"attendance-backend/internal/repository"
	"attendance-backend/internal/storage"
)

const dateLayout = "2006-01-02"

// AttendanceEngine drives the per-employee-per-day session state machine:
// NoSession -> Open (ClockIn) -> Closed (ClockOut). The office geofence is
// supplied per call; identity is an explicit argument, never ambient state.
type AttendanceEngine struct {
	sessions  repository.AttendanceRepository
	directory repository.EmployeeRepository
	photos    storage.BlobStore

	// stageTimeout bounds each collaborator call. Zero disables the
	// per-stage budget and leaves only the caller's context.
	stageTimeout time.Duration

	now func() time.Time
}

func NewAttendanceEngine(
	sessions repository.AttendanceRepository,
	directory repository.EmployeeRepository,
	photos storage.BlobStore,
	stageTimeout time.Duration,
) *AttendanceEngine {
	return &AttendanceEngine{
		sessions:     sessions,
		directory:    directory,
		photos:       photos,
		stageTimeout: stageTimeout,
		now:          time.Now,
	}
}

// Today returns the current calendar date the engine keys sessions by.
func (e *AttendanceEngine) Today() string {
	return e.now().Format(dateLayout)
}

type ClockInInput struct {
	EmployeeID       string
	Location         geofence.GeoPoint
	Photo            []byte
	PhotoContentType string
}

// ClockIn opens today's session for the employee. Failure at any step leaves
// no partial record: the photo is uploaded before the session row exists, and
// the store's duplicate-key rejection settles races between devices.
func (e *AttendanceEngine) ClockIn(ctx context.Context, in ClockInInput, fence geofence.Fence) (*model.AttendanceSession, error) {
	employee, err := e.lookupEmployee(ctx, in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if !employee.IsActive {
		return nil, ErrEmployeeInactive
	}

	now := e.now()
	date := now.Format(dateLayout)

	_, err = e.findSession(ctx, in.EmployeeID, date)
	if err == nil {
		return nil, ErrAlreadyClockedIn
	}
	if !errors.Is(err, repository.ErrSessionNotFound) {
		return nil, err
	}

	res, err := geofence.IsWithinRange(in.Location, fence)
	if err != nil {
		return nil, err
	}
	if !res.InRange {
		return nil, &OutOfRangeError{DistanceMeters: res.DistanceMeters, RadiusMeters: fence.RadiusMeters}
	}

	if len(in.Photo) == 0 {
		return nil, ErrMissingPhoto
	}

	photoURL, err := e.uploadPhoto(ctx, in)
	if err != nil {
		return nil, err
	}

	session := &model.AttendanceSession{
		EmployeeID:      employee.EmployeeID,
		EmployeeName:    employee.Name,
		Date:            date,
		ClockInTime:     now,
		ClockInLat:      in.Location.Latitude,
		ClockInLng:      in.Location.Longitude,
		ClockInPhotoURL: photoURL,
	}
	if err := e.createSession(ctx, session); err != nil {
		if errors.Is(err, repository.ErrDuplicateSession) {
			// Another device won the race; same outcome as the pre-check.
			return nil, ErrAlreadyClockedIn
		}
		return nil, err
	}

	log.Info().
		Str("employee_id", employee.EmployeeID).
		Str("date", date).
		Float64("distance_m", res.DistanceMeters).
		Msg("clock-in recorded")
	return session, nil
}

// ClockOut closes today's open session. Hours worked are derived from the
// stored clock-in timestamp, so cross-midnight shifts and locale formatting
// cannot corrupt the result.
func (e *AttendanceEngine) ClockOut(ctx context.Context, employeeID string, location geofence.GeoPoint) (*model.AttendanceSession, error) {
	if err := location.Validate(); err != nil {
		return nil, err
	}

	now := e.now()
	date := now.Format(dateLayout)

	session, err := e.findSession(ctx, employeeID, date)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil, ErrNoOpenSession
	}
	if err != nil {
		return nil, err
	}
	if !session.Open() {
		return nil, ErrAlreadyClockedOut
	}

	hours := now.Sub(session.ClockInTime).Hours()
	if hours < 0 {
		hours = 0
	}
	hours = round2(hours)

	session.ClockOutTime = &now
	session.ClockOutLat = &location.Latitude
	session.ClockOutLng = &location.Longitude
	session.HoursWorked = &hours

	if err := e.updateSession(ctx, session); err != nil {
		return nil, err
	}

	log.Info().
		Str("employee_id", employeeID).
		Str("date", date).
		Float64("hours_worked", hours).
		Msg("clock-out recorded")
	return session, nil
}

func (e *AttendanceEngine) lookupEmployee(ctx context.Context, employeeID string) (*model.Employee, error) {
	sctx, cancel := e.stageCtx(ctx)
	defer cancel()

	employee, err := e.directory.FindByEmployeeID(sctx, employeeID)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return nil, err
		}
		return nil, stageErr(StageDirectory, err)
	}
	return employee, nil
}

func (e *AttendanceEngine) findSession(ctx context.Context, employeeID, date string) (*model.AttendanceSession, error) {
	sctx, cancel := e.stageCtx(ctx)
	defer cancel()

	session, err := e.sessions.FindByDate(sctx, employeeID, date)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, err
		}
		return nil, stageErr(StageStore, err)
	}
	return session, nil
}

func (e *AttendanceEngine) uploadPhoto(ctx context.Context, in ClockInInput) (string, error) {
	sctx, cancel := e.stageCtx(ctx)
	defer cancel()

	url, err := e.photos.Upload(sctx, "selfies/"+in.EmployeeID, in.Photo, in.PhotoContentType)
	if err != nil {
		if isTimeout(err) {
			return "", &TimeoutError{Stage: StageUpload}
		}
		return "", &StorageError{Stage: StageUpload, Err: err}
	}
	return url, nil
}

func (e *AttendanceEngine) createSession(ctx context.Context, session *model.AttendanceSession) error {
	sctx, cancel := e.stageCtx(ctx)
	defer cancel()

	err := e.sessions.Create(sctx, session)
	if err == nil || errors.Is(err, repository.ErrDuplicateSession) {
		return err
	}
	return stageErr(StageStore, err)
}

func (e *AttendanceEngine) updateSession(ctx context.Context, session *model.AttendanceSession) error {
	sctx, cancel := e.stageCtx(ctx)
	defer cancel()

	if err := e.sessions.Update(sctx, session); err != nil {
		return stageErr(StageStore, err)
	}
	return nil
}

func (e *AttendanceEngine) stageCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.stageTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, e.stageTimeout)
}

func stageErr(stage string, err error) error {
	if isTimeout(err) {
		return &TimeoutError{Stage: stage}
	}
	return &StorageError{Stage: stage, Err: err}
}

func isTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
