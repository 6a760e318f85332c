package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attendance-backend/internal/geofence"
	"attendance-backend/internal/model"
	"attendance-backend/internal/repository"
)

var (
	testFence = geofence.Fence{
		Center:       geofence.GeoPoint{Latitude: 28.6139, Longitude: 77.2090},
		RadiusMeters: 100,
	}
	nearOffice = geofence.GeoPoint{Latitude: 28.6140, Longitude: 77.2091}
	farAway    = geofence.GeoPoint{Latitude: 28.6200, Longitude: 77.2200}
)

type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]*model.AttendanceSession

	createErr error
	delay     time.Duration
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*model.AttendanceSession)}
}

func (s *fakeSessionStore) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	select {
	case <-time.After(s.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *fakeSessionStore) FindByDate(ctx context.Context, employeeID, date string) (*model.AttendanceSession, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[employeeID+"|"+date]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	copied := *session
	return &copied, nil
}

func (s *fakeSessionStore) Create(ctx context.Context, session *model.AttendanceSession) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	if s.createErr != nil {
		return s.createErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	key := session.EmployeeID + "|" + session.Date
	if _, ok := s.sessions[key]; ok {
		return repository.ErrDuplicateSession
	}
	copied := *session
	s.sessions[key] = &copied
	return nil
}

func (s *fakeSessionStore) Update(ctx context.Context, session *model.AttendanceSession) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *session
	s.sessions[session.EmployeeID+"|"+session.Date] = &copied
	return nil
}

func (s *fakeSessionStore) List(ctx context.Context, filter repository.SessionFilter) ([]model.AttendanceSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.AttendanceSession
	for _, session := range s.sessions {
		out = append(out, *session)
	}
	return out, nil
}

func (s *fakeSessionStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

type fakeDirectory struct {
	employees map[string]*model.Employee
}

func (d *fakeDirectory) Create(ctx context.Context, e *model.Employee) error { return nil }
func (d *fakeDirectory) Update(ctx context.Context, e *model.Employee) error { return nil }
func (d *fakeDirectory) FindByEmail(ctx context.Context, email string) (*model.Employee, error) {
	return nil, repository.ErrEmployeeNotFound
}
func (d *fakeDirectory) GetAll(ctx context.Context, search string) ([]model.Employee, error) {
	return nil, nil
}
func (d *fakeDirectory) GetActive(ctx context.Context) ([]model.Employee, error) { return nil, nil }

func (d *fakeDirectory) FindByEmployeeID(ctx context.Context, employeeID string) (*model.Employee, error) {
	employee, ok := d.employees[employeeID]
	if !ok {
		return nil, repository.ErrEmployeeNotFound
	}
	return employee, nil
}

type fakeBlobStore struct {
	uploads int
	err     error
}

func (b *fakeBlobStore) Upload(ctx context.Context, dir string, data []byte, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if b.err != nil {
		return "", b.err
	}
	b.uploads++
	return "/uploads/" + dir + "/photo.jpg", nil
}

type engineFixture struct {
	engine *AttendanceEngine
	store  *fakeSessionStore
	blob   *fakeBlobStore
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()
	store := newFakeSessionStore()
	blob := &fakeBlobStore{}
	directory := &fakeDirectory{employees: map[string]*model.Employee{
		"EMP001": {EmployeeID: "EMP001", Name: "Jane Doe", IsActive: true},
		"EMP002": {EmployeeID: "EMP002", Name: "Old Timer", IsActive: false},
	}}
	return &engineFixture{
		engine: NewAttendanceEngine(store, directory, blob, 0),
		store:  store,
		blob:   blob,
	}
}

func (f *engineFixture) clockInAt(t *testing.T, at time.Time) *model.AttendanceSession {
	t.Helper()
	f.engine.now = func() time.Time { return at }
	session, err := f.engine.ClockIn(context.Background(), ClockInInput{
		EmployeeID:       "EMP001",
		Location:         nearOffice,
		Photo:            []byte("selfie"),
		PhotoContentType: "image/jpeg",
	}, testFence)
	require.NoError(t, err)
	return session
}

func TestClockInSuccess(t *testing.T) {
	f := newEngineFixture(t)
	at := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

	session := f.clockInAt(t, at)

	assert.Equal(t, "EMP001", session.EmployeeID)
	assert.Equal(t, "Jane Doe", session.EmployeeName)
	assert.Equal(t, "2026-08-31", session.Date)
	assert.Equal(t, at, session.ClockInTime)
	assert.Equal(t, nearOffice.Latitude, session.ClockInLat)
	assert.Equal(t, "/uploads/selfies/EMP001/photo.jpg", session.ClockInPhotoURL)
	assert.True(t, session.Open())
	assert.Nil(t, session.HoursWorked)
	assert.Equal(t, 1, f.store.count())
	assert.Equal(t, 1, f.blob.uploads)
}

func TestClockInTwiceSameDay(t *testing.T) {
	f := newEngineFixture(t)
	at := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	f.clockInAt(t, at)

	f.engine.now = func() time.Time { return at.Add(time.Minute) }
	_, err := f.engine.ClockIn(context.Background(), ClockInInput{
		EmployeeID:       "EMP001",
		Location:         nearOffice,
		Photo:            []byte("selfie"),
		PhotoContentType: "image/jpeg",
	}, testFence)

	assert.ErrorIs(t, err, ErrAlreadyClockedIn)
	assert.Equal(t, 1, f.store.count())
}

func TestClockInRaceMapsDuplicateKey(t *testing.T) {
	// The pre-check passes but another writer wins the insert race; the
	// store's duplicate-key rejection must read as AlreadyClockedIn.
	f := newEngineFixture(t)
	f.store.createErr = repository.ErrDuplicateSession

	_, err := f.engine.ClockIn(context.Background(), ClockInInput{
		EmployeeID:       "EMP001",
		Location:         nearOffice,
		Photo:            []byte("selfie"),
		PhotoContentType: "image/jpeg",
	}, testFence)

	assert.ErrorIs(t, err, ErrAlreadyClockedIn)
}

func TestClockInOutOfRange(t *testing.T) {
	f := newEngineFixture(t)

	_, err := f.engine.ClockIn(context.Background(), ClockInInput{
		EmployeeID:       "EMP001",
		Location:         farAway,
		Photo:            []byte("selfie"),
		PhotoContentType: "image/jpeg",
	}, testFence)

	var oor *OutOfRangeError
	require.ErrorAs(t, err, &oor)
	assert.Greater(t, oor.DistanceMeters, 1000.0)
	assert.Equal(t, 100.0, oor.RadiusMeters)
	assert.Equal(t, 0, f.store.count())
	assert.Equal(t, 0, f.blob.uploads)
}

func TestClockInMissingPhoto(t *testing.T) {
	f := newEngineFixture(t)

	_, err := f.engine.ClockIn(context.Background(), ClockInInput{
		EmployeeID: "EMP001",
		Location:   nearOffice,
	}, testFence)

	assert.ErrorIs(t, err, ErrMissingPhoto)
	assert.Equal(t, 0, f.store.count())
}

func TestClockInInvalidCoordinate(t *testing.T) {
	f := newEngineFixture(t)

	_, err := f.engine.ClockIn(context.Background(), ClockInInput{
		EmployeeID:       "EMP001",
		Location:         geofence.GeoPoint{Latitude: 123, Longitude: 77},
		Photo:            []byte("selfie"),
		PhotoContentType: "image/jpeg",
	}, testFence)

	assert.ErrorIs(t, err, geofence.ErrInvalidCoordinate)
	assert.Equal(t, 0, f.store.count())
}

func TestClockInInactiveEmployee(t *testing.T) {
	f := newEngineFixture(t)

	_, err := f.engine.ClockIn(context.Background(), ClockInInput{
		EmployeeID:       "EMP002",
		Location:         nearOffice,
		Photo:            []byte("selfie"),
		PhotoContentType: "image/jpeg",
	}, testFence)

	assert.ErrorIs(t, err, ErrEmployeeInactive)
}

func TestClockInUnknownEmployee(t *testing.T) {
	f := newEngineFixture(t)

	_, err := f.engine.ClockIn(context.Background(), ClockInInput{
		EmployeeID:       "GHOST",
		Location:         nearOffice,
		Photo:            []byte("selfie"),
		PhotoContentType: "image/jpeg",
	}, testFence)

	assert.ErrorIs(t, err, repository.ErrEmployeeNotFound)
}

func TestClockInUploadFailureCreatesNoSession(t *testing.T) {
	f := newEngineFixture(t)
	f.blob.err = errors.New("bucket unavailable")

	_, err := f.engine.ClockIn(context.Background(), ClockInInput{
		EmployeeID:       "EMP001",
		Location:         nearOffice,
		Photo:            []byte("selfie"),
		PhotoContentType: "image/jpeg",
	}, testFence)

	var se *StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, StageUpload, se.Stage)
	assert.Equal(t, 0, f.store.count())
}

func TestClockOutComputesHoursFromTimestamps(t *testing.T) {
	f := newEngineFixture(t)
	in := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	f.clockInAt(t, in)

	out := time.Date(2026, 8, 31, 17, 30, 0, 0, time.UTC)
	f.engine.now = func() time.Time { return out }

	session, err := f.engine.ClockOut(context.Background(), "EMP001", nearOffice)
	require.NoError(t, err)

	require.NotNil(t, session.HoursWorked)
	assert.Equal(t, 8.5, *session.HoursWorked)
	require.NotNil(t, session.ClockOutTime)
	assert.Equal(t, out, *session.ClockOutTime)
	require.NotNil(t, session.ClockOutLat)
	assert.Equal(t, nearOffice.Latitude, *session.ClockOutLat)
	assert.False(t, session.Open())
}

func TestClockOutWithoutClockIn(t *testing.T) {
	f := newEngineFixture(t)

	_, err := f.engine.ClockOut(context.Background(), "EMP001", nearOffice)
	assert.ErrorIs(t, err, ErrNoOpenSession)
}

func TestClockOutTwice(t *testing.T) {
	f := newEngineFixture(t)
	in := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	f.clockInAt(t, in)
	f.engine.now = func() time.Time { return in.Add(8 * time.Hour) }

	_, err := f.engine.ClockOut(context.Background(), "EMP001", nearOffice)
	require.NoError(t, err)

	_, err = f.engine.ClockOut(context.Background(), "EMP001", nearOffice)
	assert.ErrorIs(t, err, ErrAlreadyClockedOut)
}

func TestClockOutClampsNegativeElapsed(t *testing.T) {
	// Clock skew can put the stored clock-in after "now"; hours never go
	// negative.
	f := newEngineFixture(t)
	in := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	f.clockInAt(t, in)

	f.engine.now = func() time.Time { return in.Add(-30 * time.Minute) }
	session, err := f.engine.ClockOut(context.Background(), "EMP001", nearOffice)
	require.NoError(t, err)
	require.NotNil(t, session.HoursWorked)
	assert.Equal(t, 0.0, *session.HoursWorked)
}

func TestClockOutInvalidCoordinate(t *testing.T) {
	f := newEngineFixture(t)
	f.clockInAt(t, time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC))

	_, err := f.engine.ClockOut(context.Background(), "EMP001", geofence.GeoPoint{Latitude: 0, Longitude: 200})
	assert.ErrorIs(t, err, geofence.ErrInvalidCoordinate)
}

func TestStageTimeout(t *testing.T) {
	f := newEngineFixture(t)
	f.store.delay = 100 * time.Millisecond
	f.engine.stageTimeout = time.Millisecond

	_, err := f.engine.ClockIn(context.Background(), ClockInInput{
		EmployeeID:       "EMP001",
		Location:         nearOffice,
		Photo:            []byte("selfie"),
		PhotoContentType: "image/jpeg",
	}, testFence)

	var te *TimeoutError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, StageStore, te.Stage)
	assert.Equal(t, 0, f.store.count())
}
