package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indra-asistencia/asistencia-backend-go/internal/domain/attendance"
	"github.com/indra-asistencia/asistencia-backend-go/internal/domain/justification"
	"github.com/indra-asistencia/asistencia-backend-go/internal/domain/user"
)

type stubTxRunner struct{}

func (stubTxRunner) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockUserRepository struct {
	getByUsernameFn func(ctx context.Context, username string) (user.User, error)
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (user.User, error) {
	return m.getByUsernameFn(ctx, username)
}
func (m *mockUserRepository) GetByID(context.Context, int64) (user.User, error) {
	panic("not implemented")
}
func (m *mockUserRepository) List(context.Context) ([]user.User, error) { panic("not implemented") }
func (m *mockUserRepository) Create(context.Context, user.User) (user.User, error) {
	panic("not implemented")
}
func (m *mockUserRepository) Update(context.Context, user.User) error  { panic("not implemented") }
func (m *mockUserRepository) SetEnabled(context.Context, int64, bool) error {
	panic("not implemented")
}
func (m *mockUserRepository) TouchLastAccess(context.Context, int64) error { return nil }

type mockSessionRepository struct {
	createFn  func(ctx context.Context, s attendance.Session) (attendance.Session, error)
	closeFn   func(ctx context.Context, id int64, exitAt time.Time) error
	latestFn  func(ctx context.Context, userID int64, date time.Time) (*attendance.Session, error)
	forUserFn func(ctx context.Context, userID int64) ([]attendance.Session, error)
	inRangeFn func(ctx context.Context, from, to time.Time) ([]attendance.Session, error)
}

func (m *mockSessionRepository) Create(ctx context.Context, s attendance.Session) (attendance.Session, error) {
	return m.createFn(ctx, s)
}
func (m *mockSessionRepository) Close(ctx context.Context, id int64, exitAt time.Time) error {
	return m.closeFn(ctx, id, exitAt)
}
func (m *mockSessionRepository) LatestForUserAndDate(ctx context.Context, userID int64, date time.Time) (*attendance.Session, error) {
	return m.latestFn(ctx, userID, date)
}
func (m *mockSessionRepository) AllForUser(ctx context.Context, userID int64) ([]attendance.Session, error) {
	return m.forUserFn(ctx, userID)
}
func (m *mockSessionRepository) AllInRange(ctx context.Context, from, to time.Time) ([]attendance.Session, error) {
	return m.inRangeFn(ctx, from, to)
}

type mockRequestRepository struct {
	createFn func(ctx context.Context, r justification.Request) (justification.Request, error)
}

func (m *mockRequestRepository) Create(ctx context.Context, r justification.Request) (justification.Request, error) {
	return m.createFn(ctx, r)
}
func (m *mockRequestRepository) GetByID(context.Context, int64) (justification.Request, error) {
	panic("not implemented")
}
func (m *mockRequestRepository) ListByStatus(context.Context, justification.RequestStatus) ([]justification.Request, error) {
	panic("not implemented")
}
func (m *mockRequestRepository) ListForUser(context.Context, int64) ([]justification.Request, error) {
	panic("not implemented")
}
func (m *mockRequestRepository) UpdateStatus(context.Context, int64, justification.RequestStatus, justification.RequestStatus) error {
	panic("not implemented")
}

func activeUser() user.User {
	return user.User{ID: 7, Username: "ana", FullName: "Ana Torres", Role: user.RoleEmployee, Enabled: true}
}

func newServiceAt(t *testing.T, clock time.Time) (*AttendanceServiceImpl, *mockUserRepository, *mockSessionRepository, *mockRequestRepository) {
	t.Helper()
	users := &mockUserRepository{
		getByUsernameFn: func(ctx context.Context, username string) (user.User, error) {
			return activeUser(), nil
		},
	}
	sessions := &mockSessionRepository{
		latestFn: func(ctx context.Context, userID int64, date time.Time) (*attendance.Session, error) {
			return nil, nil
		},
		createFn: func(ctx context.Context, s attendance.Session) (attendance.Session, error) {
			s.ID = 1
			return s, nil
		},
	}
	justifications := &mockRequestRepository{
		createFn: func(ctx context.Context, r justification.Request) (justification.Request, error) {
			r.ID = 1
			return r, nil
		},
	}
	service := NewAttendanceService(stubTxRunner{}, sessions, justifications, users)
	service.now = func() time.Time { return clock }
	return service, users, sessions, justifications
}

func at(hour, minute int) time.Time {
	return time.Date(2025, time.March, 5, hour, minute, 0, 0, time.UTC)
}

func TestRecordCheckInOnTime(t *testing.T) {
	service, _, sessions, justifications := newServiceAt(t, at(8, 0))

	var created *attendance.Session
	sessions.createFn = func(ctx context.Context, s attendance.Session) (attendance.Session, error) {
		created = &s
		s.ID = 1
		return s, nil
	}
	justifications.createFn = func(ctx context.Context, r justification.Request) (justification.Request, error) {
		t.Fatal("no justification should be filed for an on-time check-in")
		return r, nil
	}

	msg, err := service.Record(context.Background(), "ana", "CHECK_IN")

	require.NoError(t, err)
	assert.Equal(t, "Check-in registrado correctamente", msg)
	require.NotNil(t, created)
	assert.Equal(t, int64(7), created.UserID)
	assert.Equal(t, attendance.StatusInOffice, created.Status)
	assert.Equal(t, at(8, 0), created.EntryAt)
	assert.True(t, created.RegistrationDate.Equal(time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)))
}

func TestRecordCheckInAtCutoffIsNotLate(t *testing.T) {
	service, _, _, justifications := newServiceAt(t, at(9, 10))

	justifications.createFn = func(ctx context.Context, r justification.Request) (justification.Request, error) {
		t.Fatal("09:10 exactly is not late")
		return r, nil
	}

	_, err := service.Record(context.Background(), "ana", "CHECK_IN")
	require.NoError(t, err)
}

func TestRecordCheckInAfterCutoffFilesTardiness(t *testing.T) {
	service, _, _, justifications := newServiceAt(t, at(9, 11))

	var filed []justification.Request
	justifications.createFn = func(ctx context.Context, r justification.Request) (justification.Request, error) {
		filed = append(filed, r)
		r.ID = int64(len(filed))
		return r, nil
	}

	msg, err := service.Record(context.Background(), "ana", "CHECK_IN")

	require.NoError(t, err)
	assert.Equal(t, "Check-in registrado correctamente", msg)
	require.Len(t, filed, 1)
	assert.Equal(t, int64(7), filed[0].UserID)
	assert.Equal(t, justification.TypeTardiness, filed[0].Type)
	assert.Equal(t, justification.StatusPending, filed[0].Status)
	assert.Equal(t, "Llegada después de las 09:10 - Sistema automático", filed[0].Reason)
	assert.True(t, filed[0].TargetDate.Equal(time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)))
}

func TestRecordCheckInWithOpenSession(t *testing.T) {
	service, _, sessions, _ := newServiceAt(t, at(10, 0))

	sessions.latestFn = func(ctx context.Context, userID int64, date time.Time) (*attendance.Session, error) {
		return &attendance.Session{ID: 3, UserID: userID, Status: attendance.StatusInOffice}, nil
	}

	_, err := service.Record(context.Background(), "ana", "CHECK_IN")
	assert.ErrorIs(t, err, attendance.ErrOpenSessionExists)
}

func TestRecordCheckInAfterClosedSessionSameDay(t *testing.T) {
	service, _, sessions, _ := newServiceAt(t, at(14, 0))

	exit := at(12, 0)
	sessions.latestFn = func(ctx context.Context, userID int64, date time.Time) (*attendance.Session, error) {
		return &attendance.Session{ID: 3, UserID: userID, ExitAt: &exit, Status: attendance.StatusCompleted}, nil
	}

	msg, err := service.Record(context.Background(), "ana", "CHECK_IN")
	require.NoError(t, err)
	assert.Equal(t, "Check-in registrado correctamente", msg)
}

func TestRecordCheckOut(t *testing.T) {
	service, _, sessions, _ := newServiceAt(t, at(17, 0))

	sessions.latestFn = func(ctx context.Context, userID int64, date time.Time) (*attendance.Session, error) {
		return &attendance.Session{ID: 3, UserID: userID, EntryAt: at(8, 0), Status: attendance.StatusInOffice}, nil
	}
	var closedID int64
	var closedAt time.Time
	sessions.closeFn = func(ctx context.Context, id int64, exitAt time.Time) error {
		closedID, closedAt = id, exitAt
		return nil
	}

	msg, err := service.Record(context.Background(), "ana", "CHECK_OUT")

	require.NoError(t, err)
	assert.Equal(t, "Check-out registrado correctamente", msg)
	assert.Equal(t, int64(3), closedID)
	assert.Equal(t, at(17, 0), closedAt)
}

func TestRecordCheckOutWithoutOpenSession(t *testing.T) {
	service, _, _, _ := newServiceAt(t, at(17, 0))

	_, err := service.Record(context.Background(), "ana", "CHECK_OUT")
	assert.ErrorIs(t, err, attendance.ErrNoOpenSession)
}

func TestRecordCheckOutAfterAlreadyClosed(t *testing.T) {
	service, _, sessions, _ := newServiceAt(t, at(18, 0))

	exit := at(17, 0)
	sessions.latestFn = func(ctx context.Context, userID int64, date time.Time) (*attendance.Session, error) {
		return &attendance.Session{ID: 3, UserID: userID, ExitAt: &exit, Status: attendance.StatusCompleted}, nil
	}

	_, err := service.Record(context.Background(), "ana", "CHECK_OUT")
	assert.ErrorIs(t, err, attendance.ErrNoOpenSession)
}

func TestRecordAcceptsLegacyActionSpellings(t *testing.T) {
	for _, action := range []string{"CHECKIN", "check_in", "  check-in  "} {
		service, _, _, _ := newServiceAt(t, at(8, 0))
		_, err := service.Record(context.Background(), "ana", action)
		if action == "  check-in  " {
			assert.ErrorIs(t, err, attendance.ErrInvalidAction, "hyphenated spelling is not accepted")
			continue
		}
		assert.NoError(t, err, "action %q", action)
	}
}

func TestRecordInvalidAction(t *testing.T) {
	service, _, _, _ := newServiceAt(t, at(8, 0))

	_, err := service.Record(context.Background(), "ana", "LUNCH")
	assert.ErrorIs(t, err, attendance.ErrInvalidAction)
}

func TestRecordUnknownUser(t *testing.T) {
	service, users, _, _ := newServiceAt(t, at(8, 0))

	users.getByUsernameFn = func(ctx context.Context, username string) (user.User, error) {
		return user.User{}, user.ErrUserNotFound
	}

	_, err := service.Record(context.Background(), "ghost", "CHECK_IN")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestRecordDisabledUser(t *testing.T) {
	service, users, _, _ := newServiceAt(t, at(8, 0))

	users.getByUsernameFn = func(ctx context.Context, username string) (user.User, error) {
		u := activeUser()
		u.Enabled = false
		return u, nil
	}

	_, err := service.Record(context.Background(), "ana", "CHECK_IN")
	assert.ErrorIs(t, err, user.ErrUserDisabled)
}

func TestHistory(t *testing.T) {
	service, _, sessions, _ := newServiceAt(t, at(18, 0))

	name := "ana"
	exit := at(17, 0)
	sessions.forUserFn = func(ctx context.Context, userID int64) ([]attendance.Session, error) {
		return []attendance.Session{
			{
				ID: 3, UserID: userID, Username: &name,
				EntryAt: at(8, 0), ExitAt: &exit,
				RegistrationDate: time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC),
				Status:           attendance.StatusCompleted,
			},
		}, nil
	}

	history, err := service.History(context.Background(), "ana")

	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "ana", history[0].EmployeeName)
	assert.Equal(t, "05-03-2025 08:00", history[0].EntryAt)
	assert.Equal(t, "05-03-2025 17:00", history[0].ExitAt)
	assert.Equal(t, "COMPLETADO", history[0].Status)
	assert.Equal(t, "05-03-2025", history[0].RegistrationDate)
}

func TestReportByDateRange(t *testing.T) {
	service, _, sessions, _ := newServiceAt(t, at(18, 0))

	var gotFrom, gotTo time.Time
	sessions.inRangeFn = func(ctx context.Context, from, to time.Time) ([]attendance.Session, error) {
		gotFrom, gotTo = from, to
		return nil, nil
	}

	report, err := service.ReportByDateRange(context.Background(),
		time.Date(2025, time.March, 1, 13, 45, 0, 0, time.UTC),
		time.Date(2025, time.March, 31, 2, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Empty(t, report)
	assert.True(t, gotFrom.Equal(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, gotTo.Equal(time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)))
}

func TestReportByDateRangeInverted(t *testing.T) {
	service, _, _, _ := newServiceAt(t, at(18, 0))

	_, err := service.ReportByDateRange(context.Background(), at(0, 0).AddDate(0, 0, 1), at(0, 0))
	assert.ErrorIs(t, err, attendance.ErrInvalidRange)
}
