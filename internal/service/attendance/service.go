package attendance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/indra-asistencia/asistencia-backend-go/internal/domain/attendance"
	"github.com/indra-asistencia/asistencia-backend-go/internal/domain/justification"
	"github.com/indra-asistencia/asistencia-backend-go/internal/domain/user"
	"github.com/indra-asistencia/asistencia-backend-go/internal/pkg/database"
)

// Check-ins strictly after this time of day file an automatic tardiness
// justification.
var tardinessCutoff = struct{ hour, minute int }{9, 10}

const tardinessReason = "Llegada después de las 09:10 - Sistema automático"

type AttendanceServiceImpl struct {
	tx             database.TxRunner
	sessions       attendance.SessionRepository
	justifications justification.RequestRepository
	users          user.UserRepository
	now            func() time.Time
}

func NewAttendanceService(
	tx database.TxRunner,
	sessionRepository attendance.SessionRepository,
	justificationRepository justification.RequestRepository,
	userRepository user.UserRepository,
) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		tx:             tx,
		sessions:       sessionRepository,
		justifications: justificationRepository,
		users:          userRepository,
		now:            time.Now,
	}
}

// normalizeAction upper-cases the action token and drops the underscore so
// the legacy CHECKIN/CHECKOUT spellings keep working.
func normalizeAction(action string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(action)), "_", "")
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func (a *AttendanceServiceImpl) isLate(entry time.Time) bool {
	cutoff := time.Date(entry.Year(), entry.Month(), entry.Day(),
		tardinessCutoff.hour, tardinessCutoff.minute, 0, 0, entry.Location())
	return entry.After(cutoff)
}

// Record implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Record(ctx context.Context, username string, action string) (string, error) {
	userData, err := a.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return "", err
		}
		return "", fmt.Errorf("failed to get user by username: %w", err)
	}
	if !userData.Enabled {
		return "", user.ErrUserDisabled
	}

	now := a.now()
	today := dayOf(now)

	latest, err := a.sessions.LatestForUserAndDate(ctx, userData.ID, today)
	if err != nil {
		return "", fmt.Errorf("failed to get latest session: %w", err)
	}

	switch normalizeAction(action) {
	case "CHECKIN":
		if latest != nil && latest.IsOpen() {
			return "", attendance.ErrOpenSessionExists
		}
		if err := a.checkIn(ctx, userData.ID, now, today); err != nil {
			return "", err
		}
		return "Check-in registrado correctamente", nil

	case "CHECKOUT":
		if latest == nil || !latest.IsOpen() {
			return "", attendance.ErrNoOpenSession
		}
		if err := a.sessions.Close(ctx, latest.ID, now); err != nil {
			return "", err
		}
		return "Check-out registrado correctamente", nil
	}

	return "", attendance.ErrInvalidAction
}

// checkIn creates the open session and, when the entry is past the cutoff,
// the automatic tardiness justification, in a single unit of work: if
// either write fails the other is rolled back.
func (a *AttendanceServiceImpl) checkIn(ctx context.Context, userID int64, entryAt, today time.Time) error {
	return a.tx.RunInTx(ctx, func(txCtx context.Context) error {
		session := attendance.Session{
			UserID:           userID,
			EntryAt:          entryAt,
			RegistrationDate: today,
			Status:           attendance.StatusInOffice,
		}
		if _, err := a.sessions.Create(txCtx, session); err != nil {
			if errors.Is(err, attendance.ErrOpenSessionExists) {
				return err
			}
			return fmt.Errorf("failed to create attendance session: %w", err)
		}

		if a.isLate(entryAt) {
			if err := a.recordTardiness(txCtx, userID, today); err != nil {
				return err
			}
		}
		return nil
	})
}

// recordTardiness files the system-generated TARDANZA justification for the
// given day. No deduplication: every late check-in files one.
func (a *AttendanceServiceImpl) recordTardiness(ctx context.Context, userID int64, day time.Time) error {
	request := justification.Request{
		UserID:      userID,
		TargetDate:  day,
		Type:        justification.TypeTardiness,
		Reason:      tardinessReason,
		Status:      justification.StatusPending,
		SubmittedAt: a.now(),
	}
	if _, err := a.justifications.Create(ctx, request); err != nil {
		return fmt.Errorf("failed to create tardiness justification: %w", err)
	}
	return nil
}

// History implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) History(ctx context.Context, username string) ([]attendance.SessionResponse, error) {
	userData, err := a.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	sessions, err := a.sessions.AllForUser(ctx, userData.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions for user: %w", err)
	}

	responses := make([]attendance.SessionResponse, 0, len(sessions))
	for i := range sessions {
		responses = append(responses, sessions[i].ToResponse())
	}
	return responses, nil
}

// ReportByDateRange implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ReportByDateRange(ctx context.Context, from, to time.Time) ([]attendance.SessionResponse, error) {
	from, to = dayOf(from), dayOf(to)
	if from.After(to) {
		return nil, attendance.ErrInvalidRange
	}

	sessions, err := a.sessions.AllInRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions in range: %w", err)
	}

	responses := make([]attendance.SessionResponse, 0, len(sessions))
	for i := range sessions {
		responses = append(responses, sessions[i].ToResponse())
	}
	return responses, nil
}
