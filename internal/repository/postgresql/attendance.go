package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/indra-asistencia/asistencia-backend-go/internal/domain/attendance"
	"github.com/indra-asistencia/asistencia-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.SessionRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.SessionRepository. The partial unique index
// attendance_sessions_open_per_day turns this into a conditional insert:
// a concurrent open session for the same user and day raises 23505, which
// maps back to the domain error.
func (r *attendanceRepository) Create(ctx context.Context, session attendance.Session) (attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_sessions (user_id, entry_at, registration_date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		session.UserID,
		session.EntryAt,
		session.RegistrationDate,
		session.Status,
	).Scan(&session.ID, &session.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Session{}, attendance.ErrOpenSessionExists
		}
		return attendance.Session{}, fmt.Errorf("failed to create attendance session: %w", err)
	}

	return session, nil
}

// Close implements attendance.SessionRepository. The exit_at IS NULL guard
// makes the close a compare-and-swap, so a session cannot be completed twice.
func (r *attendanceRepository) Close(ctx context.Context, id int64, exitAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_sessions
		SET exit_at = $2, status = $3
		WHERE id = $1 AND exit_at IS NULL
	`

	tag, err := q.Exec(ctx, query, id, exitAt, attendance.StatusCompleted)
	if err != nil {
		return fmt.Errorf("failed to close attendance session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrNoOpenSession
	}

	return nil
}

// LatestForUserAndDate implements attendance.SessionRepository.
func (r *attendanceRepository) LatestForUserAndDate(ctx context.Context, userID int64, date time.Time) (*attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, entry_at, exit_at, registration_date, status, created_at
		FROM attendance_sessions
		WHERE user_id = $1
		  AND registration_date = $2
		ORDER BY entry_at DESC
		LIMIT 1
	`

	var s attendance.Session
	err := q.QueryRow(ctx, query, userID, date).Scan(
		&s.ID, &s.UserID, &s.EntryAt, &s.ExitAt, &s.RegistrationDate, &s.Status, &s.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // first action of the day
		}
		return nil, fmt.Errorf("failed to get latest session for user and date: %w", err)
	}

	return &s, nil
}

// AllForUser implements attendance.SessionRepository. Insertion order.
func (r *attendanceRepository) AllForUser(ctx context.Context, userID int64) ([]attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.user_id, s.entry_at, s.exit_at, s.registration_date, s.status, s.created_at,
			   u.username
		FROM attendance_sessions s
		LEFT JOIN users u ON u.id = s.user_id
		WHERE s.user_id = $1
		ORDER BY s.id
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions for user: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

// AllInRange implements attendance.SessionRepository. Bounds are inclusive.
func (r *attendanceRepository) AllInRange(ctx context.Context, from, to time.Time) ([]attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.user_id, s.entry_at, s.exit_at, s.registration_date, s.status, s.created_at,
			   u.username
		FROM attendance_sessions s
		LEFT JOIN users u ON u.id = s.user_id
		WHERE s.registration_date BETWEEN $1 AND $2
		ORDER BY s.id
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions in range: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

func scanSessions(rows pgx.Rows) ([]attendance.Session, error) {
	var sessions []attendance.Session
	for rows.Next() {
		var s attendance.Session
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.EntryAt, &s.ExitAt, &s.RegistrationDate, &s.Status, &s.CreatedAt,
			&s.Username,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance session: %w", err)
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}
