package attendance

import (
	"context"
	"time"
)

// SessionRepository defines data access methods for attendance sessions.
type SessionRepository interface {
	// Create inserts a new open session. The store enforces the one open
	// session per (user, registration date) invariant with a partial unique
	// index; a violation surfaces as ErrOpenSessionExists.
	Create(ctx context.Context, session Session) (Session, error)

	// Close stamps the exit timestamp and moves the session to COMPLETADO.
	// Closing a session that is not open surfaces ErrNoOpenSession.
	Close(ctx context.Context, id int64, exitAt time.Time) error

	// LatestForUserAndDate returns the most recent session for the user on
	// the given day, ordered by entry timestamp descending, or nil when the
	// user has no session that day.
	LatestForUserAndDate(ctx context.Context, userID int64, date time.Time) (*Session, error)

	// AllForUser returns every session of the user in insertion order.
	AllForUser(ctx context.Context, userID int64) ([]Session, error)

	// AllInRange returns every session across all users whose registration
	// date falls in [from, to] inclusive.
	AllInRange(ctx context.Context, from, to time.Time) ([]Session, error)
}
