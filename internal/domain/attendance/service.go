package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// Record processes a CHECK_IN or CHECK_OUT for the named user and
	// returns a human-readable confirmation. A check-in after the tardiness
	// cutoff also files an automatic TARDANZA justification in the same
	// unit of work.
	Record(ctx context.Context, username string, action string) (string, error)

	// History returns every session of the named user, unfiltered
	History(ctx context.Context, username string) ([]SessionResponse, error)

	// ReportByDateRange returns all sessions across all users with a
	// registration date in [from, to] inclusive (admin)
	ReportByDateRange(ctx context.Context, from, to time.Time) ([]SessionResponse, error)
}
