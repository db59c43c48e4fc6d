package attendance

import (
	"time"
)

type SessionStatus string

const (
	StatusInOffice  SessionStatus = "EN_OFICINA"
	StatusCompleted SessionStatus = "COMPLETADO"
)

// Session is one check-in/check-out pair for a user on a given day.
// ExitAt stays nil while the session is open; Status never goes back
// from COMPLETADO to EN_OFICINA.
type Session struct {
	ID               int64
	UserID           int64
	EntryAt          time.Time
	ExitAt           *time.Time
	RegistrationDate time.Time // calendar day, midnight
	Status           SessionStatus
	CreatedAt        time.Time

	// DTO / Join
	Username *string
}

// IsOpen reports whether the session has not been checked out yet.
func (s *Session) IsOpen() bool {
	return s.ExitAt == nil
}
