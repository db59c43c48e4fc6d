package attendance

// Attendance actions accepted by Record. Matching is case-insensitive and
// tolerates the legacy spellings without the underscore.
const (
	ActionCheckIn  = "CHECK_IN"
	ActionCheckOut = "CHECK_OUT"
)

type SessionResponse struct {
	ID               int64  `json:"id"`
	EmployeeName     string `json:"employee_name"`
	EntryAt          string `json:"entry_at"`
	ExitAt           string `json:"exit_at,omitempty"`
	Status           string `json:"status"`
	RegistrationDate string `json:"registration_date"`
}

// ToResponse maps a session to its response shape. Timestamps are rendered
// day-month-year hour:minute; ExitAt stays empty while the session is open.
func (s *Session) ToResponse() SessionResponse {
	name := "Desconocido"
	if s.Username != nil {
		name = *s.Username
	}
	exitAt := ""
	if s.ExitAt != nil {
		exitAt = s.ExitAt.Format("02-01-2006 15:04")
	}
	return SessionResponse{
		ID:               s.ID,
		EmployeeName:     name,
		EntryAt:          s.EntryAt.Format("02-01-2006 15:04"),
		ExitAt:           exitAt,
		Status:           string(s.Status),
		RegistrationDate: s.RegistrationDate.Format("02-01-2006"),
	}
}
