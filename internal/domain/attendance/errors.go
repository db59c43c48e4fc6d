package attendance

import "errors"

// Attendance domain errors
var (
	ErrOpenSessionExists = errors.New("you already have an open check-in today")
	ErrNoOpenSession     = errors.New("you have no open check-in today")
	ErrInvalidAction     = errors.New("invalid action: use CHECK_IN or CHECK_OUT")
	ErrInvalidRange      = errors.New("'from' date must not be after 'to' date")
)
