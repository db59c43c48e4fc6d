package response

import (
	"errors"
	"net/http"

	"github.com/indra-asistencia/asistencia-backend-go/internal/domain/attendance"
	"github.com/indra-asistencia/asistencia-backend-go/internal/domain/auth"
	"github.com/indra-asistencia/asistencia-backend-go/internal/domain/justification"
	"github.com/indra-asistencia/asistencia-backend-go/internal/domain/user"
	"github.com/indra-asistencia/asistencia-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserDisabled):
		Forbidden(w, "User account is disabled")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Administrator privilege required")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already exists")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Invalid role: use ADMIN or EMPLEADO", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrOpenSessionExists):
		Conflict(w, "An open session already exists for today")
	case errors.Is(err, attendance.ErrNoOpenSession):
		BadRequest(w, "No open session to check out from", nil)
	case errors.Is(err, attendance.ErrInvalidAction):
		BadRequest(w, "Invalid action: use CHECK_IN or CHECK_OUT", nil)
	case errors.Is(err, attendance.ErrInvalidRange):
		BadRequest(w, "Invalid date range: from must not be after to", nil)

	// Justification domain errors
	case errors.Is(err, justification.ErrJustificationNotFound):
		NotFound(w, "Justification request not found")
	case errors.Is(err, justification.ErrAlreadyProcessed):
		Conflict(w, "Justification request already processed")
	case errors.Is(err, justification.ErrMissingDate):
		BadRequest(w, "Target date is required in YYYY-MM-DD format", nil)
	case errors.Is(err, justification.ErrInvalidReason):
		BadRequest(w, "Reason must be at least 10 characters", nil)
	case errors.Is(err, justification.ErrInvalidType):
		BadRequest(w, "Invalid type: use TARDANZA or AUSENCIA", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
