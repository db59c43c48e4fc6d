package user

import (
	"strings"
	"time"

	"github.com/indra-asistencia/asistencia-backend-go/internal/pkg/validator"
)

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	} else if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 3-50 characters: letters, digits, '.', '_' or '-'",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// NormalizedRole upper-cases the requested role, defaulting to EMPLEADO.
func (r *CreateUserRequest) NormalizedRole() (Role, error) {
	role := strings.ToUpper(strings.TrimSpace(r.Role))
	if role == "" {
		return RoleEmployee, nil
	}
	switch Role(role) {
	case RoleAdmin, RoleEmployee:
		return Role(role), nil
	default:
		return "", ErrInvalidRole
	}
}

type UpdateUserRequest struct {
	ID       int64   `json:"-"`
	FullName *string `json:"full_name"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name cannot be blank",
		})
	}

	if r.Password != nil && len(*r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UserResponse struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	FullName     string     `json:"full_name"`
	Role         string     `json:"role"`
	Enabled      bool       `json:"enabled"`
	CreatedAt    time.Time  `json:"created_at"`
	LastAccessAt *time.Time `json:"last_access_at,omitempty"`
}

// ToResponse maps the entity to its response shape.
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		FullName:     u.FullName,
		Role:         string(u.Role),
		Enabled:      u.Enabled,
		CreatedAt:    u.CreatedAt,
		LastAccessAt: u.LastAccessAt,
	}
}
