package user

import "time"

type Role string

const (
	RoleAdmin    Role = "ADMIN"    // Can approve justifications and manage accounts
	RoleEmployee Role = "EMPLEADO" // Regular employee
)

type User struct {
	ID           int64
	Username     string
	FullName     string
	PasswordHash string
	Role         Role
	Enabled      bool
	CreatedAt    time.Time
	LastAccessAt *time.Time
}

// IsAdmin checks if the user holds the administrator role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanApprove checks if the user can approve justification requests
func (u *User) CanApprove() bool {
	return u.IsAdmin()
}
