package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrUserDisabled           = errors.New("user account is disabled")
	ErrUsernameExists         = errors.New("username already registered")
	ErrInvalidRole            = errors.New("invalid role")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
