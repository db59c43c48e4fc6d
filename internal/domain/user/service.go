package user

import (
	"context"
)

// UserAdminService defines administrator account management operations.
// Authorization is enforced by the AdminOnly middleware on the route group.
type UserAdminService interface {
	// List returns every registered account
	List(ctx context.Context) ([]UserResponse, error)

	// Create registers a new account with a hashed password
	Create(ctx context.Context, req CreateUserRequest) (string, error)

	// Get retrieves a single account by ID
	Get(ctx context.Context, id int64) (UserResponse, error)

	// Update changes the mutable fields of an account
	Update(ctx context.Context, req UpdateUserRequest) (string, error)

	// Deactivate disables an account; disabled users cannot check in or out
	Deactivate(ctx context.Context, id int64) (string, error)

	// Activate re-enables an account
	Activate(ctx context.Context, id int64) (string, error)
}
