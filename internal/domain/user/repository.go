package user

import (
	"context"
)

// UserRepository defines data access methods for user accounts.
// Username lookups are exact, case-sensitive matches.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, newUser User) (User, error)
	Update(ctx context.Context, updated User) error
	SetEnabled(ctx context.Context, id int64, enabled bool) error
	TouchLastAccess(ctx context.Context, id int64) error
}
