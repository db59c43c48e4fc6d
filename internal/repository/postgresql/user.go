package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/indra-asistencia/asistencia-backend-go/internal/domain/user"
	"github.com/indra-asistencia/asistencia-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, username, full_name, password_hash, role, enabled, created_at, last_access_at`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Username, &u.FullName, &u.PasswordHash,
		&u.Role, &u.Enabled, &u.CreatedAt, &u.LastAccessAt,
	)
	return u, err
}

// GetByUsername implements user.UserRepository. The match is exact and
// case-sensitive.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	u, err := scanUser(q.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	return u, nil
}

// GetByID implements user.UserRepository.
func (r *userRepository) GetByID(ctx context.Context, id int64) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return u, nil
}

// List implements user.UserRepository.
func (r *userRepository) List(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// Create implements user.UserRepository. A duplicate username surfaces as
// user.ErrUsernameExists.
func (r *userRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (username, full_name, password_hash, role, enabled)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		newUser.Username,
		newUser.FullName,
		newUser.PasswordHash,
		newUser.Role,
		newUser.Enabled,
	).Scan(&newUser.ID, &newUser.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.User{}, user.ErrUsernameExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return newUser, nil
}

// Update implements user.UserRepository.
func (r *userRepository) Update(ctx context.Context, updated user.User) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET full_name = $2, password_hash = $3, role = $4
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, updated.ID, updated.FullName, updated.PasswordHash, updated.Role)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// SetEnabled implements user.UserRepository.
func (r *userRepository) SetEnabled(ctx context.Context, id int64, enabled bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE users SET enabled = $2 WHERE id = $1`, id, enabled)
	if err != nil {
		return fmt.Errorf("failed to set user enabled flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// TouchLastAccess implements user.UserRepository.
func (r *userRepository) TouchLastAccess(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `UPDATE users SET last_access_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to touch last access: %w", err)
	}

	return nil
}
