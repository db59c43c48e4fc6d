package useradmin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/indra-asistencia/asistencia-backend-go/internal/domain/user"
)

type UserAdminServiceImpl struct {
	users user.UserRepository
}

func NewUserAdminService(userRepository user.UserRepository) *UserAdminServiceImpl {
	return &UserAdminServiceImpl{users: userRepository}
}

// List implements user.UserAdminService.
func (s *UserAdminServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, users[i].ToResponse())
	}
	return responses, nil
}

// Create implements user.UserAdminService.
func (s *UserAdminServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	role, err := req.NormalizedRole()
	if err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.users.Create(ctx, user.User{
		Username:     strings.TrimSpace(req.Username),
		FullName:     strings.TrimSpace(req.FullName),
		PasswordHash: string(hash),
		Role:         role,
		Enabled:      true,
	})
	if err != nil {
		if errors.Is(err, user.ErrUsernameExists) {
			return "", err
		}
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	return fmt.Sprintf("Usuario %s creado con rol %s", created.Username, created.Role), nil
}

// Get implements user.UserAdminService.
func (s *UserAdminServiceImpl) Get(ctx context.Context, id int64) (user.UserResponse, error) {
	userData, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.UserResponse{}, err
		}
		return user.UserResponse{}, fmt.Errorf("failed to get user: %w", err)
	}
	return userData.ToResponse(), nil
}

// Update implements user.UserAdminService.
func (s *UserAdminServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	userData, err := s.users.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return "", err
		}
		return "", fmt.Errorf("failed to get user: %w", err)
	}

	if req.FullName != nil {
		userData.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return "", fmt.Errorf("failed to hash password: %w", err)
		}
		userData.PasswordHash = string(hash)
	}
	if req.Role != nil {
		roleReq := user.CreateUserRequest{Role: *req.Role}
		role, err := roleReq.NormalizedRole()
		if err != nil {
			return "", err
		}
		userData.Role = role
	}

	if err := s.users.Update(ctx, userData); err != nil {
		return "", fmt.Errorf("failed to update user: %w", err)
	}
	return fmt.Sprintf("Usuario %s actualizado correctamente", userData.Username), nil
}

// Deactivate implements user.UserAdminService.
func (s *UserAdminServiceImpl) Deactivate(ctx context.Context, id int64) (string, error) {
	if err := s.setEnabled(ctx, id, false); err != nil {
		return "", err
	}
	return "Usuario desactivado correctamente", nil
}

// Activate implements user.UserAdminService.
func (s *UserAdminServiceImpl) Activate(ctx context.Context, id int64) (string, error) {
	if err := s.setEnabled(ctx, id, true); err != nil {
		return "", err
	}
	return "Usuario activado correctamente", nil
}

func (s *UserAdminServiceImpl) setEnabled(ctx context.Context, id int64, enabled bool) error {
	if err := s.users.SetEnabled(ctx, id, enabled); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("failed to set user enabled state: %w", err)
	}
	return nil
}
