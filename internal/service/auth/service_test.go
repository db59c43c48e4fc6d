package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/indra-asistencia/asistencia-backend-go/internal/domain/auth"
	"github.com/indra-asistencia/asistencia-backend-go/internal/domain/user"
	"github.com/indra-asistencia/asistencia-backend-go/internal/pkg/jwt"
)

type stubTxRunner struct{}

func (stubTxRunner) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockUserRepository struct {
	getByUsernameFn func(ctx context.Context, username string) (user.User, error)
	getByIDFn       func(ctx context.Context, id int64) (user.User, error)
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (user.User, error) {
	return m.getByUsernameFn(ctx, username)
}
func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (user.User, error) {
	return m.getByIDFn(ctx, id)
}
func (m *mockUserRepository) List(context.Context) ([]user.User, error) { panic("not implemented") }
func (m *mockUserRepository) Create(context.Context, user.User) (user.User, error) {
	panic("not implemented")
}
func (m *mockUserRepository) Update(context.Context, user.User) error { panic("not implemented") }
func (m *mockUserRepository) SetEnabled(context.Context, int64, bool) error {
	panic("not implemented")
}
func (m *mockUserRepository) TouchLastAccess(context.Context, int64) error { return nil }

type mockJWTRepository struct {
	created   []string
	revokedFn func(ctx context.Context, token string) (int64, bool, error)
}

func (m *mockJWTRepository) CreateRefreshToken(ctx context.Context, userID int64, token string, expiresAt int64, sessionReq auth.SessionTrackingRequest) error {
	m.created = append(m.created, token)
	return nil
}
func (m *mockJWTRepository) IsRefreshTokenRevoked(ctx context.Context, token string) (int64, bool, error) {
	if m.revokedFn != nil {
		return m.revokedFn(ctx, token)
	}
	return 7, false, nil
}
func (m *mockJWTRepository) RevokeRefreshToken(ctx context.Context, token string) error { return nil }

func testUser(t *testing.T) user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.MinCost)
	require.NoError(t, err)
	return user.User{
		ID:           7,
		Username:     "ana",
		FullName:     "Ana Torres",
		PasswordHash: string(hash),
		Role:         user.RoleEmployee,
		Enabled:      true,
	}
}

func newAuthService(t *testing.T, u user.User) (auth.AuthService, *mockJWTRepository) {
	t.Helper()
	users := &mockUserRepository{
		getByUsernameFn: func(ctx context.Context, username string) (user.User, error) {
			if username == u.Username {
				return u, nil
			}
			return user.User{}, user.ErrUserNotFound
		},
		getByIDFn: func(ctx context.Context, id int64) (user.User, error) {
			if id == u.ID {
				return u, nil
			}
			return user.User{}, user.ErrUserNotFound
		},
	}
	tokens := &mockJWTRepository{}
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	return NewAuthService(stubTxRunner{}, users, jwtService, tokens), tokens
}

func TestLogin(t *testing.T) {
	service, tokens := newAuthService(t, testUser(t))

	resp, err := service.Login(context.Background(),
		auth.LoginRequest{Username: "ana", Password: "secreto123"},
		auth.SessionTrackingRequest{IPAddress: "127.0.0.1", UserAgent: "test"})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	require.Len(t, tokens.created, 1)
	assert.Equal(t, resp.RefreshToken, tokens.created[0])
}

func TestLoginWrongPassword(t *testing.T) {
	service, _ := newAuthService(t, testUser(t))

	_, err := service.Login(context.Background(),
		auth.LoginRequest{Username: "ana", Password: "wrong"},
		auth.SessionTrackingRequest{})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	service, _ := newAuthService(t, testUser(t))

	_, err := service.Login(context.Background(),
		auth.LoginRequest{Username: "ghost", Password: "secreto123"},
		auth.SessionTrackingRequest{})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginDisabledUser(t *testing.T) {
	u := testUser(t)
	u.Enabled = false
	service, _ := newAuthService(t, u)

	_, err := service.Login(context.Background(),
		auth.LoginRequest{Username: "ana", Password: "secreto123"},
		auth.SessionTrackingRequest{})

	assert.ErrorIs(t, err, user.ErrUserDisabled)
}

func TestRefresh(t *testing.T) {
	service, _ := newAuthService(t, testUser(t))

	login, err := service.Login(context.Background(),
		auth.LoginRequest{Username: "ana", Password: "secreto123"},
		auth.SessionTrackingRequest{})
	require.NoError(t, err)

	resp, err := service.Refresh(context.Background(),
		auth.RefreshTokenRequest{RefreshToken: login.RefreshToken})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, login.RefreshToken, resp.RefreshToken)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	service, _ := newAuthService(t, testUser(t))

	login, err := service.Login(context.Background(),
		auth.LoginRequest{Username: "ana", Password: "secreto123"},
		auth.SessionTrackingRequest{})
	require.NoError(t, err)

	_, err = service.Refresh(context.Background(),
		auth.RefreshTokenRequest{RefreshToken: login.AccessToken})

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefreshRevokedToken(t *testing.T) {
	service, tokens := newAuthService(t, testUser(t))
	tokens.revokedFn = func(ctx context.Context, token string) (int64, bool, error) {
		return 7, true, nil
	}

	login, err := service.Login(context.Background(),
		auth.LoginRequest{Username: "ana", Password: "secreto123"},
		auth.SessionTrackingRequest{})
	require.NoError(t, err)

	_, err = service.Refresh(context.Background(),
		auth.RefreshTokenRequest{RefreshToken: login.RefreshToken})

	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestRefreshGarbageToken(t *testing.T) {
	service, _ := newAuthService(t, testUser(t))

	_, err := service.Refresh(context.Background(),
		auth.RefreshTokenRequest{RefreshToken: "not-a-jwt"})

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
