package auth

import (
	"context"
)

// AuthService defines authentication business logic
type AuthService interface {
	// Login verifies the credentials and issues an access/refresh token pair
	Login(ctx context.Context, loginReq LoginRequest, sessionReq SessionTrackingRequest) (TokenResponse, error)

	// Refresh exchanges a valid refresh token for a new access token
	Refresh(ctx context.Context, req RefreshTokenRequest) (TokenResponse, error)

	// Logout revokes the refresh token
	Logout(ctx context.Context, req RefreshTokenRequest) error
}
