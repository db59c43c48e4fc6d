package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/indra-asistencia/asistencia-backend-go/internal/domain/auth"
	"github.com/indra-asistencia/asistencia-backend-go/internal/domain/user"
	"github.com/indra-asistencia/asistencia-backend-go/internal/pkg/database"
	"github.com/indra-asistencia/asistencia-backend-go/internal/pkg/jwt"
	"github.com/indra-asistencia/asistencia-backend-go/internal/repository/postgresql"
)

type AuthServiceImpl struct {
	tx            database.TxRunner
	users         user.UserRepository
	jwtService    jwt.Service
	refreshTokens postgresql.JWTRepository
}

func NewAuthService(
	tx database.TxRunner,
	userRepository user.UserRepository,
	jwtService jwt.Service,
	jwtRepository postgresql.JWTRepository,
) auth.AuthService {
	return &AuthServiceImpl{
		tx:            tx,
		users:         userRepository,
		jwtService:    jwtService,
		refreshTokens: jwtRepository,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := loginReq.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.users.GetByUsername(ctx, loginReq.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(loginReq.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if !userData.Enabled {
		return auth.TokenResponse{}, user.ErrUserDisabled
	}

	var tokenResponse auth.TokenResponse
	err = a.tx.RunInTx(ctx, func(txCtx context.Context) error {
		tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.jwtService.GenerateAccessToken(userData.ID, userData.Username, userData.Role)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.jwtService.GenerateRefreshToken(userData.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		if err := a.refreshTokens.CreateRefreshToken(txCtx, userData.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, sessionReq); err != nil {
			return fmt.Errorf("failed to save refresh token to database: %w", err)
		}

		if err := a.users.TouchLastAccess(txCtx, userData.ID); err != nil {
			return fmt.Errorf("failed to update last access: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}

// Refresh implements auth.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, req auth.RefreshTokenRequest) (auth.TokenResponse, error) {
	token, err := jwtauth.VerifyToken(a.jwtService.JWTAuth(), req.RefreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "refresh" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	userID, isRevoked, err := a.refreshTokens.IsRefreshTokenRevoked(ctx, req.RefreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if isRevoked {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	userData, err := a.users.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if !userData.Enabled {
		return auth.TokenResponse{}, user.ErrUserDisabled
	}

	// The refresh token is not rotated; the caller keeps the one it sent.
	tokenResponse := auth.TokenResponse{RefreshToken: req.RefreshToken}
	if exp, ok := claims["exp"].(time.Time); ok {
		tokenResponse.RefreshTokenExpiresIn = exp.Unix()
	}

	tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.jwtService.GenerateAccessToken(userData.ID, userData.Username, userData.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return tokenResponse, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, req auth.RefreshTokenRequest) error {
	return a.tx.RunInTx(ctx, func(txCtx context.Context) error {
		_, isRevoked, err := a.refreshTokens.IsRefreshTokenRevoked(txCtx, req.RefreshToken)
		if err != nil {
			return fmt.Errorf("failed to check if refresh token is revoked: %w", err)
		}
		if !isRevoked {
			if err := a.refreshTokens.RevokeRefreshToken(txCtx, req.RefreshToken); err != nil {
				return fmt.Errorf("failed to revoke refresh token: %w", err)
			}
		}
		return nil
	})
}
