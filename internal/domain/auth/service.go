package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	// RefreshTokens exchanges a valid refresh token for a new pair.
	RefreshTokens(ctx context.Context, refreshToken string) (LoginResponse, error)
}
