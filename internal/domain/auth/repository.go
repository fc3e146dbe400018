package auth

import "context"

type RefreshTokenRepository interface {
	Store(ctx context.Context, token RefreshToken) error
	// GetByHash returns ErrRefreshTokenRevoked for revoked rows and
	// ErrInvalidToken for unknown hashes.
	GetByHash(ctx context.Context, tokenHash string) (RefreshToken, error)
	Revoke(ctx context.Context, tokenHash string) error
	RevokeAllForUser(ctx context.Context, userID string) error
}
