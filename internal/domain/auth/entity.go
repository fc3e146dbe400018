package auth

import "time"

// RefreshToken is a stored refresh-token record. Only the SHA-256 hash of the
// token is persisted; logout revokes by hash.
type RefreshToken struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
}
