package repository

import (
	"context"
	"time"
)

// TokenDenylist registra tokens revocados (logout) hasta su expiración natural.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
