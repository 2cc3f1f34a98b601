package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/accounts-api/internal/domain/repository"
	"github.com/redis/go-redis/v9"
)

var _ repository.TokenDenylist = (*Denylist)(nil)

const keyPrefix = "revoked_token:"

// Denylist guarda cada jti revocado con TTL hasta la expiración del token.
type Denylist struct {
	client *redis.Client
	now    func() time.Time
}

// NewDenylist construye la denylist sobre el cliente.
func NewDenylist(client *redis.Client) *Denylist {
	return &Denylist{client: client, now: time.Now}
}

func (d *Denylist) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(d.now())
	if expiresAt.IsZero() {
		ttl = 0 // sin expiración conocida: persiste
	} else if ttl <= 0 {
		return nil
	}
	if err := d.client.Set(ctx, keyPrefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (d *Denylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := d.client.Get(ctx, keyPrefix+tokenID).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check token: %w", err)
	}
	return true, nil
}
