// Package redis denylist de tokens revocados sobre Redis.
package redis

import (
	"context"
	"fmt"

	"github.com/jhoicas/accounts-api/pkg/config"
	"github.com/redis/go-redis/v9"
)

// NewClient crea el cliente y comprueba la conexión.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}
