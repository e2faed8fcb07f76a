package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pawcare/vetmarket/internal/infrastructure/config"
)

// Redis only backs the password-reset codes, so connection problems should
// surface fast rather than eat into the startup budget.
const (
	dialTimeout = 3 * time.Second
	pingTimeout = 3 * time.Second
)

// Connect opens the client backing the reset-code store and verifies the
// server answers before the auth flow is wired onto it.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		DB:          cfg.DB,
		DialTimeout: dialTimeout,
	})

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis at %s: %w", cfg.Addr, err)
	}

	return client, nil
}
