package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmaraujo/gymkeeper/internal/logger"
)

const denylistKeyPrefix = "denylist:"

// redisDenylist stores revoked token ids in Redis, keyed by jti with a TTL
// equal to the token's remaining lifetime so entries expire on their own.
type redisDenylist struct {
	logger *logger.Logger
	client *redis.Client
}

// NewRedisDenylist connects to Redis and returns a [TokenDenylist] backed by
// it. The connection is verified with a PING before use.
func NewRedisDenylist(ctx context.Context, addr string, password string, database int, logger *logger.Logger) (TokenDenylist, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       database,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	logger.Debug().Str("addr", addr).Msg("token denylist connected")
	return &redisDenylist{
		client: client,
		logger: logger,
	}, nil
}

func (d *redisDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		// Already expired; nothing to record.
		return nil
	}

	if err := d.client.Set(ctx, denylistKeyPrefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoking token: %w", err)
	}

	return nil
}

func (d *redisDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := d.client.Get(ctx, denylistKeyPrefix+tokenID).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking token revocation: %w", err)
	}

	return true, nil
}

// noopDenylist is used when no Redis address is configured. Tokens stay
// valid until expiry and logout only discards the client-side copy.
type noopDenylist struct{}

// NewNoopDenylist returns a [TokenDenylist] that never revokes anything.
func NewNoopDenylist() TokenDenylist {
	return noopDenylist{}
}

func (noopDenylist) Revoke(context.Context, string, time.Duration) error { return nil }

func (noopDenylist) IsRevoked(context.Context, string) (bool, error) { return false, nil }
