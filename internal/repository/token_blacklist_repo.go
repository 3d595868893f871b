package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const blacklistKeyPrefix = "token:blacklist:"

// TokenBlacklistRepository stores revoked token hashes in Redis until the
// token would have expired anyway. Only SHA-256 hashes are stored, never raw
// tokens.
type TokenBlacklistRepository struct {
	client *redis.Client
}

func NewTokenBlacklistRepository(client *redis.Client) *TokenBlacklistRepository {
	return &TokenBlacklistRepository{client: client}
}

// Add revokes a token hash for the given remaining lifetime.
func (r *TokenBlacklistRepository) Add(ctx context.Context, tokenHash string, ttl time.Duration) error {
	if ttl <= 0 {
		// Already expired, nothing to revoke.
		return nil
	}
	return r.client.Set(ctx, blacklistKeyPrefix+tokenHash, 1, ttl).Err()
}

// Contains reports whether a token hash has been revoked.
func (r *TokenBlacklistRepository) Contains(ctx context.Context, tokenHash string) (bool, error) {
	n, err := r.client.Exists(ctx, blacklistKeyPrefix+tokenHash).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
