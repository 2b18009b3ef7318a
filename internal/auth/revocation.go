package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "jwt:revoked:"

// RevocationStore is the part of a Redis client the revocation list needs.
type RevocationStore interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
}

// RevocationList remembers logged-out token ids until the tokens would have
// expired anyway.
type RevocationList struct {
	store RevocationStore
	now   func() time.Time
}

func NewRevocationList(store RevocationStore) *RevocationList {
	return &RevocationList{store: store, now: time.Now}
}

func (r *RevocationList) Revoke(ctx context.Context, claims *Claims) error {
	ttl := time.Minute
	if claims.ExpiresAt != nil {
		if left := claims.ExpiresAt.Time.Sub(r.now()); left > 0 {
			ttl = left
		}
	}
	return r.store.Set(ctx, revokedKeyPrefix+claims.ID, 1, ttl).Err()
}

func (r *RevocationList) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.store.Exists(ctx, revokedKeyPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
