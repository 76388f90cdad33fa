package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenDenylist records revoked access-token identifiers (jti claims) in
// Redis.  An entry only needs to outlive the token it revokes, so every
// key carries a TTL equal to the token's remaining lifetime.  A nil Redis
// client disables revocation: tokens then simply expire on their own.
type TokenDenylist struct{ RDB *redis.Client }

func NewTokenDenylist(rdb *redis.Client) *TokenDenylist { return &TokenDenylist{RDB: rdb} }

func (d *TokenDenylist) key(jti string) string { return "denylist:" + jti }

// Revoke marks a token id as revoked until its natural expiry.
func (d *TokenDenylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if d == nil || d.RDB == nil || jti == "" {
		return nil
	}
	if ttl <= 0 {
		return nil // already expired, nothing to deny
	}
	return d.RDB.Set(ctx, d.key(jti), "1", ttl).Err()
}

// IsRevoked reports whether a token id has been revoked.  Lookup failures
// are swallowed: an unreachable Redis must not lock every caller out.
func (d *TokenDenylist) IsRevoked(ctx context.Context, jti string) bool {
	if d == nil || d.RDB == nil || jti == "" {
		return false
	}
	n, err := d.RDB.Exists(ctx, d.key(jti)).Result()
	if err != nil {
		return false
	}
	return n > 0
}
