package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Blacklist keeps revoked JWTs in redis until their natural expiry, so logout
// actually invalidates the token instead of relying on the client to drop it.
type Blacklist struct {
	client *redis.Client
}

func NewBlacklist(addr string) (*Blacklist, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return &Blacklist{client: client}, nil
}

// Revoke marks the token as unusable until its expiry. Tokens already past
// expiry need no entry.
func (b *Blacklist) Revoke(ctx context.Context, token string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return b.client.Set(ctx, tokenKey(token), "revoked", ttl).Err()
}

func (b *Blacklist) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := b.client.Exists(ctx, tokenKey(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Only a hash of the token is stored as the key.
func tokenKey(token string) string {
	h := sha256.Sum256([]byte(token))
	return "revoked:" + hex.EncodeToString(h[:])
}
