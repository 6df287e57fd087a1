package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenBlacklist remembers revoked token ids until the tokens would have expired anyway.
type TokenBlacklist interface {
	Revoke(ctx context.Context, claims *Claims) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type RedisTokenBlacklist struct {
	Client *redis.Client
	now    func() time.Time
}

// NewTokenBlacklist connects to redisURL and pings it.
func NewTokenBlacklist(ctx context.Context, redisURL string) (*RedisTokenBlacklist, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return &RedisTokenBlacklist{Client: client, now: time.Now}, nil
}

func blacklistKey(tokenID string) string {
	return "blacklist:" + tokenID
}

func (tb *RedisTokenBlacklist) Revoke(ctx context.Context, claims *Claims) error {
	ttl := 24 * time.Hour
	if claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Sub(tb.now())
	}
	if ttl <= 0 {
		return nil
	}

	if err := tb.Client.Set(ctx, blacklistKey(claims.ID), string(claims.Type), ttl).Err(); err != nil {
		return fmt.Errorf("failed to blacklist %s token: %w", claims.Type, err)
	}
	return nil
}

func (tb *RedisTokenBlacklist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := tb.Client.Exists(ctx, blacklistKey(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("check token blacklist: %w", err)
	}
	return n > 0, nil
}

func (tb *RedisTokenBlacklist) Close() error {
	return tb.Client.Close()
}
