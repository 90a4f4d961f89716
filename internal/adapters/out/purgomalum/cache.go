package purgomalum

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"kitchenpos/internal/core/ports"
	"kitchenpos/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "profanity:"

var _ ports.ProfanityClient = (*CachedClient)(nil)

// CachedClient remembers verdicts of the wrapped client in Redis. Redis failures are
// logged and the wrapped client is asked directly; errors of the wrapped client are
// never cached.
type CachedClient struct {
	next   ports.ProfanityClient
	redis  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedClient(
	next ports.ProfanityClient,
	client *redis.Client,
	ttl time.Duration,
	logger *zap.Logger,
) (*CachedClient, error) {
	if next == nil {
		return nil, errs.NewValueIsRequiredError("next")
	}
	if client == nil {
		return nil, errs.NewValueIsRequiredError("redis")
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("ttl", ttl, "1ns", "unbounded")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedClient{next: next, redis: client, ttl: ttl, logger: logger}, nil
}

func (c *CachedClient) ContainsProfanity(ctx context.Context, text string) (bool, error) {
	key := cacheKey(text)

	cached, err := c.redis.Get(ctx, key).Result()
	switch {
	case err == nil:
		return cached == "1", nil
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("profanity cache read failed", zap.String("key", key), zap.Error(err))
	}

	profane, err := c.next.ContainsProfanity(ctx, text)
	if err != nil {
		return false, err
	}

	value := "0"
	if profane {
		value = "1"
	}
	if err = c.redis.Set(ctx, key, value, c.ttl).Err(); err != nil {
		c.logger.Warn("profanity cache write failed", zap.String("key", key), zap.Error(err))
	}
	return profane, nil
}

func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return keyPrefix + hex.EncodeToString(sum[:])
}
