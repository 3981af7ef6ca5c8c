package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var Rdb *redis.Client

// ErrCacheMiss is returned by GetJSON when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

func InitRedis(redisAddress string, redisUsername string, redisPassword string) {
	Rdb = redis.NewClient(&redis.Options{
		Addr:     redisAddress,
		Username: redisUsername,
		Password: redisPassword,
		DB:       0,
	})
}

// SetJSON stores value as JSON under key. Cache writes are best effort: a
// failed write is logged, not returned, so a dead redis never fails a page.
func SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) {
	payload, err := json.Marshal(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to marshal cache value")
		return
	}
	if err := Rdb.Set(ctx, key, payload, expiration).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to write cache")
	}
}

// GetJSON loads key into out; ErrCacheMiss when absent.
func GetJSON(ctx context.Context, key string, out interface{}) error {
	payload, err := Rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(payload, out)
}

// SetString stores a short-lived plain string (pairing codes).
func SetString(ctx context.Context, key, value string, expiration time.Duration) error {
	return Rdb.Set(ctx, key, value, expiration).Err()
}

// GetString fetches a plain string; ErrCacheMiss when absent.
func GetString(ctx context.Context, key string) (string, error) {
	v, err := Rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	return v, err
}

// Delete removes a key, ignoring errors (used to consume pairing codes).
func Delete(ctx context.Context, key string) {
	if err := Rdb.Del(ctx, key).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to delete cache key")
	}
}
