package redisrepo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Get fetches key and unmarshals it into T. A missing key surfaces as
// redis.Nil, which callers treat as a cache miss.
func Get[T any](rdb *redis.Client, ctx context.Context, key string) (*T, error) {
	b, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, err
	}

	var value T
	if err := json.Unmarshal(b, &value); err != nil {
		return nil, err
	}
	return &value, nil
}

// SetJSON marshals value and stores it under key with the given TTL.
func SetJSON(rdb *redis.Client, ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, key, b, ttl).Err()
}

// Delete removes the given keys.
func Delete(rdb *redis.Client, ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return rdb.Del(ctx, keys...).Err()
}

// DeleteByPattern removes every key matching pattern via SCAN, used for the
// coarse invalidate-all-lists policy on writes.
func DeleteByPattern(rdb *redis.Client, ctx context.Context, pattern string) error {
	iter := rdb.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
