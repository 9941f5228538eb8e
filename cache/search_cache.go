package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"AuraFM/logger"
	"AuraFM/model"

	"github.com/redis/go-redis/v9"
)

const searchKeyPrefix = "search:"

// SearchKey derives a stable cache key from the query and limit. The key is a
// SHA-1 of the canonical JSON encoding, so equivalent requests collide and
// different slider combinations never do.
func SearchKey(q model.SearchQuery, limit int) string {
	payload, _ := json.Marshal(struct {
		Query model.SearchQuery `json:"query"`
		Limit int               `json:"limit"`
	}{q, limit})
	sum := sha1.Sum(payload)
	return searchKeyPrefix + hex.EncodeToString(sum[:])
}

// GetJSON loads a cached value into dest. Returns false on miss, on a nil
// client, or on a corrupt entry (which is deleted).
func GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if RedisClient == nil {
		return false
	}
	data, err := RedisClient.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("cache get failed", logger.String("key", key), logger.ErrorField(err))
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		logger.Warn("cache entry corrupt, dropping", logger.String("key", key))
		RedisClient.Del(ctx, key)
		return false
	}
	return true
}

// SetJSON stores a value with a TTL. Failures are logged and swallowed — the
// cache is an optimization, never a dependency.
func SetJSON(ctx context.Context, key string, val interface{}, ttl time.Duration) {
	if RedisClient == nil {
		return
	}
	data, err := json.Marshal(val)
	if err != nil {
		logger.Warn("cache marshal failed", logger.ErrorField(err))
		return
	}
	if err := RedisClient.Set(ctx, key, data, ttl).Err(); err != nil {
		logger.Warn("cache set failed", logger.String("key", key), logger.ErrorField(err))
	}
}

// FlushSearch drops every cached search result. Called when the library
// snapshot is replaced, since old rankings no longer reflect the library.
func FlushSearch(ctx context.Context) error {
	if RedisClient == nil {
		return nil
	}
	iter := RedisClient.Scan(ctx, 0, searchKeyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan search keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := RedisClient.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("delete search keys: %w", err)
	}
	logger.Debug("search cache flushed", logger.Int("keys", len(keys)))
	return nil
}
