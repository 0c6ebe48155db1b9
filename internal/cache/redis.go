// Package cache memoizes derived results in Redis, keyed by a sha256 of
// the source arrays and filter parameters. Because the engine is pure and
// deterministic, a key collision-free hash of the inputs fully identifies
// the output; no invalidation logic is needed beyond TTL.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// Init initializes the Redis connection. The cache is optional: on failure
// the client stays nil and every lookup degrades to a miss.
func Init() error {
	// K8s sets REDIS_SERVICE_HOST and REDIS_SERVICE_PORT for services
	host := os.Getenv("REDIS_SERVICE_HOST")
	if host == "" {
		host = "redis" // fallback to service name
	}
	port := os.Getenv("REDIS_SERVICE_PORT")
	if port == "" {
		port = "6379"
	}

	client = redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		client = nil
		return err
	}
	return nil
}

// Enabled reports whether a Redis connection is live.
func Enabled() bool {
	return client != nil
}

// Key builds a content-addressed cache key: a namespace plus the sha256 of
// every part, hashed in order. Parts are JSON-marshaled so struct inputs
// (filters, source arrays) hash deterministically.
func Key(namespace string, parts ...interface{}) string {
	h := sha256.New()
	for _, p := range parts {
		b, err := json.Marshal(p)
		if err != nil {
			continue
		}
		h.Write(b)
		h.Write([]byte{0})
	}
	return namespace + ":" + hex.EncodeToString(h.Sum(nil))[:40]
}

// GetJSON looks up a key and unmarshals it into out. Returns false on miss,
// unreachable Redis, or decode failure.
func GetJSON(ctx context.Context, key string, out interface{}) bool {
	if client == nil {
		return false
	}
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false
	}
	return true
}

// SetJSON stores a value under key with the given TTL. Failures are
// swallowed; the cache never affects correctness.
func SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if client == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	client.Set(ctx, key, data, ttl)
}
