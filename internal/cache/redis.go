package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	listingPrefix = "jobs:list"
	versionKey    = listingPrefix + ":version"
)

// ListingCache stores rendered public job listing pages in Redis. Entries are
// namespaced by a version counter so a single INCR invalidates every page.
type ListingCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewListingCache(address, password string, db int, ttl time.Duration) (*ListingCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	slog.Info("listing cache connected", "address", address, "ttl", ttl)
	return &ListingCache{client: client, ttl: ttl}, nil
}

func (c *ListingCache) version(ctx context.Context) (int64, error) {
	v, err := c.client.Get(ctx, versionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

func (c *ListingCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := c.version(ctx)
	if err != nil {
		return nil, false, err
	}
	raw, err := c.client.Get(ctx, entryKey(v, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

func (c *ListingCache) Set(ctx context.Context, key string, value []byte) error {
	v, err := c.version(ctx)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, entryKey(v, key), value, c.ttl).Err()
}

// Invalidate bumps the namespace version. Old pages expire on their own.
func (c *ListingCache) Invalidate(ctx context.Context) error {
	return c.client.Incr(ctx, versionKey).Err()
}

func (c *ListingCache) Close() error {
	return c.client.Close()
}

func entryKey(version int64, key string) string {
	sum := sha1.Sum([]byte(key))
	return fmt.Sprintf("%s:v%d:%s", listingPrefix, version, hex.EncodeToString(sum[:]))
}

// Noop is used when no Redis address is configured.
type Noop struct{}

func (Noop) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (Noop) Set(context.Context, string, []byte) error         { return nil }
func (Noop) Invalidate(context.Context) error                  { return nil }
