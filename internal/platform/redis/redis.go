// Package redis implements the cache.Provider interface on top of a Redis
// server using the go-redis client.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/biswa069/backend-intern-task/internal/cache"
)

// ErrNilClient is returned when constructing a provider without a client.
var ErrNilClient = errors.New("redis provider: nil client")

// Provider is a Redis-backed cache.Provider.
type Provider struct {
	rdb goredis.UniversalClient
}

// Ensure Provider implements the cache.Provider interface
var _ cache.Provider = (*Provider)(nil)

// New creates a Provider around an existing Redis client. The provider owns
// the client and closes it on Close.
func New(client goredis.UniversalClient) (*Provider, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	return &Provider{rdb: client}, nil
}

// NewFromURL creates a Provider by dialing the Redis instance at the given
// URL (e.g. redis://localhost:6379/0) and verifying the connection.
func NewFromURL(ctx context.Context, url string) (*Provider, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis provider: invalid URL: %w", err)
	}

	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis provider: ping failed: %w", err)
	}

	return &Provider{rdb: client}, nil
}

// Get implements cache.Provider.Get. A redis.Nil reply is a miss, not an
// error; transport and server errors are returned for the caller to handle.
func (p *Provider) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := p.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil // miss
	}
	if err != nil {
		return nil, false, err // transport/server error
	}
	return b, true, nil
}

// Set implements cache.Provider.Set. Non-positive TTLs are stored without
// expiry per the provider contract.
func (p *Provider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = 0
	}
	return p.rdb.Set(ctx, key, value, ttl).Err()
}

// Del implements cache.Provider.Del. Redis DEL on a missing key succeeds
// with a zero count, so idempotence comes for free.
func (p *Provider) Del(ctx context.Context, key string) error {
	return p.rdb.Del(ctx, key).Err()
}

// Close releases the underlying Redis client.
// Safe to call multiple times; repeated calls become no-ops.
func (p *Provider) Close() error {
	if err := p.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
		return err
	}
	return nil
}
