package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/biswa069/backend-intern-task/internal/cache"
)

// MockCache implements cache.Provider for testing with an in-memory map.
// TTLs are recorded but not enforced; tests drive expiry by deleting keys.
// Error fields let tests simulate an unavailable cache on any operation.
type MockCache struct {
	// Errors injected into the default implementation
	GetError error
	SetError error
	DelError error

	// Call recording for verification
	GetCalls []string
	SetCalls []string
	DelCalls []string

	mu      sync.Mutex
	entries map[string][]byte
	ttls    map[string]time.Duration
}

// Ensure MockCache implements cache.Provider interface
var _ cache.Provider = (*MockCache)(nil)

// NewMockCache creates a new mock cache with initialized defaults
func NewMockCache() *MockCache {
	return &MockCache{
		entries: make(map[string][]byte),
		ttls:    make(map[string]time.Duration),
	}
}

// Get implements the cache.Provider interface
func (m *MockCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.GetCalls = append(m.GetCalls, key)
	if m.GetError != nil {
		return nil, false, m.GetError
	}

	value, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}
	return value, true, nil
}

// Set implements the cache.Provider interface
func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SetCalls = append(m.SetCalls, key)
	if m.SetError != nil {
		return m.SetError
	}

	m.entries[key] = value
	m.ttls[key] = ttl
	return nil
}

// Del implements the cache.Provider interface
func (m *MockCache) Del(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.DelCalls = append(m.DelCalls, key)
	if m.DelError != nil {
		return m.DelError
	}

	delete(m.entries, key)
	delete(m.ttls, key)
	return nil
}

// Close implements the cache.Provider interface
func (m *MockCache) Close() error {
	return nil
}

// Contains reports whether the cache currently holds the given key.
func (m *MockCache) Contains(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.entries[key]
	return ok
}

// Value returns the bytes stored under key, or nil when absent.
func (m *MockCache) Value(key string) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries[key]
}

// TTL returns the TTL recorded for key on its last Set.
func (m *MockCache) TTL(key string) time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ttls[key]
}
