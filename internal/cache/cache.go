// Package cache defines the key-value cache abstraction used to accelerate
// task-list reads, plus the cache key construction rules. The cache is never
// authoritative: every caller must treat a miss, an expired entry, or an
// unavailable cache identically, by falling through to the record store.
package cache

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Key prefixes and fixed keys are kept in one place so the read and
// invalidation paths cannot drift apart.
const (
	taskListPrefix = "tasks:"

	// adminScope is the shared scope for the global task list seen by
	// admins. All admins share one entry; a per-admin key would let every
	// admin recompute and separately cache the same list.
	adminScope = "__all__"
)

// TaskListKey returns the cache key holding the serialized task list
// visible to the given owner.
func TaskListKey(ownerID uuid.UUID) string {
	return taskListPrefix + ownerID.String()
}

// AdminTaskListKey returns the cache key holding the serialized global
// task list (admin visibility scope).
func AdminTaskListKey() string {
	return taskListPrefix + adminScope
}

// Provider is a minimal byte store with per-key TTLs. Implementations must
// be safe for concurrent use and byte-for-byte transparent: Get must return
// exactly the []byte previously passed to Set for the same key.
type Provider interface {
	// Get returns (value, true, nil) on hit and (nil, false, nil) on miss.
	// If an IO/remote error happens, it returns (nil, false, err); callers
	// decide whether to fail open.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value with the given TTL, overwriting unconditionally.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Del removes a key. Deleting a key that does not exist is not an error.
	Del(ctx context.Context, key string) error

	// Close releases resources.
	Close() error
}
