package cache

import (
	"testing"

	"github.com/google/uuid"
)

func TestTaskListKey(t *testing.T) {
	t.Parallel()

	ownerID := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	key := TaskListKey(ownerID)
	if key != "tasks:6ba7b810-9dad-11d1-80b4-00c04fd430c8" {
		t.Errorf("unexpected key %q", key)
	}

	// Deterministic: same owner always yields the same key
	if TaskListKey(ownerID) != key {
		t.Error("expected key to be deterministic")
	}

	// Different owners never collide
	if TaskListKey(uuid.New()) == key {
		t.Error("expected distinct owners to yield distinct keys")
	}
}

func TestAdminTaskListKey(t *testing.T) {
	t.Parallel()

	if AdminTaskListKey() != "tasks:__all__" {
		t.Errorf("unexpected admin key %q", AdminTaskListKey())
	}

	// The admin scope can never collide with a user scope: user keys embed
	// a UUID and "__all__" is not one.
	if _, err := uuid.Parse("__all__"); err == nil {
		t.Error("admin scope unexpectedly parses as a UUID")
	}
}
