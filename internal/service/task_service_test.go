package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biswa069/backend-intern-task/internal/cache"
	"github.com/biswa069/backend-intern-task/internal/domain"
	"github.com/biswa069/backend-intern-task/internal/mocks"
	"github.com/biswa069/backend-intern-task/internal/service"
	"github.com/biswa069/backend-intern-task/internal/service/auth"
	"github.com/biswa069/backend-intern-task/internal/store"
)

const testTTL = time.Hour

func userIdentity() auth.Identity {
	return auth.Identity{UserID: uuid.New(), Role: domain.RoleUser}
}

func adminIdentity() auth.Identity {
	return auth.Identity{UserID: uuid.New(), Role: domain.RoleAdmin}
}

func newService(
	tasks *mocks.MockTaskStore,
	cacheMock *mocks.MockCache,
) service.TaskService {
	return service.NewTaskService(tasks, cacheMock, testTTL, nil)
}

func mustCreate(
	t *testing.T,
	svc service.TaskService,
	identity auth.Identity,
	title string,
) *domain.Task {
	t.Helper()
	task, err := svc.Create(context.Background(), identity, title, "")
	require.NoError(t, err)
	return task
}

func TestCreateTask(t *testing.T) {
	t.Parallel()

	tasks := mocks.NewMockTaskStore()
	cacheMock := mocks.NewMockCache()
	svc := newService(tasks, cacheMock)
	identity := userIdentity()

	task, err := svc.Create(context.Background(), identity, "Buy milk", "2 liters")
	require.NoError(t, err)

	assert.Equal(t, identity.UserID, task.UserID)
	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, domain.TaskStatusPending, task.Status)

	stored, err := tasks.GetByID(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, stored.ID)
}

func TestCreateTaskEmptyTitle(t *testing.T) {
	t.Parallel()

	svc := newService(mocks.NewMockTaskStore(), mocks.NewMockCache())

	for _, title := range []string{"", "   "} {
		_, err := svc.Create(context.Background(), userIdentity(), title, "")
		assert.ErrorIs(t, err, service.ErrInvalidInput)
	}
}

func TestListColdCacheReportsDatabase(t *testing.T) {
	t.Parallel()

	tasks := mocks.NewMockTaskStore()
	cacheMock := mocks.NewMockCache()
	svc := newService(tasks, cacheMock)
	identity := userIdentity()

	created := mustCreate(t, svc, identity, "Buy milk")

	listed, source, err := svc.List(context.Background(), identity)
	require.NoError(t, err)

	assert.Equal(t, service.SourceDatabase, source)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)

	// The read-through populated the caller's scope with the fixed TTL
	key := cache.TaskListKey(identity.UserID)
	assert.True(t, cacheMock.Contains(key))
	assert.Equal(t, testTTL, cacheMock.TTL(key))
}

func TestListWarmCacheReportsCacheAndIdenticalContent(t *testing.T) {
	t.Parallel()

	tasks := mocks.NewMockTaskStore()
	cacheMock := mocks.NewMockCache()
	svc := newService(tasks, cacheMock)
	identity := userIdentity()

	mustCreate(t, svc, identity, "Buy milk")
	mustCreate(t, svc, identity, "Walk dog")

	first, firstSource, err := svc.List(context.Background(), identity)
	require.NoError(t, err)
	require.Equal(t, service.SourceDatabase, firstSource)

	storeQueries := tasks.ListCallCount

	second, secondSource, err := svc.List(context.Background(), identity)
	require.NoError(t, err)

	assert.Equal(t, service.SourceCache, secondSource)
	assert.Equal(t, storeQueries, tasks.ListCallCount, "cache hit must not query the store")

	// Byte-identical content: same tasks, same order
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Equal(t, first[i].Title, second[i].Title)
		assert.Equal(t, first[i].Status, second[i].Status)
	}
}

func TestListOrderingNewestFirst(t *testing.T) {
	t.Parallel()

	tasks := mocks.NewMockTaskStore()
	cacheMock := mocks.NewMockCache()
	svc := newService(tasks, cacheMock)
	identity := userIdentity()

	now := time.Now().UTC()
	older := &domain.Task{
		ID: uuid.New(), UserID: identity.UserID, Title: "older",
		Status: domain.TaskStatusPending, CreatedAt: now.Add(-time.Hour),
	}
	newer := &domain.Task{
		ID: uuid.New(), UserID: identity.UserID, Title: "newer",
		Status: domain.TaskStatusPending, CreatedAt: now,
	}
	tasks.Seed(older, newer)

	listed, _, err := svc.List(context.Background(), identity)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "newer", listed[0].Title)
	assert.Equal(t, "older", listed[1].Title)
}

func TestListScopesByOwner(t *testing.T) {
	t.Parallel()

	tasks := mocks.NewMockTaskStore()
	cacheMock := mocks.NewMockCache()
	svc := newService(tasks, cacheMock)

	alice := userIdentity()
	bob := userIdentity()
	admin := adminIdentity()

	aliceTask := mustCreate(t, svc, alice, "Alice's task")
	bobTask := mustCreate(t, svc, bob, "Bob's task")

	aliceList, _, err := svc.List(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, aliceList, 1)
	assert.Equal(t, aliceTask.ID, aliceList[0].ID)

	// Admin sees the union of all tasks regardless of owner
	adminList, _, err := svc.List(context.Background(), admin)
	require.NoError(t, err)
	assert.Len(t, adminList, 2)

	ids := []uuid.UUID{adminList[0].ID, adminList[1].ID}
	assert.Contains(t, ids, aliceTask.ID)
	assert.Contains(t, ids, bobTask.ID)
}

func TestAdminListUsesSharedScopeKey(t *testing.T) {
	t.Parallel()

	tasks := mocks.NewMockTaskStore()
	cacheMock := mocks.NewMockCache()
	svc := newService(tasks, cacheMock)

	firstAdmin := adminIdentity()
	secondAdmin := adminIdentity()

	_, source, err := svc.List(context.Background(), firstAdmin)
	require.NoError(t, err)
	require.Equal(t, service.SourceDatabase, source)

	// A different admin hits the same entry: the global scope is cached
	// once, not per admin.
	_, source, err = svc.List(context.Background(), secondAdmin)
	require.NoError(t, err)
	assert.Equal(t, service.SourceCache, source)

	assert.True(t, cacheMock.Contains(cache.AdminTaskListKey()))
	assert.False(t, cacheMock.Contains(cache.TaskListKey(firstAdmin.UserID)))
}

func TestWritesInvalidateOwnerAndAdminScopes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	identity := userIdentity()
	admin := adminIdentity()

	scenarios := []struct {
		name   string
		mutate func(t *testing.T, svc service.TaskService, seeded *domain.Task)
	}{
		{
			name: "create",
			mutate: func(t *testing.T, svc service.TaskService, _ *domain.Task) {
				mustCreate(t, svc, identity, "another")
			},
		},
		{
			name: "update status",
			mutate: func(t *testing.T, svc service.TaskService, seeded *domain.Task) {
				_, err := svc.UpdateStatus(ctx, identity, seeded.ID, domain.TaskStatusCompleted)
				require.NoError(t, err)
			},
		},
		{
			name: "delete",
			mutate: func(t *testing.T, svc service.TaskService, seeded *domain.Task) {
				require.NoError(t, svc.Delete(ctx, identity, seeded.ID))
			},
		},
	}

	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			tasks := mocks.NewMockTaskStore()
			cacheMock := mocks.NewMockCache()
			svc := newService(tasks, cacheMock)

			seeded := mustCreate(t, svc, identity, "seed")

			// Warm both the owner's and the admin's cache entries
			_, _, err := svc.List(ctx, identity)
			require.NoError(t, err)
			_, _, err = svc.List(ctx, admin)
			require.NoError(t, err)
			require.True(t, cacheMock.Contains(cache.TaskListKey(identity.UserID)))
			require.True(t, cacheMock.Contains(cache.AdminTaskListKey()))

			sc.mutate(t, svc, seeded)

			assert.False(t, cacheMock.Contains(cache.TaskListKey(identity.UserID)),
				"owner scope must be evicted")
			assert.False(t, cacheMock.Contains(cache.AdminTaskListKey()),
				"admin scope must be evicted")

			// The next list must come from the store and reflect the mutation
			_, source, err := svc.List(ctx, identity)
			require.NoError(t, err)
			assert.Equal(t, service.SourceDatabase, source)
		})
	}
}

func TestAdminWriteInvalidatesTaskOwnerScope(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tasks := mocks.NewMockTaskStore()
	cacheMock := mocks.NewMockCache()
	svc := newService(tasks, cacheMock)

	owner := userIdentity()
	admin := adminIdentity()

	task := mustCreate(t, svc, owner, "owned by user")

	_, _, err := svc.List(ctx, owner)
	require.NoError(t, err)
	require.True(t, cacheMock.Contains(cache.TaskListKey(owner.UserID)))

	// The admin updates the user's task: the invalidated scope is the
	// task owner's, not the admin's.
	_, err = svc.UpdateStatus(ctx, admin, task.ID, domain.TaskStatusCompleted)
	require.NoError(t, err)

	assert.False(t, cacheMock.Contains(cache.TaskListKey(owner.UserID)))

	listed, source, err := svc.List(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, service.SourceDatabase, source)
	require.Len(t, listed, 1)
	assert.Equal(t, domain.TaskStatusCompleted, listed[0].Status)
}

func TestCreateThenImmediateListIncludesTask(t *testing.T) {
	t.Parallel()

	tasks := mocks.NewMockTaskStore()
	cacheMock := mocks.NewMockCache()
	svc := newService(tasks, cacheMock)
	identity := userIdentity()

	created := mustCreate(t, svc, identity, "Buy milk")

	listed, _, err := svc.List(context.Background(), identity)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)
	assert.Equal(t, domain.TaskStatusPending, listed[0].Status)
}

func TestListFailsOpenOnCacheErrors(t *testing.T) {
	t.Parallel()

	tasks := mocks.NewMockTaskStore()
	cacheMock := mocks.NewMockCache()
	cacheMock.GetError = errors.New("connection refused")
	cacheMock.SetError = errors.New("connection refused")
	svc := newService(tasks, cacheMock)
	identity := userIdentity()

	created := mustCreate(t, svc, identity, "Buy milk")

	// Both Get and Set are failing; the request must still succeed
	listed, source, err := svc.List(context.Background(), identity)
	require.NoError(t, err)
	assert.Equal(t, service.SourceDatabase, source)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)
}

func TestWritesSucceedWhenInvalidationFails(t *testing.T) {
	t.Parallel()

	tasks := mocks.NewMockTaskStore()
	cacheMock := mocks.NewMockCache()
	cacheMock.DelError = errors.New("connection refused")
	svc := newService(tasks, cacheMock)
	identity := userIdentity()

	// A failed invalidation is TTL-bounded staleness, never a request failure
	task, err := svc.Create(context.Background(), identity, "Buy milk", "")
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), identity, task.ID, domain.TaskStatusCompleted)
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(context.Background(), identity, task.ID))
}

func TestListDiscardsCorruptCacheEntry(t *testing.T) {
	t.Parallel()

	tasks := mocks.NewMockTaskStore()
	cacheMock := mocks.NewMockCache()
	svc := newService(tasks, cacheMock)
	identity := userIdentity()

	created := mustCreate(t, svc, identity, "Buy milk")

	key := cache.TaskListKey(identity.UserID)
	require.NoError(t, cacheMock.Set(context.Background(), key, []byte("{not json"), testTTL))

	listed, source, err := svc.List(context.Background(), identity)
	require.NoError(t, err)
	assert.Equal(t, service.SourceDatabase, source)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)
}

func TestUpdateStatusValidation(t *testing.T) {
	t.Parallel()

	tasks := mocks.NewMockTaskStore()
	svc := newService(tasks, mocks.NewMockCache())
	identity := userIdentity()

	task := mustCreate(t, svc, identity, "Buy milk")

	for _, status := range []domain.TaskStatus{"", "done", "in_progress", "PENDING"} {
		_, err := svc.UpdateStatus(context.Background(), identity, task.ID, status)
		assert.ErrorIs(t, err, service.ErrInvalidInput, "status %q", status)
	}
}

func TestUpdateStatusNotFound(t *testing.T) {
	t.Parallel()

	svc := newService(mocks.NewMockTaskStore(), mocks.NewMockCache())

	_, err := svc.UpdateStatus(
		context.Background(), userIdentity(), uuid.New(), domain.TaskStatusCompleted)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	err = svc.Delete(context.Background(), userIdentity(), uuid.New())
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestAuthorizationPolicy(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tasks := mocks.NewMockTaskStore()
	cacheMock := mocks.NewMockCache()
	svc := newService(tasks, cacheMock)

	owner := userIdentity()
	stranger := userIdentity()
	admin := adminIdentity()

	task := mustCreate(t, svc, owner, "Owner's task")

	// A non-owner, non-admin identity can neither update nor delete
	_, err := svc.UpdateStatus(ctx, stranger, task.ID, domain.TaskStatusCompleted)
	assert.ErrorIs(t, err, service.ErrForbidden)
	assert.ErrorIs(t, svc.Delete(ctx, stranger, task.ID), service.ErrForbidden)

	// The owner can update
	updated, err := svc.UpdateStatus(ctx, owner, task.ID, domain.TaskStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusCompleted, updated.Status)

	// An admin can update and delete another user's task
	_, err = svc.UpdateStatus(ctx, admin, task.ID, domain.TaskStatusPending)
	require.NoError(t, err)
	assert.NoError(t, svc.Delete(ctx, admin, task.ID))
}

func TestLifecycleScenario(t *testing.T) {
	t.Parallel()

	// User A creates "Buy milk", lists it (database), completes it, and
	// lists again: the second list must come from the database and show
	// the completed status, never a stale cache hit.
	ctx := context.Background()
	tasks := mocks.NewMockTaskStore()
	cacheMock := mocks.NewMockCache()
	svc := newService(tasks, cacheMock)
	userA := userIdentity()

	created := mustCreate(t, svc, userA, "Buy milk")

	listed, source, err := svc.List(ctx, userA)
	require.NoError(t, err)
	assert.Equal(t, service.SourceDatabase, source)
	require.Len(t, listed, 1)
	assert.Equal(t, "Buy milk", listed[0].Title)
	assert.Equal(t, domain.TaskStatusPending, listed[0].Status)

	_, err = svc.UpdateStatus(ctx, userA, created.ID, domain.TaskStatusCompleted)
	require.NoError(t, err)

	listed, source, err = svc.List(ctx, userA)
	require.NoError(t, err)
	assert.Equal(t, service.SourceDatabase, source)
	require.Len(t, listed, 1)
	assert.Equal(t, domain.TaskStatusCompleted, listed[0].Status)
}

func TestListCachesEmptyScope(t *testing.T) {
	t.Parallel()

	tasks := mocks.NewMockTaskStore()
	cacheMock := mocks.NewMockCache()
	svc := newService(tasks, cacheMock)
	identity := userIdentity()

	listed, source, err := svc.List(context.Background(), identity)
	require.NoError(t, err)
	assert.Equal(t, service.SourceDatabase, source)
	assert.Empty(t, listed)

	// An empty list is cached as [] and hits on the next read
	assert.Equal(t, "[]", string(cacheMock.Value(cache.TaskListKey(identity.UserID))))

	listed, source, err = svc.List(context.Background(), identity)
	require.NoError(t, err)
	assert.Equal(t, service.SourceCache, source)
	assert.Empty(t, listed)
}
