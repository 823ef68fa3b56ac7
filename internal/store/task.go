package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/biswa069/backend-intern-task/internal/domain"
)

// TaskFilter restricts a task listing to a visibility scope.
// A nil OwnerID means no owner restriction (the admin's global scope).
type TaskFilter struct {
	OwnerID *uuid.UUID
}

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task to the store.
	// Returns ErrInvalidEntity if the owner does not exist.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// List returns tasks matching the filter, newest first. The ordering is
	// deterministic (created_at, then id, both descending) so that repeated
	// queries over the same data serialize identically.
	List(ctx context.Context, filter TaskFilter) ([]*domain.Task, error)

	// UpdateStatus persists a status change and returns the updated task.
	// Returns ErrTaskNotFound if the task does not exist.
	// Concurrent updates are last-write-wins; no optimistic concurrency check.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TaskStatus) (*domain.Task, error)

	// Delete removes a task from the store by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
