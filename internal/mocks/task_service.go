package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/biswa069/backend-intern-task/internal/domain"
	"github.com/biswa069/backend-intern-task/internal/service"
	"github.com/biswa069/backend-intern-task/internal/service/auth"
)

// MockTaskService implements service.TaskService for testing
type MockTaskService struct {
	// Function fields for customizable behavior
	CreateFn       func(ctx context.Context, identity auth.Identity, title, description string) (*domain.Task, error)
	ListFn         func(ctx context.Context, identity auth.Identity) ([]*domain.Task, service.ListSource, error)
	UpdateStatusFn func(ctx context.Context, identity auth.Identity, taskID uuid.UUID, status domain.TaskStatus) (*domain.Task, error)
	DeleteFn       func(ctx context.Context, identity auth.Identity, taskID uuid.UUID) error

	// Defaults returned when the function fields are nil
	Task   *domain.Task
	Tasks  []*domain.Task
	Source service.ListSource
	Err    error
}

// Ensure MockTaskService implements service.TaskService interface
var _ service.TaskService = (*MockTaskService)(nil)

// Create implements the service.TaskService interface
func (m *MockTaskService) Create(
	ctx context.Context,
	identity auth.Identity,
	title, description string,
) (*domain.Task, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, identity, title, description)
	}
	return m.Task, m.Err
}

// List implements the service.TaskService interface
func (m *MockTaskService) List(
	ctx context.Context,
	identity auth.Identity,
) ([]*domain.Task, service.ListSource, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, identity)
	}
	return m.Tasks, m.Source, m.Err
}

// UpdateStatus implements the service.TaskService interface
func (m *MockTaskService) UpdateStatus(
	ctx context.Context,
	identity auth.Identity,
	taskID uuid.UUID,
	status domain.TaskStatus,
) (*domain.Task, error) {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, identity, taskID, status)
	}
	return m.Task, m.Err
}

// Delete implements the service.TaskService interface
func (m *MockTaskService) Delete(
	ctx context.Context,
	identity auth.Identity,
	taskID uuid.UUID,
) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, identity, taskID)
	}
	return m.Err
}
