package usecase

import (
	"context"

	"github.com/google/uuid"

	"tasktrack/internal/domain/entity"
)

// CreateTaskInput defines the data required to create a task.
type CreateTaskInput struct {
	Title       string
	Description string
}

// EditTaskInput replaces a task's title and description.
type EditTaskInput struct {
	Title       string
	Description string
}

// TaskUsecase defines per-owner task operations. Every method is scoped to
// the caller; a task owned by someone else is indistinguishable from a
// missing one.
type TaskUsecase interface {
	CreateTask(ctx context.Context, ownerID uuid.UUID, input CreateTaskInput) (*entity.Task, error)
	EditTask(ctx context.Context, ownerID uuid.UUID, taskID string, input EditTaskInput) (*entity.Task, error)
	UpdateStatus(ctx context.Context, ownerID uuid.UUID, taskID string, status entity.TaskStatus) (*entity.Task, error)
	DeleteTask(ctx context.Context, ownerID uuid.UUID, taskID string) error
	ListTasks(ctx context.Context, filter entity.TaskFilter) ([]*entity.Task, error)
	GroupTasksByStatus(ctx context.Context, ownerID uuid.UUID, search string) (*entity.GroupedTasks, error)
}
