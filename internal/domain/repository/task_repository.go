package repository

import (
	"context"
	"errors"

	"tasktrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTaskNotFound is returned when no task matches both the id and the owner.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository persists tasks. Every lookup is scoped to an owner.
type TaskRepository interface {
	// Create persists a new task and fills in its generated ID and timestamps.
	Create(ctx context.Context, task *entity.Task) error

	// FindByTitle returns the owner's task with exactly this title.
	FindByTitle(ctx context.Context, userID uuid.UUID, title string) (*entity.Task, error)

	// FindByID returns the task only if it belongs to userID.
	FindByID(ctx context.Context, userID, taskID uuid.UUID) (*entity.Task, error)

	// Update saves title, description and status of an existing task.
	Update(ctx context.Context, task *entity.Task) error

	// Delete removes the owner's task; ErrTaskNotFound when nothing was deleted.
	Delete(ctx context.Context, userID, taskID uuid.UUID) error

	// List returns the owner's tasks filtered by a case-insensitive literal
	// search over title and description, ordered by creation time.
	List(ctx context.Context, filter entity.TaskFilter) ([]*entity.Task, error)
}
