package entity

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus is the lifecycle stage of a task.
type TaskStatus string

const (
	TaskStatusCreated    TaskStatus = "CREATED"
	TaskStatusInProgress TaskStatus = "INPROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
)

// IsValid checks if the status is one of the known values.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusCreated, TaskStatusInProgress, TaskStatusCompleted:
		return true
	default:
		return false
	}
}

// Task is a unit of work owned by exactly one user.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	UserID      uuid.UUID  `json:"userId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TaskSort orders task listings by creation time.
type TaskSort string

const (
	TaskSortLatest TaskSort = "latest"
	TaskSortOldest TaskSort = "oldest"
)

// TaskFilter narrows a listing to one owner and an optional search term.
type TaskFilter struct {
	UserID uuid.UUID
	Search string
	Sort   TaskSort
}

// GroupedTasks buckets an owner's tasks by status.
type GroupedTasks struct {
	Created    []*Task `json:"created"`
	InProgress []*Task `json:"inprogress"`
	Completed  []*Task `json:"completed"`
}
