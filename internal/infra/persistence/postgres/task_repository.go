package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tasktrack/internal/domain/entity"
	domainerrors "tasktrack/internal/domain/errors"
	"tasktrack/internal/domain/repository"
	"tasktrack/internal/errors"
	"tasktrack/internal/infra/persistence/model"
)

// taskRepository implements the domain.TaskRepository interface using GORM.
// Every statement is scoped by user_id.
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

// Create persists a new task.
func (repo *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)

	if err := repo.db.WithContext(ctx).Create(taskM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrTaskTitleConflict.WrapMessage("unique index rejected insert")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "task owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create task")
	}

	task.ID = taskM.ID
	task.Status = entity.TaskStatus(taskM.Status)
	task.CreatedAt = taskM.CreatedAt
	task.UpdatedAt = taskM.UpdatedAt

	return nil
}

// FindByTitle returns the owner's task with exactly this title.
func (repo *taskRepository) FindByTitle(ctx context.Context, userID uuid.UUID, title string) (*entity.Task, error) {
	return repo.first(ctx, "failed to find task by title", "user_id = ? AND title = ?", userID, title)
}

// FindByID returns the task only if it belongs to userID.
func (repo *taskRepository) FindByID(ctx context.Context, userID, taskID uuid.UUID) (*entity.Task, error) {
	return repo.first(ctx, "failed to find task by id", "id = ? AND user_id = ?", taskID, userID)
}

func (repo *taskRepository) first(ctx context.Context, failure string, query string, args ...any) (*entity.Task, error) {
	var taskM model.TaskModel
	err := repo.db.WithContext(ctx).Where(query, args...).First(&taskM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, failure)
	}

	return toTaskDomain(&taskM), nil
}

// Update saves title, description and status. The owner is part of the
// WHERE clause, so a foreign task is reported as not found.
func (repo *taskRepository) Update(ctx context.Context, task *entity.Task) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Where("id = ? AND user_id = ?", task.ID, task.UserID).
		Updates(map[string]any{
			"title":       task.Title,
			"description": task.Description,
			"status":      string(task.Status),
			"updated_at":  now,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrTaskTitleConflict.WrapMessage("unique index rejected update")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update task")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	task.UpdatedAt = now

	return nil
}

// Delete removes the owner's task.
func (repo *taskRepository) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", taskID, userID).
		Delete(&model.TaskModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete task")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// List returns the owner's tasks matching filter.
func (repo *taskRepository) List(ctx context.Context, filter entity.TaskFilter) ([]*entity.Task, error) {
	query := repo.db.WithContext(ctx).Where("user_id = ?", filter.UserID)
	if filter.Search != "" {
		pattern := containsPattern(filter.Search)
		query = query.Where("(title ILIKE ? OR description ILIKE ?)", pattern, pattern)
	}

	var rows []model.TaskModel
	if err := query.Order(orderClause(filter.Sort)).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tasks")
	}

	tasks := make([]*entity.Task, 0, len(rows))
	for i := range rows {
		tasks = append(tasks, toTaskDomain(&rows[i]))
	}

	return tasks, nil
}

func orderClause(sort entity.TaskSort) string {
	if sort == entity.TaskSortOldest {
		return "created_at ASC, id ASC"
	}

	return "created_at DESC, id DESC"
}

// toTaskDomain converts a GORM TaskModel to a domain Task entity.
func toTaskDomain(data *model.TaskModel) *entity.Task {
	if data == nil {
		return nil
	}

	return &entity.Task{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Status:      entity.TaskStatus(data.Status),
		UserID:      data.UserID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromTaskDomain converts a domain Task entity to a GORM TaskModel for persistence.
func fromTaskDomain(data *entity.Task) *model.TaskModel {
	if data == nil {
		return nil
	}

	status := data.Status
	if status == "" {
		status = entity.TaskStatusCreated
	}

	return &model.TaskModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Status:      string(status),
		UserID:      data.UserID,
	}
}
