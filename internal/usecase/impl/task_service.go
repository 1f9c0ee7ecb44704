package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/fx"

	deliverycontext "tasktrack/internal/delivery/context"
	"tasktrack/internal/domain/entity"
	domainerrors "tasktrack/internal/domain/errors"
	"tasktrack/internal/domain/repository"
	"tasktrack/internal/errors"
	"tasktrack/internal/usecase"
)

// taskService implements the TaskUsecase interface.
type taskService struct {
	txManager repository.TransactionManager
	taskRepo  repository.TaskRepository
	logger    *slog.Logger
}

// TaskServiceParams holds dependencies for TaskService, injected by Fx.
type TaskServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	TaskRepo  repository.TaskRepository
	Logger    *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(params TaskServiceParams) usecase.TaskUsecase {
	return &taskService{
		txManager: params.TxManager,
		taskRepo:  params.TaskRepo,
		logger:    params.Logger,
	}
}

func (srv *taskService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateTask stores a new task in status CREATED. Titles are unique per
// owner after trimming.
func (srv *taskService) CreateTask(ctx context.Context, ownerID uuid.UUID, input usecase.CreateTaskInput) (*entity.Task, error) {
	task := &entity.Task{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Status:      entity.TaskStatusCreated,
		UserID:      ownerID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		taskRepo := repoFactory.TaskRepo()

		if err := ensureTitleFree(ctx, taskRepo, ownerID, task.Title, uuid.Nil); err != nil {
			return err
		}

		return taskRepo.Create(ctx, task)
	})
	if err != nil {
		return nil, mapTaskError(err, "failed to create task")
	}

	srv.log(ctx).Info("Task created", slog.String("taskID", task.ID.String()))

	return task, nil
}

// EditTask replaces the title and description of an owned task.
func (srv *taskService) EditTask(ctx context.Context, ownerID uuid.UUID, taskID string, input usecase.EditTaskInput) (*entity.Task, error) {
	id, err := parseTaskID(taskID)
	if err != nil {
		return nil, err
	}

	var task *entity.Task
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		taskRepo := repoFactory.TaskRepo()

		found, err := taskRepo.FindByID(ctx, ownerID, id)
		if err != nil {
			return err
		}

		title := strings.TrimSpace(input.Title)
		if title != found.Title {
			if err := ensureTitleFree(ctx, taskRepo, ownerID, title, found.ID); err != nil {
				return err
			}
		}

		found.Title = title
		found.Description = input.Description
		if err := taskRepo.Update(ctx, found); err != nil {
			return err
		}
		task = found

		return nil
	})
	if err != nil {
		return nil, mapTaskError(err, "failed to edit task")
	}

	return task, nil
}

// UpdateStatus moves an owned task to status.
func (srv *taskService) UpdateStatus(ctx context.Context, ownerID uuid.UUID, taskID string, status entity.TaskStatus) (*entity.Task, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown task status " + string(status))
	}

	id, err := parseTaskID(taskID)
	if err != nil {
		return nil, err
	}

	task, err := srv.taskRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, mapTaskError(err, "failed to load task")
	}

	task.Status = status
	if err := srv.taskRepo.Update(ctx, task); err != nil {
		return nil, mapTaskError(err, "failed to update task status")
	}

	return task, nil
}

// DeleteTask removes an owned task.
func (srv *taskService) DeleteTask(ctx context.Context, ownerID uuid.UUID, taskID string) error {
	id, err := parseTaskID(taskID)
	if err != nil {
		return err
	}

	if err := srv.taskRepo.Delete(ctx, ownerID, id); err != nil {
		return mapTaskError(err, "failed to delete task")
	}

	srv.log(ctx).Info("Task deleted", slog.String("taskID", id.String()))

	return nil
}

// ListTasks returns the owner's tasks ordered by creation time, newest first
// unless the filter asks for oldest.
func (srv *taskService) ListTasks(ctx context.Context, filter entity.TaskFilter) ([]*entity.Task, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	if filter.Sort != entity.TaskSortOldest {
		filter.Sort = entity.TaskSortLatest
	}

	tasks, err := srv.taskRepo.List(ctx, filter)
	if err != nil {
		return nil, mapTaskError(err, "failed to list tasks")
	}

	return tasks, nil
}

// GroupTasksByStatus buckets the owner's tasks by status, each bucket sorted
// by last update, newest first.
func (srv *taskService) GroupTasksByStatus(ctx context.Context, ownerID uuid.UUID, search string) (*entity.GroupedTasks, error) {
	tasks, err := srv.ListTasks(ctx, entity.TaskFilter{UserID: ownerID, Search: search})
	if err != nil {
		return nil, err
	}

	grouped := &entity.GroupedTasks{
		Created:    []*entity.Task{},
		InProgress: []*entity.Task{},
		Completed:  []*entity.Task{},
	}
	for _, task := range tasks {
		switch task.Status {
		case entity.TaskStatusCreated:
			grouped.Created = append(grouped.Created, task)
		case entity.TaskStatusInProgress:
			grouped.InProgress = append(grouped.InProgress, task)
		case entity.TaskStatusCompleted:
			grouped.Completed = append(grouped.Completed, task)
		}
	}

	for _, bucket := range [][]*entity.Task{grouped.Created, grouped.InProgress, grouped.Completed} {
		slices.SortStableFunc(bucket, func(a, b *entity.Task) int {
			return b.UpdatedAt.Compare(a.UpdatedAt)
		})
	}

	return grouped, nil
}

func ensureTitleFree(ctx context.Context, taskRepo repository.TaskRepository, ownerID uuid.UUID, title string, self uuid.UUID) error {
	existing, err := taskRepo.FindByTitle(ctx, ownerID, title)
	switch {
	case errors.Is(err, repository.ErrTaskNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID != self:
		return domainerrors.ErrTaskTitleConflict
	default:
		return nil
	}
}

// parseTaskID treats a malformed id like a missing task.
func parseTaskID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, domainerrors.ErrTaskNotFound
	}

	return id, nil
}

func mapTaskError(err error, message string) error {
	if errors.Is(err, repository.ErrTaskNotFound) {
		return domainerrors.ErrTaskNotFound
	}
	if _, ok := errors.Find[domainerrors.AppError](err); ok {
		return err
	}

	return domainerrors.NewDatabaseExecuteError(err, message)
}
