package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

	"tasktrack/internal/domain/entity"
	domainerrors "tasktrack/internal/domain/errors"
	"tasktrack/internal/domain/repository"
	"tasktrack/internal/errors"
	mockRepo "tasktrack/internal/mocks/repository"
	"tasktrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type taskServiceFixtures struct {
	service   usecase.TaskUsecase
	txManager *mockRepo.MockTransactionManager
	taskRepo  *mockRepo.MockTaskRepository
}

func createTestTaskService(t *testing.T) taskServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	taskRepo := mockRepo.NewMockTaskRepository(t)

	return taskServiceFixtures{
		service: NewTaskService(TaskServiceParams{
			TxManager: txManager,
			TaskRepo:  taskRepo,
			Logger:    newDiscardLogger(),
		}),
		txManager: txManager,
		taskRepo:  taskRepo,
	}
}

func TestTaskService_CreateTask_Success(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()
	owner := uuid.New()
	taskID := uuid.New()

	expectTaskTx(t, fx.txManager, fx.taskRepo)
	fx.taskRepo.EXPECT().FindByTitle(ctx, owner, "Write report").Return(nil, repository.ErrTaskNotFound)
	fx.taskRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(task *entity.Task) bool {
			return task.Title == "Write report" && task.Status == entity.TaskStatusCreated && task.UserID == owner
		})).
		Run(func(_ context.Context, task *entity.Task) { task.ID = taskID }).
		Return(nil)

	task, err := fx.service.CreateTask(ctx, owner, usecase.CreateTaskInput{Title: "  Write report ", Description: "Q3 numbers"})

	require.NoError(t, err)
	assert.Equal(t, taskID, task.ID)
	assert.Equal(t, "Q3 numbers", task.Description)
}

func TestTaskService_CreateTask_DuplicateTitle(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()
	owner := uuid.New()

	expectTaskTx(t, fx.txManager, fx.taskRepo)
	fx.taskRepo.EXPECT().FindByTitle(ctx, owner, "Write report").Return(&entity.Task{ID: uuid.New()}, nil)

	_, err := fx.service.CreateTask(ctx, owner, usecase.CreateTaskInput{Title: "Write report", Description: "again"})

	assert.True(t, errors.Is(err, domainerrors.ErrTaskTitleConflict))
}

func TestTaskService_CreateTask_IndexRace(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()
	owner := uuid.New()

	expectTaskTx(t, fx.txManager, fx.taskRepo)
	fx.taskRepo.EXPECT().FindByTitle(ctx, owner, "Write report").Return(nil, repository.ErrTaskNotFound)
	fx.taskRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Task")).
		Return(domainerrors.ErrTaskTitleConflict.WrapMessage("unique index rejected insert"))

	_, err := fx.service.CreateTask(ctx, owner, usecase.CreateTaskInput{Title: "Write report", Description: "x"})

	appErr, ok := errors.Find[domainerrors.AppError](err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
}

func TestTaskService_EditTask_Success(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()
	owner := uuid.New()
	existing := &entity.Task{ID: uuid.New(), Title: "Old", Description: "old", Status: entity.TaskStatusInProgress, UserID: owner}

	expectTaskTx(t, fx.txManager, fx.taskRepo)
	fx.taskRepo.EXPECT().FindByID(ctx, owner, existing.ID).Return(existing, nil)
	fx.taskRepo.EXPECT().FindByTitle(ctx, owner, "New").Return(nil, repository.ErrTaskNotFound)
	fx.taskRepo.EXPECT().Update(ctx, existing).Return(nil)

	task, err := fx.service.EditTask(ctx, owner, existing.ID.String(), usecase.EditTaskInput{Title: "New", Description: "new"})

	require.NoError(t, err)
	assert.Equal(t, "New", task.Title)
	assert.Equal(t, "new", task.Description)
	assert.Equal(t, entity.TaskStatusInProgress, task.Status)
}

func TestTaskService_EditTask_SameTitleSkipsConflictCheck(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()
	owner := uuid.New()
	existing := &entity.Task{ID: uuid.New(), Title: "Same", Description: "old", UserID: owner}

	expectTaskTx(t, fx.txManager, fx.taskRepo)
	fx.taskRepo.EXPECT().FindByID(ctx, owner, existing.ID).Return(existing, nil)
	fx.taskRepo.EXPECT().Update(ctx, existing).Return(nil)

	_, err := fx.service.EditTask(ctx, owner, existing.ID.String(), usecase.EditTaskInput{Title: "Same", Description: "new"})

	require.NoError(t, err)
}

func TestTaskService_EditTask_TitleTakenBySibling(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()
	owner := uuid.New()
	existing := &entity.Task{ID: uuid.New(), Title: "Mine", UserID: owner}

	expectTaskTx(t, fx.txManager, fx.taskRepo)
	fx.taskRepo.EXPECT().FindByID(ctx, owner, existing.ID).Return(existing, nil)
	fx.taskRepo.EXPECT().FindByTitle(ctx, owner, "Taken").Return(&entity.Task{ID: uuid.New()}, nil)

	_, err := fx.service.EditTask(ctx, owner, existing.ID.String(), usecase.EditTaskInput{Title: "Taken", Description: "x"})

	assert.True(t, errors.Is(err, domainerrors.ErrTaskTitleConflict))
}

func TestTaskService_EditTask_ForeignTaskIsNotFound(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()
	owner := uuid.New()
	foreignID := uuid.New()

	expectTaskTx(t, fx.txManager, fx.taskRepo)
	fx.taskRepo.EXPECT().FindByID(ctx, owner, foreignID).Return(nil, repository.ErrTaskNotFound)

	_, err := fx.service.EditTask(ctx, owner, foreignID.String(), usecase.EditTaskInput{Title: "x", Description: "y"})

	assert.True(t, errors.Is(err, domainerrors.ErrTaskNotFound))
}

func TestTaskService_MalformedIDIsNotFound(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()
	owner := uuid.New()

	_, err := fx.service.EditTask(ctx, owner, "not-a-uuid", usecase.EditTaskInput{Title: "x", Description: "y"})
	assert.True(t, errors.Is(err, domainerrors.ErrTaskNotFound))

	_, err = fx.service.UpdateStatus(ctx, owner, "42", entity.TaskStatusCompleted)
	assert.True(t, errors.Is(err, domainerrors.ErrTaskNotFound))

	err = fx.service.DeleteTask(ctx, owner, "")
	assert.True(t, errors.Is(err, domainerrors.ErrTaskNotFound))
}

func TestTaskService_UpdateStatus(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()
	owner := uuid.New()
	existing := &entity.Task{ID: uuid.New(), Title: "T", Status: entity.TaskStatusCreated, UserID: owner}

	fx.taskRepo.EXPECT().FindByID(ctx, owner, existing.ID).Return(existing, nil)
	fx.taskRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(task *entity.Task) bool { return task.Status == entity.TaskStatusCompleted })).
		Return(nil)

	task, err := fx.service.UpdateStatus(ctx, owner, existing.ID.String(), entity.TaskStatusCompleted)

	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusCompleted, task.Status)
}

func TestTaskService_UpdateStatus_UnknownStatus(t *testing.T) {
	fx := createTestTaskService(t)

	_, err := fx.service.UpdateStatus(context.Background(), uuid.New(), uuid.NewString(), entity.TaskStatus("DONE"))

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestTaskService_DeleteTask(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()
	owner := uuid.New()
	taskID := uuid.New()

	fx.taskRepo.EXPECT().Delete(ctx, owner, taskID).Return(nil).Once()
	require.NoError(t, fx.service.DeleteTask(ctx, owner, taskID.String()))

	other := uuid.New()
	fx.taskRepo.EXPECT().Delete(ctx, owner, other).Return(repository.ErrTaskNotFound).Once()
	assert.True(t, errors.Is(fx.service.DeleteTask(ctx, owner, other.String()), domainerrors.ErrTaskNotFound))
}

func TestTaskService_ListTasks_NormalisesFilter(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()
	owner := uuid.New()

	fx.taskRepo.EXPECT().
		List(ctx, entity.TaskFilter{UserID: owner, Search: "report", Sort: entity.TaskSortLatest}).
		Return([]*entity.Task{}, nil)

	tasks, err := fx.service.ListTasks(ctx, entity.TaskFilter{UserID: owner, Search: "  report ", Sort: "sideways"})

	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskService_ListTasks_StorageFailure(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()
	owner := uuid.New()

	fx.taskRepo.EXPECT().List(ctx, mock.Anything).Return(nil, errors.New("connection reset"))

	_, err := fx.service.ListTasks(ctx, entity.TaskFilter{UserID: owner, Sort: entity.TaskSortOldest})

	appErr, ok := errors.Find[domainerrors.AppError](err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	assert.Equal(t, "Internal server error", appErr.Message())
}

func TestTaskService_GroupTasksByStatus(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()
	owner := uuid.New()
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	older := &entity.Task{ID: uuid.New(), Status: entity.TaskStatusCreated, UpdatedAt: base}
	newer := &entity.Task{ID: uuid.New(), Status: entity.TaskStatusCreated, UpdatedAt: base.Add(time.Hour)}
	done := &entity.Task{ID: uuid.New(), Status: entity.TaskStatusCompleted, UpdatedAt: base}

	fx.taskRepo.EXPECT().
		List(ctx, entity.TaskFilter{UserID: owner, Search: "q", Sort: entity.TaskSortLatest}).
		Return([]*entity.Task{older, done, newer}, nil)

	grouped, err := fx.service.GroupTasksByStatus(ctx, owner, "q")

	require.NoError(t, err)
	assert.Equal(t, []*entity.Task{newer, older}, grouped.Created)
	assert.NotNil(t, grouped.InProgress)
	assert.Empty(t, grouped.InProgress)
	assert.Equal(t, []*entity.Task{done}, grouped.Completed)
}
