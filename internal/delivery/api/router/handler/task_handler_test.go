package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tasktrack/internal/delivery/api/validator"
	"tasktrack/internal/domain/entity"
	domainerrors "tasktrack/internal/domain/errors"
	"tasktrack/internal/errors"
	mockUsecase "tasktrack/internal/mocks/usecase"
	"tasktrack/internal/usecase"
)

func newTaskHandler(t *testing.T) (*TaskHandler, *mockUsecase.MockTaskUsecase) {
	taskUC := mockUsecase.NewMockTaskUsecase(t)

	return NewTaskHandler(TaskHandlerParams{TaskUC: taskUC}), taskUC
}

func TestTaskHandler_CreateTask(t *testing.T) {
	owner := uuid.New()

	t.Run("created", func(t *testing.T) {
		h, taskUC := newTaskHandler(t)
		task := &entity.Task{ID: uuid.New(), Title: "Write docs", Description: "api", Status: entity.TaskStatusCreated, UserID: owner}
		taskUC.EXPECT().
			CreateTask(mock.Anything, owner, usecase.CreateTaskInput{Title: "Write docs", Description: "api"}).
			Return(task, nil)

		c, rec := newRequestContext(http.MethodPost, "/tasks", `{"title":"  Write docs ","description":"api"}`, owner)

		require.NoError(t, h.CreateTask(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
		body := decodeEnvelope(t, rec)
		assert.Equal(t, "Task created", body.Message)
		assert.Contains(t, string(body.Data), `"title":"Write docs"`)
		assert.Contains(t, string(body.Data), `"status":"CREATED"`)
	})

	t.Run("blank title", func(t *testing.T) {
		h, _ := newTaskHandler(t)

		c, _ := newRequestContext(http.MethodPost, "/tasks", `{"title":"   ","description":"api"}`, owner)

		validationErr, ok := errors.Find[*validator.ValidationError](h.CreateTask(c))
		require.True(t, ok)
		assert.Equal(t, "title", validationErr.Fields[0].Field)
	})

	t.Run("title too long", func(t *testing.T) {
		h, _ := newTaskHandler(t)

		long := make([]byte, 201)
		for i := range long {
			long[i] = 'a'
		}
		c, _ := newRequestContext(http.MethodPost, "/tasks", `{"title":"`+string(long)+`","description":"api"}`, owner)

		_, ok := errors.Find[*validator.ValidationError](h.CreateTask(c))
		assert.True(t, ok)
	})

	t.Run("duplicate title", func(t *testing.T) {
		h, taskUC := newTaskHandler(t)
		taskUC.EXPECT().
			CreateTask(mock.Anything, owner, mock.Anything).
			Return(nil, domainerrors.ErrTaskTitleConflict)

		c, _ := newRequestContext(http.MethodPost, "/tasks", `{"title":"Write docs","description":"api"}`, owner)

		assert.ErrorIs(t, h.CreateTask(c), domainerrors.ErrTaskTitleConflict)
	})

	t.Run("no identity", func(t *testing.T) {
		h, _ := newTaskHandler(t)

		c, _ := newRequestContext(http.MethodPost, "/tasks", `{"title":"Write docs","description":"api"}`, uuid.Nil)

		assert.ErrorIs(t, h.CreateTask(c), domainerrors.ErrNoAuthToken)
	})
}

func TestTaskHandler_ListTasks(t *testing.T) {
	owner := uuid.New()

	t.Run("filters and sorts", func(t *testing.T) {
		h, taskUC := newTaskHandler(t)
		taskUC.EXPECT().
			ListTasks(mock.Anything, entity.TaskFilter{UserID: owner, Search: "docs", Sort: entity.TaskSortOldest}).
			Return(nil, nil)

		c, rec := newRequestContext(http.MethodGet, "/tasks?search=docs&sort=oldest", "", owner)

		require.NoError(t, h.ListTasks(c))

		body := decodeEnvelope(t, rec)
		assert.Equal(t, "Tasks retrieved", body.Message)
		assert.JSONEq(t, `[]`, string(body.Data))
	})

	t.Run("unknown sort", func(t *testing.T) {
		h, _ := newTaskHandler(t)

		c, _ := newRequestContext(http.MethodGet, "/tasks?sort=random", "", owner)

		validationErr, ok := errors.Find[*validator.ValidationError](h.ListTasks(c))
		require.True(t, ok)
		assert.Equal(t, "sort", validationErr.Fields[0].Field)
	})
}

func TestTaskHandler_GroupedTasks(t *testing.T) {
	owner := uuid.New()
	h, taskUC := newTaskHandler(t)
	now := time.Now().UTC()
	taskUC.EXPECT().
		GroupTasksByStatus(mock.Anything, owner, "urgent").
		Return(&entity.GroupedTasks{
			Created:    []*entity.Task{{ID: uuid.New(), Title: "a", Status: entity.TaskStatusCreated, UpdatedAt: now}},
			InProgress: []*entity.Task{},
			Completed:  []*entity.Task{},
		}, nil)

	c, rec := newRequestContext(http.MethodGet, "/tasks/grouped?search=urgent", "", owner)

	require.NoError(t, h.GroupedTasks(c))

	data := string(decodeEnvelope(t, rec).Data)
	assert.Contains(t, data, `"created":[{`)
	assert.Contains(t, data, `"inprogress":[]`)
	assert.Contains(t, data, `"completed":[]`)
}

func TestTaskHandler_EditTask(t *testing.T) {
	owner := uuid.New()
	h, taskUC := newTaskHandler(t)
	taskUC.EXPECT().
		EditTask(mock.Anything, owner, "not-a-uuid", usecase.EditTaskInput{Title: "New", Description: "desc"}).
		Return(nil, domainerrors.ErrTaskNotFound)

	c, _ := newRequestContext(http.MethodPut, "/tasks/not-a-uuid", `{"title":"New","description":"desc"}`, owner)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	assert.ErrorIs(t, h.EditTask(c), domainerrors.ErrTaskNotFound)
}

func TestTaskHandler_UpdateStatus(t *testing.T) {
	owner := uuid.New()
	taskID := uuid.New()

	t.Run("valid status", func(t *testing.T) {
		h, taskUC := newTaskHandler(t)
		taskUC.EXPECT().
			UpdateStatus(mock.Anything, owner, taskID.String(), entity.TaskStatusInProgress).
			Return(&entity.Task{ID: taskID, Status: entity.TaskStatusInProgress}, nil)

		c, rec := newRequestContext(http.MethodPut, "/tasks/"+taskID.String()+"/status", `{"status":"INPROGRESS"}`, owner)
		c.SetParamNames("id")
		c.SetParamValues(taskID.String())

		require.NoError(t, h.UpdateStatus(c))
		assert.Equal(t, "Task status updated", decodeEnvelope(t, rec).Message)
	})

	t.Run("unknown status", func(t *testing.T) {
		h, _ := newTaskHandler(t)

		c, _ := newRequestContext(http.MethodPut, "/tasks/"+taskID.String()+"/status", `{"status":"DONE"}`, owner)
		c.SetParamNames("id")
		c.SetParamValues(taskID.String())

		_, ok := errors.Find[*validator.ValidationError](h.UpdateStatus(c))
		assert.True(t, ok)
	})
}

func TestTaskHandler_DeleteTask(t *testing.T) {
	owner := uuid.New()
	taskID := uuid.New()
	h, taskUC := newTaskHandler(t)
	taskUC.EXPECT().DeleteTask(mock.Anything, owner, taskID.String()).Return(nil)

	c, rec := newRequestContext(http.MethodDelete, "/tasks/"+taskID.String(), "", owner)
	c.SetParamNames("id")
	c.SetParamValues(taskID.String())

	require.NoError(t, h.DeleteTask(c))
	assert.JSONEq(t, `{"status":200,"message":"Task deleted"}`, rec.Body.String())
}
