package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"tasktrack/internal/delivery/api/response"
	"tasktrack/internal/domain/entity"
	"tasktrack/internal/usecase"
)

// TaskHandler serves the caller's tasks. Every route sits behind the auth middleware.
type TaskHandler struct {
	taskUC usecase.TaskUsecase
}

// TaskHandlerParams holds dependencies for TaskHandler, injected by Fx.
type TaskHandlerParams struct {
	fx.In

	TaskUC usecase.TaskUsecase
}

// NewTaskHandler is the constructor for TaskHandler.
func NewTaskHandler(params TaskHandlerParams) *TaskHandler {
	return &TaskHandler{taskUC: params.TaskUC}
}

// CreateTask adds a task for the caller.
func (h *TaskHandler) CreateTask(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	var req createTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	task, err := h.taskUC.CreateTask(c.Request().Context(), owner, usecase.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return response.Created(c, "Task created", task)
}

// ListTasks returns the caller's tasks, optionally filtered and sorted.
func (h *TaskHandler) ListTasks(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	var query listTasksQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	tasks, err := h.taskUC.ListTasks(c.Request().Context(), entity.TaskFilter{
		UserID: owner,
		Search: query.Search,
		Sort:   entity.TaskSort(query.Sort),
	})
	if err != nil {
		return err
	}
	if tasks == nil {
		tasks = []*entity.Task{}
	}

	return response.OK(c, "Tasks retrieved", tasks)
}

// GroupedTasks returns the caller's tasks bucketed by status.
func (h *TaskHandler) GroupedTasks(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	var query groupedTasksQuery
	if err := c.Bind(&query); err != nil {
		return err
	}

	grouped, err := h.taskUC.GroupTasksByStatus(c.Request().Context(), owner, query.Search)
	if err != nil {
		return err
	}

	return response.OK(c, "Tasks retrieved", grouped)
}

// EditTask replaces the title and description of one of the caller's tasks.
func (h *TaskHandler) EditTask(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	var req editTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	task, err := h.taskUC.EditTask(c.Request().Context(), owner, c.Param("id"), usecase.EditTaskInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return response.OK(c, "Task updated", task)
}

// UpdateStatus moves one of the caller's tasks to another status.
func (h *TaskHandler) UpdateStatus(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	task, err := h.taskUC.UpdateStatus(c.Request().Context(), owner, c.Param("id"), entity.TaskStatus(req.Status))
	if err != nil {
		return err
	}

	return response.OK(c, "Task status updated", task)
}

// DeleteTask removes one of the caller's tasks.
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	if err := h.taskUC.DeleteTask(c.Request().Context(), owner, c.Param("id")); err != nil {
		return err
	}

	return response.OK(c, "Task deleted", nil)
}
