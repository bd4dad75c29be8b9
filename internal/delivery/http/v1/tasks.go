package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/adanyl0v/go-task-tracker/internal/models"
	"github.com/adanyl0v/go-task-tracker/internal/services"
)

const (
	msgTaskCreated = "Task Created"
	msgTaskUpdated = "Task Updated"
	msgTaskDeleted = "Task Deleted"
)

type getTaskResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func newGetTaskResponse(task *models.Task) getTaskResponse {
	return getTaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		CreatedAt:   task.CreatedAt,
	}
}

type createTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Status      string `json:"status"`
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	var req createTaskRequest
	if !h.bindTaskRequest(c, &req) {
		return
	}

	taskID, err := h.tasks.CreateTask(c.Request.Context(), services.CreateTaskParams{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to create task")
		abort(c, newInternalServerError(errDatabase.Error()))
		return
	}
	h.logger.Debug().
		Int64("task_id", taskID).
		Msg("inserted task")

	c.JSON(http.StatusCreated, newMessageResponse(msgTaskCreated))
}

func (h *handlerImpl) HandleGetTasks(c *gin.Context) {
	tasks, err := h.tasks.ListTasks(c.Request.Context())
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to fetch tasks")
		if errors.Is(err, services.ErrConnectionFailed) {
			abort(c, newInternalServerError(errDatabaseConnection.Error()))
			return
		}
		abort(c, newInternalServerError(fmt.Sprintf("%s: %s", errDatabase, err)))
		return
	}
	h.logger.Debug().
		Int("count", len(tasks)).
		Msg("selected tasks")

	response := make([]getTaskResponse, len(tasks))
	for i := range tasks {
		response[i] = newGetTaskResponse(&tasks[i])
	}

	c.JSON(http.StatusOK, response)
}

type updateTaskRequest struct {
	createTaskRequest
}

func (h *handlerImpl) HandleUpdateTask(c *gin.Context) {
	taskID, ok := h.taskIDParam(c)
	if !ok {
		return
	}

	var req updateTaskRequest
	if !h.bindTaskRequest(c, &req) {
		return
	}

	err := h.tasks.UpdateTask(c.Request.Context(), services.UpdateTaskParams{
		ID:          taskID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Int64("task_id", taskID).
			Msg("failed to update task")
		abort(c, newInternalServerError(errDatabase.Error()))
		return
	}

	c.JSON(http.StatusOK, newMessageResponse(msgTaskUpdated))
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	taskID, ok := h.taskIDParam(c)
	if !ok {
		return
	}

	err := h.tasks.DeleteTask(c.Request.Context(), taskID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Int64("task_id", taskID).
			Msg("failed to delete task")
		abort(c, newInternalServerError(errDatabase.Error()))
		return
	}

	// net/http drops the body of a 204.
	c.JSON(http.StatusNoContent, newMessageResponse(msgTaskDeleted))
}

// bindTaskRequest decodes the JSON body into req and aborts the request
// if it is malformed or misses a required field.
func (h *handlerImpl) bindTaskRequest(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		h.logger.Warn().
			Err(err).
			Msg("required fields missing")
		abort(c, newBadRequestError(errFieldsRequired.Error()))
		return false
	}

	h.logger.Error().
		Err(err).
		Msg("failed to bind json")
	abort(c, newBadRequestError(errInvalidRequestBody.Error()))
	return false
}

// taskIDParam accepts only non-negative integers. Anything else does
// not address a task and is answered with 404.
func (h *handlerImpl) taskIDParam(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	taskID, err := strconv.ParseUint(raw, 10, 63)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Str("id", raw).
			Msg("invalid task id")
		abort(c, newStatusTextError(http.StatusNotFound))
		return 0, false
	}
	return int64(taskID), true
}
