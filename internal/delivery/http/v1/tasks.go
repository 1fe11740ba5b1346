package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/robinrdj/go-taskboard/internal/models"
	"github.com/robinrdj/go-taskboard/internal/services"
)

type createTaskRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Status      string `json:"status"`
	Assignee    string `json:"assignee"`
	Priority    string `json:"priority"`
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	var req createTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError("invalid request body"))
		return
	}

	task := h.tasks.Add(services.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      req.Status,
		Assignee:    req.Assignee,
		Priority:    req.Priority,
	})

	h.logger.Info().
		Int64("task_id", task.ID).
		Msg("created task")
	c.JSON(http.StatusCreated, task)
}

func (h *handlerImpl) HandleGetTasks(c *gin.Context) {
	tasks := h.tasks.Snapshot()
	h.logger.Debug().
		Int("count", len(tasks)).
		Msg("fetched tasks")
	c.JSON(http.StatusOK, tasks)
}

type updateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	Status      *string `json:"status,omitempty"`
	Assignee    *string `json:"assignee,omitempty"`
	Priority    *string `json:"priority,omitempty"`
}

func (r updateTaskRequest) patch() services.TaskPatch {
	return services.TaskPatch{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Status:      r.Status,
		Assignee:    r.Assignee,
		Priority:    r.Priority,
	}
}

func (h *handlerImpl) HandleUpdateTask(c *gin.Context) {
	id, ok := taskIDParam(c)
	if !ok {
		return
	}

	var req updateTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError("invalid request body"))
		return
	}

	if req.Status != nil && !models.IsValidStatus(*req.Status) {
		h.logger.Error().
			Str("status", *req.Status).
			Msg("invalid status")
		abort(c, newBadRequestError("invalid status"))
		return
	}

	task, err := h.tasks.Update(id, req.patch())
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			abort(c, newNotFoundError("task not found"))
			return
		}
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	h.logger.Info().
		Int64("task_id", id).
		Msg("updated task")
	c.JSON(http.StatusOK, task)
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	id, ok := taskIDParam(c)
	if !ok {
		return
	}

	err := h.tasks.Delete(id)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			abort(c, newNotFoundError("task not found"))
			return
		}
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	h.logger.Info().
		Int64("task_id", id).
		Msg("deleted task")
	c.Status(http.StatusNoContent)
}

type bulkDeleteRequest struct {
	IDs []int64 `json:"ids" binding:"required"`
}

func (h *handlerImpl) HandleBulkDeleteTasks(c *gin.Context) {
	var req bulkDeleteRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError("invalid request body"))
		return
	}

	deleted := h.tasks.DeleteMultiple(req.IDs)
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

type bulkUpdateRequest struct {
	IDs     []int64           `json:"ids" binding:"required"`
	Updates updateTaskRequest `json:"updates"`
}

func (h *handlerImpl) HandleBulkUpdateTasks(c *gin.Context) {
	var req bulkUpdateRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError("invalid request body"))
		return
	}

	updated := h.tasks.UpdateMultiple(req.IDs, req.Updates.patch())
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

func taskIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		abort(c, newBadRequestError("invalid task id"))
		return 0, false
	}
	return id, true
}
