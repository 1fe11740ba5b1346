package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/robinrdj/go-taskboard/internal/services"
)

type toggleSelectionRequest struct {
	TaskID int64 `json:"task_id" binding:"required"`
	Extend bool  `json:"extend"`
}

func (h *handlerImpl) HandleToggleSelection(c *gin.Context) {
	var req toggleSelectionRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError("invalid request body"))
		return
	}

	h.selection.Toggle(req.TaskID, req.Extend)
	h.writeSelectionState(c)
}

func (h *handlerImpl) HandleActivateSelection(c *gin.Context) {
	h.selection.Activate()
	h.writeSelectionState(c)
}

func (h *handlerImpl) HandleCancelSelection(c *gin.Context) {
	h.selection.Cancel()
	h.writeSelectionState(c)
}

func (h *handlerImpl) HandleGetSelection(c *gin.Context) {
	h.writeSelectionState(c)
}

type selectionDeleteRequest struct {
	// GraceSeconds overrides the configured cancellation window;
	// an explicit 0 deletes immediately.
	GraceSeconds *int `json:"grace_seconds,omitempty"`
}

func (h *handlerImpl) HandleSelectionDelete(c *gin.Context) {
	var req selectionDeleteRequest
	if c.Request.ContentLength > 0 {
		err := c.ShouldBindJSON(&req)
		if err != nil {
			h.logger.Error().
				Err(err).
				Msg("failed to bind json")
			abort(c, newBadRequestError("invalid request body"))
			return
		}
	}

	grace := h.deleteGrace
	if req.GraceSeconds != nil {
		grace = time.Duration(*req.GraceSeconds) * time.Second
	}
	token, deleted := h.selection.CommitDelete(grace)
	if token != "" {
		h.logger.Info().
			Str("token", token).
			Msg("scheduled selection delete")
		c.JSON(http.StatusAccepted, gin.H{"pending_token": token})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

func (h *handlerImpl) HandleCancelPendingDelete(c *gin.Context) {
	token := c.Param("token")
	err := h.selection.CancelPending(token)
	if err != nil {
		if errors.Is(err, services.ErrNoPendingDelete) {
			abort(c, newNotFoundError("no pending delete"))
			return
		}
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlerImpl) HandleSelectionUpdate(c *gin.Context) {
	var req updateTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError("invalid request body"))
		return
	}

	updated := h.selection.CommitUpdate(req.patch())
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

func (h *handlerImpl) writeSelectionState(c *gin.Context) {
	mode, ids := h.selection.State()
	c.JSON(http.StatusOK, gin.H{
		"selection_mode": mode,
		"selected_ids":   ids,
	})
}
