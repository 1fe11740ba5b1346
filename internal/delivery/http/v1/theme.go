package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/robinrdj/go-taskboard/internal/services"
)

func (h *handlerImpl) HandleGetTheme(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"theme": h.theme.Theme()})
}

type setThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

func (h *handlerImpl) HandleSetTheme(c *gin.Context) {
	var req setThemeRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError("invalid request body"))
		return
	}

	err = h.theme.SetTheme(req.Theme)
	if err != nil {
		if errors.Is(err, services.ErrInvalidTheme) {
			abort(c, newBadRequestError("theme must be light or dark"))
			return
		}
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": req.Theme})
}

func (h *handlerImpl) HandleToggleTheme(c *gin.Context) {
	theme, err := h.theme.ToggleTheme()
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": theme})
}
