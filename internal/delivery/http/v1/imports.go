package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/robinrdj/go-taskboard/internal/services"
)

// HandleImportTasks accepts a JSON array of task-like records, either
// as the request body or as an uploaded "file" form field, and admits
// the well-formed ones.
func (h *handlerImpl) HandleImportTasks(c *gin.Context) {
	raw, err := h.importPayload(c)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to read import payload")
		abort(c, newBadRequestError("failed to read import payload"))
		return
	}

	result, err := h.importer.ImportJSON(raw)
	if err != nil {
		if errors.Is(err, services.ErrImportNotArray) {
			abort(c, newBadRequestError("expected a JSON array of tasks"))
			return
		}
		if errors.Is(err, services.ErrImportEmpty) {
			abort(c, newBadRequestError("import file is empty"))
			return
		}
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	// Zero successes is the hard failure tier; a partial import is
	// advisory and still carries the tally.
	if result.SuccessCount == 0 {
		h.logger.Error().
			Int("total", result.TotalCount).
			Msg("no valid tasks in import")
		c.JSON(http.StatusUnprocessableEntity, result)
		return
	}

	h.logger.Info().
		Int("success", result.SuccessCount).
		Int("total", result.TotalCount).
		Msg("imported tasks")
	c.JSON(http.StatusOK, result)
}

func (h *handlerImpl) importPayload(c *gin.Context) ([]byte, error) {
	file, err := c.FormFile("file")
	if err == nil {
		f, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(f)
	}
	return io.ReadAll(c.Request.Body)
}
