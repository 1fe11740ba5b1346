package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/robinrdj/go-taskboard/internal/services"
)

func boardParamsFromQuery(c *gin.Context) services.BoardParams {
	return services.BoardParams{
		Search: c.Query("search"),
		SortBy: c.DefaultQuery("sort_by", services.SortNone),
		Filters: services.BoardFilters{
			Status:       c.Query("status"),
			Priority:     c.Query("priority"),
			Assignee:     c.Query("assignee"),
			DueStart:     c.Query("due_start"),
			DueEnd:       c.Query("due_end"),
			CreatedStart: c.Query("created_start"),
			CreatedEnd:   c.Query("created_end"),
		},
	}
}

func (h *handlerImpl) HandleGetBoard(c *gin.Context) {
	params := boardParamsFromQuery(c)
	view := services.ComposeBoard(h.tasks.Snapshot(), params)

	h.logger.Debug().
		Int("visible", len(view.Tasks)).
		Str("sort_by", params.SortBy).
		Msg("composed board")
	c.JSON(http.StatusOK, view)
}
