package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/robinrdj/go-taskboard/internal/models"
	"github.com/robinrdj/go-taskboard/internal/services"
)

func (h *handlerImpl) HandleExportJSON(c *gin.Context) {
	raw, err := services.ExportJSON(h.exportSnapshot(c))
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to export json")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="tasks.json"`)
	c.Data(http.StatusOK, "application/json", raw)
}

func (h *handlerImpl) HandleExportCSV(c *gin.Context) {
	tasks := h.exportSnapshot(c)
	if len(tasks) == 0 {
		abort(c, newNotFoundError("no tasks to export"))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="tasks.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", services.ExportCSV(tasks))
}

func (h *handlerImpl) HandleExportReport(c *gin.Context) {
	report := services.BuildAnalyticsReport(h.tasks.Snapshot(), time.Now())

	raw, err := services.ExportAnalyticsXLSX(report)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to build xlsx report")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="task_analytics.xlsx"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", raw)
}

func (h *handlerImpl) HandleGetAnalytics(c *gin.Context) {
	report := services.BuildAnalyticsReport(h.tasks.Snapshot(), time.Now())
	c.JSON(http.StatusOK, report)
}

// exportSnapshot narrows an export to the board view when any board
// query parameter is present, mirroring "download what I see" on the
// filtered board. Column order keeps the export deterministic.
func (h *handlerImpl) exportSnapshot(c *gin.Context) []models.Task {
	snapshot := h.tasks.Snapshot()
	if len(c.Request.URL.Query()) == 0 {
		return snapshot
	}

	view := services.ComposeBoard(snapshot, boardParamsFromQuery(c))
	tasks := make([]models.Task, 0, len(view.Tasks))
	for _, column := range view.Columns {
		for _, id := range column.TaskIDs {
			tasks = append(tasks, view.Tasks[id])
		}
	}
	return tasks
}
