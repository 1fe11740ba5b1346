package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/robinrdj/go-taskboard/internal/services"
)

type Handler interface {
	HandleCreateTask(c *gin.Context)
	HandleGetTasks(c *gin.Context)
	HandleUpdateTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)
	HandleBulkDeleteTasks(c *gin.Context)
	HandleBulkUpdateTasks(c *gin.Context)

	HandleGetBoard(c *gin.Context)

	HandleToggleSelection(c *gin.Context)
	HandleActivateSelection(c *gin.Context)
	HandleCancelSelection(c *gin.Context)
	HandleGetSelection(c *gin.Context)
	HandleSelectionDelete(c *gin.Context)
	HandleCancelPendingDelete(c *gin.Context)
	HandleSelectionUpdate(c *gin.Context)

	HandleImportTasks(c *gin.Context)
	HandleExportJSON(c *gin.Context)
	HandleExportCSV(c *gin.Context)
	HandleExportReport(c *gin.Context)
	HandleGetAnalytics(c *gin.Context)

	HandleGetTheme(c *gin.Context)
	HandleSetTheme(c *gin.Context)
	HandleToggleTheme(c *gin.Context)
}

type handlerImpl struct {
	logger      zerolog.Logger
	tasks       services.TaskStore
	selection   services.SelectionCoordinator
	importer    *services.ImportService
	theme       services.ThemeService
	deleteGrace time.Duration
}

func New(
	logger zerolog.Logger,
	taskStore services.TaskStore,
	selection services.SelectionCoordinator,
	importer *services.ImportService,
	themeService services.ThemeService,
	deleteGrace time.Duration,
) Handler {
	return &handlerImpl{
		logger:      logger,
		tasks:       taskStore,
		selection:   selection,
		importer:    importer,
		theme:       themeService,
		deleteGrace: deleteGrace,
	}
}
