package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robinrdj/go-taskboard/internal/models"
	"github.com/robinrdj/go-taskboard/internal/services"
	"github.com/robinrdj/go-taskboard/internal/storage"
	"github.com/robinrdj/go-taskboard/internal/storage/memory"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := storage.NewTaskRepository(zerolog.Nop(), memory.New())

	taskStore, err := services.NewTaskStore(zerolog.Nop(), repo)
	require.NoError(t, err)
	themeService, err := services.NewThemeService(zerolog.Nop(), repo)
	require.NoError(t, err)

	handler := New(
		zerolog.Nop(),
		taskStore,
		services.NewSelectionCoordinator(zerolog.Nop(), taskStore),
		services.NewImportService(zerolog.Nop(), taskStore),
		themeService,
		5*time.Second,
	)

	router := gin.New()
	router.Use(RequestIDMiddleware())

	api := router.Group("/api/v1")
	api.POST("/tasks", handler.HandleCreateTask)
	api.GET("/tasks", handler.HandleGetTasks)
	api.PATCH("/tasks/:id", handler.HandleUpdateTask)
	api.DELETE("/tasks/:id", handler.HandleDeleteTask)
	api.POST("/tasks/bulk/delete", handler.HandleBulkDeleteTasks)
	api.POST("/tasks/bulk/update", handler.HandleBulkUpdateTasks)
	api.GET("/board", handler.HandleGetBoard)
	api.POST("/import", handler.HandleImportTasks)
	api.GET("/export/tasks.csv", handler.HandleExportCSV)
	api.GET("/theme", handler.HandleGetTheme)
	api.POST("/theme/toggle", handler.HandleToggleTheme)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createTask(t *testing.T, router *gin.Engine, body string) models.Task {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/v1/tasks", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var task models.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))
	return task
}

func TestCreateTaskRequiresTitle(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/tasks", `{"description":"no title"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAndGetTasks(t *testing.T) {
	router := newTestRouter(t)

	task := createTask(t, router, `{"title":"write report","due_date":"2025-03-07","priority":"high"}`)
	assert.Equal(t, "write report", task.Title)
	assert.Equal(t, "07-03-2025", task.DueDate)
	assert.Equal(t, models.StatusTodo, task.Status)

	w := doJSON(t, router, http.MethodGet, "/api/v1/tasks", "")
	require.Equal(t, http.StatusOK, w.Code)

	var tasks []models.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, task.ID, tasks[0].ID)
}

func TestUpdateUnknownTaskIs404(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPatch, "/api/v1/tasks/42", `{"title":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/tasks/42", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBoardEndToEnd(t *testing.T) {
	router := newTestRouter(t)

	a := createTask(t, router, `{"title":"one","status":"todo"}`)
	b := createTask(t, router, `{"title":"two","status":"inprogress"}`)
	c := createTask(t, router, `{"title":"three","status":"completed"}`)

	w := doJSON(t, router, http.MethodGet, "/api/v1/board", "")
	require.Equal(t, http.StatusOK, w.Code)

	var view services.BoardView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))

	require.Len(t, view.Columns, 4)
	byStatus := make(map[string]services.BoardColumn)
	for _, column := range view.Columns {
		byStatus[column.Status] = column
	}

	assert.Equal(t, []int64{a.ID}, byStatus[models.StatusTodo].TaskIDs)
	assert.Equal(t, []int64{b.ID}, byStatus[models.StatusInProgress].TaskIDs)
	assert.Empty(t, byStatus[models.StatusReview].TaskIDs)
	assert.Equal(t, []int64{c.ID}, byStatus[models.StatusCompleted].TaskIDs)
	assert.Len(t, view.Tasks, 3)
}

func TestBulkDeleteEndpoint(t *testing.T) {
	router := newTestRouter(t)

	a := createTask(t, router, `{"title":"a"}`)
	createTask(t, router, `{"title":"b"}`)

	body := fmt.Sprintf(`{"ids":[%d,999]}`, a.ID)
	w := doJSON(t, router, http.MethodPost, "/api/v1/tasks/bulk/delete", body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"deleted":1}`, w.Body.String())
}

func TestImportEndpointTally(t *testing.T) {
	router := newTestRouter(t)

	payload := `[
		{"title":"A","description":"d","status":"todo","priority":"low","assignee":"x"},
		{"title":123,"description":"d","status":"todo","priority":"low","assignee":"x"}
	]`
	w := doJSON(t, router, http.MethodPost, "/api/v1/import", payload)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success_count":1,"total_count":2}`, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/api/v1/import", `{"not":"an array"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/import",
		`[{"title":1,"description":2,"status":3,"priority":4,"assignee":5}]`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestExportCSVEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/export/tasks.csv", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	createTask(t, router, `{"title":"only"}`)
	w = doJSON(t, router, http.MethodGet, "/api/v1/export/tasks.csv", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "id,title,"))
}

func TestThemeEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/theme", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"theme":"light"}`, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/api/v1/theme/toggle", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"theme":"dark"}`, w.Body.String())
}
