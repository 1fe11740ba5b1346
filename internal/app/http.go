package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/robinrdj/go-taskboard/internal/config"
	v1 "github.com/robinrdj/go-taskboard/internal/delivery/http/v1"
	"github.com/robinrdj/go-taskboard/internal/services"
	"github.com/robinrdj/go-taskboard/internal/storage"
)

func MustListenAndServeHTTP() {
	cfg := config.Global()
	if cfg.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	httpCfg := cfg.HTTP

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(v1.RequestIDMiddleware())
	mustRegisterRoutes(router)

	server := &http.Server{
		Addr:    net.JoinHostPort(httpCfg.Host, httpCfg.Port),
		Handler: router,
	}

	go func() {
		globalLogger.Info().
			Str("host", httpCfg.Host).
			Str("port", httpCfg.Port).
			Msg("setting up http server")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			globalLogger.Error().
				Err(err).
				Msg("failed to listen and serve http")
			panic(err)
		}
	}()

	// Wait for the interrupt signal to gracefully
	// shut down the server with a timeout.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	globalLogger.Info().
		Msg("shutting down http server")

	ctx, cancel := context.WithTimeout(context.Background(), httpCfg.ShutdownTimeout)
	defer cancel()

	err := server.Shutdown(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to shutdown http server")
		panic(err)
	}
	globalLogger.Info().Msg("shut down http server")
}

func mustRegisterRoutes(router gin.IRouter) {
	repo := storage.NewTaskRepository(globalLogger, globalSlotStore)

	taskStore, err := services.NewTaskStore(globalLogger, repo)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to load task store")
		panic(err)
	}

	themeService, err := services.NewThemeService(globalLogger, repo)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to load theme")
		panic(err)
	}

	v1Handler := v1.New(
		globalLogger,
		taskStore,
		services.NewSelectionCoordinator(globalLogger, taskStore),
		services.NewImportService(globalLogger, taskStore),
		themeService,
		config.Global().Board.DeleteGrace,
	)

	router = router.Group("/api/v1")

	tasksRouter := router.Group("/tasks")
	tasksRouter.POST("", v1Handler.HandleCreateTask)
	tasksRouter.GET("", v1Handler.HandleGetTasks)
	tasksRouter.PATCH("/:id", v1Handler.HandleUpdateTask)
	tasksRouter.DELETE("/:id", v1Handler.HandleDeleteTask)
	tasksRouter.POST("/bulk/delete", v1Handler.HandleBulkDeleteTasks)
	tasksRouter.POST("/bulk/update", v1Handler.HandleBulkUpdateTasks)

	router.GET("/board", v1Handler.HandleGetBoard)

	selectionRouter := router.Group("/selection")
	selectionRouter.GET("", v1Handler.HandleGetSelection)
	selectionRouter.POST("/toggle", v1Handler.HandleToggleSelection)
	selectionRouter.POST("/activate", v1Handler.HandleActivateSelection)
	selectionRouter.POST("/cancel", v1Handler.HandleCancelSelection)
	selectionRouter.POST("/delete", v1Handler.HandleSelectionDelete)
	selectionRouter.DELETE("/pending/:token", v1Handler.HandleCancelPendingDelete)
	selectionRouter.POST("/update", v1Handler.HandleSelectionUpdate)

	router.POST("/import", v1Handler.HandleImportTasks)
	router.GET("/export/tasks.json", v1Handler.HandleExportJSON)
	router.GET("/export/tasks.csv", v1Handler.HandleExportCSV)
	router.GET("/export/report.xlsx", v1Handler.HandleExportReport)
	router.GET("/analytics", v1Handler.HandleGetAnalytics)

	themeRouter := router.Group("/theme")
	themeRouter.GET("", v1Handler.HandleGetTheme)
	themeRouter.PUT("", v1Handler.HandleSetTheme)
	themeRouter.POST("/toggle", v1Handler.HandleToggleTheme)
}
