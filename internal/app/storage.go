package app

import (
	"github.com/robinrdj/go-taskboard/internal/config"
	"github.com/robinrdj/go-taskboard/internal/storage"
	"github.com/robinrdj/go-taskboard/internal/storage/memory"
	"github.com/robinrdj/go-taskboard/internal/storage/sqlite"
)

var globalSlotStore storage.SlotStore

func MustOpenStorage() {
	cfg := config.Global().Storage
	if cfg.Path == "" {
		globalSlotStore = memory.New()
		globalLogger.Warn().
			Msg("no storage path configured, tasks will not survive restarts")
		return
	}

	store, err := sqlite.New(cfg.Path)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Str("path", cfg.Path).
			Msg("failed to open storage")
		panic(err)
	}

	globalSlotStore = store
	globalLogger.Info().
		Str("path", cfg.Path).
		Msg("opened storage")
}

func CloseStorage() {
	err := globalSlotStore.Close()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to close storage")
		return
	}
	globalLogger.Info().Msg("closed storage")
}
