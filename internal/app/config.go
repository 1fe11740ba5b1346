package app

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/robinrdj/go-taskboard/internal/config"
)

func MustReadEnv() {
	cfg, err := config.NewEnvReader().Read()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to read env")
		panic(err)
	}
	globalLogger.Info().
		Str("env", cfg.Env).
		Str("storage_path", cfg.Storage.Path).
		Dur("delete_grace", cfg.Board.DeleteGrace).
		Msg("read env")

	config.SetGlobal(cfg)
}
