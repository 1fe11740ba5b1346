package config

import "time"

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

var globalConfig *Config

func Global() *Config {
	return globalConfig
}

func SetGlobal(cfg *Config) {
	globalConfig = cfg
}

type Config struct {
	Env     string `env:"ENV" env-default:"local"`
	HTTP    HTTPConfig
	Storage StorageConfig
	Board   BoardConfig
}

type HTTPConfig struct {
	Host            string        `env:"HTTP_HOST" env-default:"127.0.0.1"`
	Port            string        `env:"HTTP_PORT" env-default:"8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

type StorageConfig struct {
	// Path of the SQLite file holding the storage slots. Empty
	// selects the in-memory store, which loses data on exit.
	Path string `env:"STORAGE_PATH" env-default:"taskboard.db"`
}

type BoardConfig struct {
	// DeleteGrace is the cancellation window of a selection delete.
	DeleteGrace time.Duration `env:"BOARD_DELETE_GRACE" env-default:"5s"`
}
