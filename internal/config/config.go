package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// The published key the public esports API ships with. An override via env
// is supported but not required.
const defaultEsportsAPIKey = "0TvQnueqKa5mxJntVWt0w4LpLfEkrV1Ta8rQBb9Z"

type Config struct {
	EsportsAPIKey string
	EsportsURL    string
	CargoURL      string
	DBPath        string
	ServerPort    string
	LogLevel      string

	// DevMode switches target selection to the uniform random strategy
	// instead of the daily hash.
	DevMode bool
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		EsportsAPIKey: getEnv("ESPORTS_API_KEY", defaultEsportsAPIKey),
		EsportsURL:    getEnv("ESPORTS_API_URL", "https://esports-api.lolesports.com"),
		CargoURL:      getEnv("CARGO_API_URL", "https://lol.fandom.com"),
		DBPath:        getEnv("DB_PATH", "leaguele.db"),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		DevMode:       getEnv("DEV_MODE", "") == "true",
	}

	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Bool("dev_mode", cfg.DevMode).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var Module = fx.Provide(Load)
