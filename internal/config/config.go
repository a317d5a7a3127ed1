package config

import (
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Environment string
	LogLevel    slog.Level
	// DBPath is the SQLite registry file.
	DBPath string
	// WorldDir is the world directory advancement files are saved under.
	WorldDir string
}

func Load() *Config {
	return &Config{
		Environment: getEnv("ADVKIT_ENV", "development"),
		LogLevel:    ParseLogLevel(getEnv("ADVKIT_LOG_LEVEL", "warn")),
		DBPath:      getEnv("ADVKIT_DB", "advkit.db"),
		WorldDir:    getEnv("ADVKIT_WORLD", "world"),
	}
}

// ParseLogLevel maps a level name to a slog level; unknown names map to info.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
