package main

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Config holds the server settings read from the environment (.env is
// loaded by godotenv/autoload before main runs).
type Config struct {
	Port      string
	GinMode   string
	LogLevel  string
	StaticDir string
}

func loadConfig(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:      getenv("PORT"),
		GinMode:   getenv("GIN_MODE"),
		LogLevel:  getenv("LOG_LEVEL"),
		StaticDir: getenv("STATIC_DIR"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if n, err := strconv.Atoi(cfg.Port); err != nil || n <= 0 || n > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %q", cfg.Port)
	}

	switch cfg.GinMode {
	case "":
		cfg.GinMode = gin.ReleaseMode
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return Config{}, fmt.Errorf("invalid GIN_MODE %q", cfg.GinMode)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = "./static"
	}
	return cfg, nil
}
