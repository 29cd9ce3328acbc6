package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	EnvServerURL   = "SNAKE_SERVER_URL"
	EnvSurfaceSize = "SNAKE_SURFACE_SIZE"
	EnvLogLevel    = "SNAKE_LOG_LEVEL"
	EnvMonitorAddr = "SNAKE_MONITOR_ADDR"
)

// ApplyEnv overlays SNAKE_* variables on cfg. The process environment wins
// over envFile; a missing envFile is not an error.
func ApplyEnv(cfg *Config, envFile string) error {
	vars := map[string]string{}
	if envFile != "" {
		fromFile, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("env file %s: %w", envFile, err)
		}
		for k, v := range fromFile {
			vars[k] = v
		}
	}
	for _, k := range []string{EnvServerURL, EnvSurfaceSize, EnvLogLevel, EnvMonitorAddr} {
		if v, ok := os.LookupEnv(k); ok {
			vars[k] = v
		}
	}

	if v, ok := vars[EnvServerURL]; ok {
		cfg.ServerURL = v
	}
	if v, ok := vars[EnvSurfaceSize]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSurfaceSize, err)
		}
		cfg.SurfaceSize = n
	}
	if v, ok := vars[EnvLogLevel]; ok {
		cfg.LogLevel = v
	}
	if v, ok := vars[EnvMonitorAddr]; ok {
		cfg.MonitorAddr = v
	}
	return cfg.Validate()
}
