package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	envEnv            = "LUMINA_ENV"
	envAPIBaseURL     = "LUMINA_API_BASE_URL"
	envDBPath         = "LUMINA_DB_PATH"
	envRequestTimeout = "LUMINA_REQUEST_TIMEOUT"
	envLogLevel       = "LUMINA_LOG_LEVEL"
)

// dotEnvFile is loaded before reading the environment. Variables already
// set in the process win over the file.
var dotEnvFile = ".env"

func applyEnv(cfg *Config) error {
	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", dotEnvFile, err)
	}

	setString(&cfg.Env, os.Getenv(envEnv))
	setString(&cfg.APIBaseURL, os.Getenv(envAPIBaseURL))
	setString(&cfg.DBPath, os.Getenv(envDBPath))
	setString(&cfg.LogLevel, os.Getenv(envLogLevel))

	if v := os.Getenv(envRequestTimeout); v != "" {
		d, err := parseTimeout(v)
		if err != nil {
			return fmt.Errorf("%s: %w", envRequestTimeout, err)
		}
		cfg.RequestTimeout = d
	}
	return nil
}

// parseTimeout accepts a Go duration ("15s") or whole seconds ("15").
func parseTimeout(v string) (time.Duration, error) {
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return time.ParseDuration(v)
}
