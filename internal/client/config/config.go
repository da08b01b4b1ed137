package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/lumina/internal/flagx"
	"github.com/go-playground/validator/v10"
)

const (
	EnvProduction = "production"
	EnvLocal      = "local"

	ProductionBaseURL = "https://cosmic-project-forge-backend.onrender.com"
	LocalBaseURL      = "http://localhost:8000"
)

// Flags lists every flag owned by the config loader, so the command tree
// can leave them alone.
var Flags = []string{"-a", "-e", "-d", "-t", "-l", "-c", "-config"}

type Config struct {
	Env            string        `validate:"oneof=production local"`
	APIBaseURL     string        `validate:"required,url"`
	DBPath         string        `validate:"required"`
	RequestTimeout time.Duration `validate:"gt=0"`
	LogLevel       string        `validate:"oneof=debug info warn error"`
}

// Default returns the built-in configuration. APIBaseURL is left empty and
// resolved from Env once all sources are applied.
func Default() *Config {
	return &Config{
		Env:            EnvProduction,
		DBPath:         defaultDBPath(),
		RequestTimeout: 30 * time.Second,
		LogLevel:       "warn",
	}
}

func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "lumina.db"
	}
	return filepath.Join(dir, "lumina", "lumina.db")
}

// BaseURLFor returns the backend base URL of a known environment.
func BaseURLFor(env string) string {
	if env == EnvLocal {
		return LocalBaseURL
	}
	return ProductionBaseURL
}

// Load builds the configuration from defaults, the JSON file, the
// environment and the flags in args (os.Args[1:]), in that order.
func Load(args []string) (*Config, error) {
	cfg := Default()

	if err := applyJSON(cfg, flagx.ConfigFileFlag(args)); err != nil {
		return nil, err
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := applyFlags(cfg, args); err != nil {
		return nil, err
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = BaseURLFor(cfg.Env)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
