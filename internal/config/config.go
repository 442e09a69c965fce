// Package config loads application configuration from the environment.
package config

import "os"

const (
	defaultDBPath      = "./quotemill.db"
	defaultPort        = "8080"
	defaultState       = "NY"
	defaultLogLevel    = "info"
	defaultLogFormat   = "console"
	defaultEnvironment = "dev"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	DBPath       string
	Port         string
	DefaultState string
	LogLevel     string
	LogFormat    string
	Environment  string
}

// Load reads environment variables and returns a populated Config.
func Load() Config {
	// Best-effort: load local dev environment variables.
	// We don't fail if the file is missing; production should use real env injection.
	_ = loadDotEnv(".env")

	cfg := Config{
		DBPath:       os.Getenv("DB_PATH"),
		Port:         os.Getenv("PORT"),
		DefaultState: os.Getenv("DEFAULT_STATE"),
		LogLevel:     os.Getenv("LOG_LEVEL"),
		LogFormat:    os.Getenv("LOG_FORMAT"),
		Environment:  os.Getenv("APP_ENV"),
	}

	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.DefaultState == "" {
		cfg.DefaultState = defaultState
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = defaultLogFormat
	}
	if cfg.Environment == "" {
		cfg.Environment = defaultEnvironment
	}

	return cfg
}

// IsDev reports whether the app runs in development mode, where
// migrations and the rate-table seed are applied automatically at
// startup.
func (c Config) IsDev() bool {
	return c.Environment == "dev"
}
