package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by Load
const (
	EnvLogLevel  = "GOBOX_LOG_LEVEL"
	EnvLogFormat = "GOBOX_LOG_FORMAT"
	EnvEdition   = "GOBOX_EDITION"
	EnvMesh      = "GOBOX_MESH"
	EnvCache     = "GOBOX_CACHE"
	EnvWindow    = "GOBOX_WINDOW"
)

var envVars = []string{
	EnvLogLevel,
	EnvLogFormat,
	EnvEdition,
	EnvMesh,
	EnvCache,
	EnvWindow,
}

type Config struct {
	values map[string]string
}

// Load reads the given .env files (".env" when none are named) and then the
// process environment. Missing .env files are ignored; variables already set
// in the environment win over the file.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{
		values: make(map[string]string),
	}
	cfg.loadFromEnv()
	return cfg, nil
}

func (c *Config) loadFromEnv() {
	for _, envVar := range envVars {
		if value := os.Getenv(envVar); value != "" {
			c.values[envVar] = value
		}
	}
}

func (c *Config) GetString(key, defaultValue string) string {
	if value, exists := c.values[key]; exists {
		return value
	}
	return defaultValue
}

func (c *Config) GetFloat(key string, defaultValue float64) float64 {
	if value, exists := c.values[key]; exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func (c *Config) GetBool(key string, defaultValue bool) bool {
	if value, exists := c.values[key]; exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// LogLevel returns the zap level name, "info" by default
func (c *Config) LogLevel() string { return c.GetString(EnvLogLevel, "info") }

// LogFormat returns "console" (default) or "json"
func (c *Config) LogFormat() string { return c.GetString(EnvLogFormat, "console") }

// Edition returns the AS5100.6 edition name, "2017" by default
func (c *Config) Edition() string { return c.GetString(EnvEdition, "2017") }

// Mesh returns the mesh preset name, "fine" by default
func (c *Config) Mesh() string { return c.GetString(EnvMesh, "fine") }

// Cache reports whether solves are memoized, true by default
func (c *Config) Cache() bool { return c.GetBool(EnvCache, true) }

// Window returns the sampling window half-width override, 0 when unset
func (c *Config) Window() float64 { return c.GetFloat(EnvWindow, 0) }
