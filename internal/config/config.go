// Package config loads and finalizes the service configuration from TOML
// files and UGC_* environment variables.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/zaffworks/ugcplug/pkg/database"
	"github.com/zaffworks/ugcplug/pkg/filestore"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvUGCEnv             = "UGC_ENV"
	EnvUGCShutdownTimeout = "UGC_SHUTDOWN_TIMEOUT"
	EnvUGCVersion         = "UGC_VERSION"
)

var databaseEnv = &database.Env{
	Host:            "UGC_DB_HOST",
	Port:            "UGC_DB_PORT",
	Name:            "UGC_DB_NAME",
	User:            "UGC_DB_USER",
	Password:        "UGC_DB_PASSWORD",
	SSLMode:         "UGC_DB_SSL_MODE",
	MaxOpenConns:    "UGC_DB_MAX_OPEN_CONNS",
	MaxIdleConns:    "UGC_DB_MAX_IDLE_CONNS",
	ConnMaxLifetime: "UGC_DB_CONN_MAX_LIFETIME",
	ConnTimeout:     "UGC_DB_CONN_TIMEOUT",
}

var filestoreEnv = &filestore.Env{
	Provider:         "UGC_FILESTORE_PROVIDER",
	Root:             "UGC_FILESTORE_ROOT",
	ContainerName:    "UGC_FILESTORE_CONTAINER_NAME",
	ConnectionString: "UGC_FILESTORE_CONNECTION_STRING",
}

// Config is the root configuration for the intake service.
type Config struct {
	Server          ServerConfig     `toml:"server"`
	Database        database.Config  `toml:"database"`
	FileStore       filestore.Config `toml:"filestore"`
	API             APIConfig        `toml:"api"`
	ShutdownTimeout string           `toml:"shutdown_timeout"`
	Version         string           `toml:"version"`
}

// Env returns the UGC_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvUGCEnv); env != "" {
		return env
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load reads the base config (if present), applies any environment overlay,
// and finalizes all values. If no config.toml exists, defaults and environment
// variables provide all configuration.
func Load() (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(BaseConfigFile); err == nil {
		loaded, err := load(BaseConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if path := overlayPath(); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.Database.Merge(&overlay.Database)
	c.FileStore.Merge(&overlay.FileStore)
	c.API.Merge(&overlay.API)
}

func (c *Config) finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Database.Finalize(databaseEnv); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.FileStore.Finalize(filestoreEnv); err != nil {
		return fmt.Errorf("filestore: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	return nil
}

func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvUGCShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvUGCVersion); v != "" {
		c.Version = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath() string {
	if env := os.Getenv(EnvUGCEnv); env != "" {
		path := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
