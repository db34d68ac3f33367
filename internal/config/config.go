// Package config loads dash settings from a YAML file and DASH_ environment
// variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/renato0307/dash/internal/history"
	"github.com/renato0307/dash/internal/logging"
)

// Backend names accepted by history.backend.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Config holds application configuration.
type Config struct {
	Menu    string        `mapstructure:"menu"`
	History HistoryConfig `mapstructure:"history"`
	UI      UIConfig      `mapstructure:"ui"`
	Log     LogConfig     `mapstructure:"log"`
}

// HistoryConfig selects and sizes the history store.
type HistoryConfig struct {
	Capacity int         `mapstructure:"capacity"`
	Backend  string      `mapstructure:"backend"`
	Path     string      `mapstructure:"path"`
	Redis    RedisConfig `mapstructure:"redis"`
}

// RedisConfig holds the Redis history backend settings.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Key      string `mapstructure:"key"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme   string `mapstructure:"theme"`
	DashKey string `mapstructure:"dash_key"`
}

// LogConfig mirrors logging.Config.
type LogConfig struct {
	File       string `mapstructure:"file"`
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// DefaultPath returns the config file used when none is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".dash", "config.yaml")
	}
	return filepath.Join(dir, "dash", "config.yaml")
}

// Load reads configuration from path (or DASH_CONFIG, or the default
// location) and the environment. Env var overrides use prefix DASH_. A
// missing file is only an error when the path was given explicitly.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("menu", "")
	v.SetDefault("history.capacity", history.DefaultCapacity)
	v.SetDefault("history.backend", BackendFile)
	v.SetDefault("history.path", history.DefaultPath())
	v.SetDefault("history.redis.addr", "localhost:6379")
	v.SetDefault("history.redis.password", "")
	v.SetDefault("history.redis.db", 0)
	v.SetDefault("history.redis.key", history.DefaultRedisKey)
	v.SetDefault("ui.theme", "charm")
	v.SetDefault("ui.dash_key", "{")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)

	v.SetConfigType("yaml")

	explicit := path != ""
	if !explicit {
		path = os.Getenv("DASH_CONFIG")
		explicit = path != ""
	}
	if !explicit {
		path = DefaultPath()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix("DASH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
		if explicit || !missing {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.normalize(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// normalize clamps ranges and rejects unknown backends.
func (c *Config) normalize() error {
	c.History.Capacity = ClampCapacity(c.History.Capacity)

	c.History.Backend = strings.ToLower(strings.TrimSpace(c.History.Backend))
	switch c.History.Backend {
	case BackendFile, BackendRedis:
	default:
		return fmt.Errorf("unknown history backend %q (want %s or %s)", c.History.Backend, BackendFile, BackendRedis)
	}
	return nil
}

// ClampCapacity limits capacity to history.MinCapacity..history.MaxCapacity.
func ClampCapacity(capacity int) int {
	return min(max(capacity, history.MinCapacity), history.MaxCapacity)
}

// Logging returns the logging settings.
func (c Config) Logging() logging.Config {
	return logging.Config{
		FilePath:   c.Log.File,
		Level:      logging.ParseLevel(c.Log.Level),
		Format:     logging.ParseFormat(c.Log.Format),
		MaxSizeMB:  c.Log.MaxSizeMB,
		MaxBackups: c.Log.MaxBackups,
	}
}

// HistoryStore returns the history store settings.
func (c Config) HistoryStore() history.Config {
	return history.Config{Capacity: c.History.Capacity}
}
