package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/dash/internal/history"
	"github.com/renato0307/dash/internal/logging"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DASH_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, history.DefaultCapacity, cfg.History.Capacity)
	assert.Equal(t, BackendFile, cfg.History.Backend)
	assert.Equal(t, history.DefaultRedisKey, cfg.History.Redis.Key)
	assert.Equal(t, "charm", cfg.UI.Theme)
	assert.Equal(t, "{", cfg.UI.DashKey)
	assert.Equal(t, "", cfg.Log.File)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
menu: /etc/dash/menu.yaml
history:
  capacity: 7
  backend: redis
  redis:
    addr: cache:6379
    db: 2
    key: team:history
ui:
  theme: dracula
  dash_key: ";"
log:
  file: /tmp/dash.log
  level: debug
  format: json
  max_size_mb: 5
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/etc/dash/menu.yaml", cfg.Menu)
	assert.Equal(t, 7, cfg.History.Capacity)
	assert.Equal(t, BackendRedis, cfg.History.Backend)
	assert.Equal(t, RedisConfig{Addr: "cache:6379", DB: 2, Key: "team:history"}, cfg.History.Redis)
	assert.Equal(t, UIConfig{Theme: "dracula", DashKey: ";"}, cfg.UI)

	logCfg := cfg.Logging()
	assert.Equal(t, "/tmp/dash.log", logCfg.FilePath)
	assert.Equal(t, slog.LevelDebug, logCfg.Level)
	assert.Equal(t, logging.FormatJSON, logCfg.Format)
	assert.Equal(t, 5, logCfg.MaxSizeMB)
	assert.Equal(t, 3, logCfg.MaxBackups)

	assert.Equal(t, history.Config{Capacity: 7}, cfg.HistoryStore())
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "history:\n  capacity: 7\n")
	t.Setenv("DASH_HISTORY_CAPACITY", "12")
	t.Setenv("DASH_MENU", "menu.json")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.History.Capacity)
	assert.Equal(t, "menu.json", cfg.Menu)
}

func TestLoad_ConfigFromEnv(t *testing.T) {
	t.Setenv("DASH_CONFIG", writeConfig(t, "ui:\n  theme: nord\n"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "nord", cfg.UI.Theme)
}

func TestLoad_CapacityClamped(t *testing.T) {
	tests := []struct {
		capacity string
		want     int
	}{
		{"0", 1},
		{"-5", 1},
		{"1", 1},
		{"99", 99},
		{"100", 99},
		{"1000", 99},
	}

	for _, tt := range tests {
		t.Run(tt.capacity, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, "history:\n  capacity: "+tt.capacity+"\n"))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.History.Capacity)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{
			name: "explicit file missing",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing.yaml") },
		},
		{
			name: "invalid yaml",
			path: func(t *testing.T) string { return writeConfig(t, "history: [\n") },
		},
		{
			name: "unknown backend",
			path: func(t *testing.T) string { return writeConfig(t, "history:\n  backend: sqlite\n") },
		},
		{
			name: "capacity not a number",
			path: func(t *testing.T) string { return writeConfig(t, "history:\n  capacity: lots\n") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path(t))
			assert.Error(t, err)
		})
	}
}

func TestClampCapacity(t *testing.T) {
	assert.Equal(t, history.MinCapacity, ClampCapacity(-1))
	assert.Equal(t, 42, ClampCapacity(42))
	assert.Equal(t, history.MaxCapacity, ClampCapacity(500))
}
