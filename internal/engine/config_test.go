package engine

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "server.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "seed: 777\nstart_level: 3\ntick_hz: 10\ncheats: true\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, int64(777), cfg.Seed)
	assert.Equal(t, 3, cfg.StartLevel)
	assert.Equal(t, 10, cfg.TickHz)
	assert.True(t, cfg.Cheats)
	// Не указанные в файле поля остаются по умолчанию
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "./replays", cfg.ReplayDir)
	assert.Equal(t, 100*time.Millisecond, cfg.TickInterval())
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("  ")
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.TickHz)
	assert.Equal(t, 0, cfg.StartLevel)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad tick rate", "tick_hz: 0\n", "tick_hz"},
		{"negative level", "start_level: -1\n", "start_level"},
		{"empty port", "port: \"\"\n", "port"},
		{"broken yaml", "seed: [1, 2\n", "server.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")
}
