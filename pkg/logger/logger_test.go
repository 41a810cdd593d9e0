package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_Level(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	Init()
	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())

	t.Setenv("LOG_LEVEL", "nonsense")
	Init()
	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
}

func TestInit_LogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.log")
	t.Setenv("LOG_FILE", path)
	t.Setenv("LOG_FORMAT", "json")
	Init()

	Log.WithField("component", "test").Info("hello file")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"hello file"`)
	assert.Contains(t, string(b), `"component":"test"`)
}
