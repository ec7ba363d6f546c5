package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Cleanup(xdg.Reload)
			t.Setenv("XDG_STATE_HOME", tempDir)
			xdg.Reload()

			SetupLogger(tt.verbosity)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(tempDir, "contexthub", "contexthub.log")
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should be created at %s", logPath)
		})
	}
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
}

func TestLogFilePath(t *testing.T) {
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_STATE_HOME", "/custom/state")
	xdg.Reload()

	assert.Equal(t, filepath.Join("/custom/state", "contexthub", "contexthub.log"), LogFilePath())
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	saved := log.Logger
	t.Cleanup(func() { log.Logger = saved })
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)

	logger := GetLogger("linker")
	logger.Info().Msg("test message")

	assert.Contains(t, buf.String(), `"component":"linker"`)
	assert.Contains(t, buf.String(), "test message")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	done := LogOperationStart(logger, "materialize")
	require.Contains(t, buf.String(), "Operation started")

	done()
	assert.Contains(t, buf.String(), "Operation completed")
	assert.Contains(t, buf.String(), "duration")
}
