package logging

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggerVerbosityLevels(t *testing.T) {
	// Redirect the log file into a temp dir so tests don't touch the
	// user's state directory.
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	tests := []struct {
		verbosity int
		expected  zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{7, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		SetupLogger(tt.verbosity)
		assert.Equal(t, tt.expected, zerolog.GlobalLevel(),
			"verbosity %d", tt.verbosity)
	}
}

func TestGetLogger(t *testing.T) {
	logger := GetLogger("bootstrap")
	// A component logger must be usable without further setup.
	logger.Debug().Msg("component logger works")
}

func TestGetLogFilePathRespectsStateHome(t *testing.T) {
	stateDir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", stateDir)

	path := getLogFilePath()
	assert.Equal(t, filepath.Join(stateDir, "devup", "devup.log"), path)
}

func TestSetupLogFileCreatesParents(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "dir", "devup.log")
	f, err := setupLogFile(logPath)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.FileExists(t, logPath)
}
