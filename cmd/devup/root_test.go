package devup

import (
	"bytes"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func TestRootHasExpectedCommands(t *testing.T) {
	root := NewRootCmd()

	names := make(map[string]bool)
	for _, cmd := range root.Commands() {
		names[cmd.Name()] = true
	}

	for _, expected := range []string{"setup", "check", "genconfig", "version"} {
		assert.True(t, names[expected], "missing command %q", expected)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "devup version")
	assert.Contains(t, out, "commit:")
}

func TestGenConfigPrintsStarter(t *testing.T) {
	out, err := executeCommand(t, "genconfig")
	require.NoError(t, err)
	assert.Contains(t, out, "[interpreter]")
	assert.Contains(t, out, "min_version")
}

func TestCheckRunsAgainstRealProject(t *testing.T) {
	if _, err := exec.LookPath("python3"); err != nil {
		t.Skip("python3 not available")
	}

	projectRoot := t.TempDir()
	t.Setenv("DEVUP_DATA_DIR", t.TempDir())
	t.Setenv("DEVUP_CONFIG_DIR", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	out, err := executeCommand(t, "check", "--project-root", projectRoot, "--format", "json")
	// The gate outcome depends on the host's python3; either way the
	// plan must have been rendered before any gate error is returned.
	assert.Contains(t, out, "\"project\"")
	if err != nil {
		assert.Contains(t, err.Error(), "minimum")
	}
}

func TestSetupDryRunDoesNotTouchFilesystem(t *testing.T) {
	if _, err := exec.LookPath("python3"); err != nil {
		t.Skip("python3 not available")
	}

	projectRoot := t.TempDir()
	envRoot := t.TempDir()
	t.Setenv("DEVUP_ENV_ROOT", envRoot)
	t.Setenv("DEVUP_CONFIG_DIR", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	// Gate cannot fail the dry-run assertion regardless of host python.
	t.Setenv("DEVUP_INTERPRETER__MIN_VERSION", "3.0")

	_, err := executeCommand(t, "setup", "--dry-run", "--project-root", projectRoot)
	require.NoError(t, err)
}
