// Package githooks detects a git core.hooksPath override.
//
// A configured hooks path silently redirects hook execution away from the
// project-managed hooks directory, which defeats quality-gate enforcement.
// Detection is a pure read; nothing here mutates git configuration.
package githooks

import (
	"os/exec"
	"strings"

	"github.com/arthur-debert/devup/pkg/errors"
	"github.com/arthur-debert/devup/pkg/logging"
)

// Runner executes a command and returns its stdout. It exists so the
// inspection logic can be tested with fakes instead of a real git binary.
type Runner interface {
	Output(name string, args ...string) ([]byte, error)
}

// execRunner is the production Runner backed by os/exec.
type execRunner struct{}

func (execRunner) Output(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

// Inspector reads the effective core.hooksPath for the current repository.
type Inspector struct {
	runner Runner
}

// NewInspector creates an Inspector using the real git binary.
func NewInspector() *Inspector {
	return &Inspector{runner: execRunner{}}
}

// NewInspectorWithRunner creates an Inspector with a custom Runner.
func NewInspectorWithRunner(runner Runner) *Inspector {
	return &Inspector{runner: runner}
}

// HooksPath reads the effective core.hooksPath value.
//
// The configured path is returned verbatim with ok=true; no normalization
// is applied. A genuinely unset key and an override set to the empty
// string both report ok=false. A failing git command (git missing, not a
// repository) also reports ok=false but additionally returns a
// GIT_CONFIG_QUERY error so the caller can surface the fault as a warning
// instead of silently treating it as benign unset state.
func (i *Inspector) HooksPath() (string, bool, error) {
	logger := logging.GetLogger("githooks")
	logging.LogCommand("git", []string{"config", "--get", "core.hooksPath"})

	out, err := i.runner.Output("git", "config", "--get", "core.hooksPath")
	if err != nil {
		// git config --get exits 1 when the key is simply not set; that
		// is the common case, not a fault.
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
			logger.Debug().Msg("core.hooksPath is not set")
			return "", false, nil
		}
		return "", false, errors.Wrap(err, errors.ErrGitConfigQuery,
			"failed to query git config for core.hooksPath")
	}

	path := strings.TrimSpace(string(out))
	if path == "" {
		// An override set to the empty string is treated as unset.
		return "", false, nil
	}

	logger.Debug().Str("hooksPath", path).Msg("core.hooksPath override detected")
	return path, true, nil
}
