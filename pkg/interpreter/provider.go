package interpreter

import (
	"os/exec"
	"strings"
	"unicode"

	"github.com/arthur-debert/devup/pkg/errors"
	"github.com/arthur-debert/devup/pkg/logging"
)

// DefaultCommand is the interpreter queried when config does not name one.
const DefaultCommand = "python3"

// Provider reports the detected interpreter version string.
type Provider interface {
	Version() (string, error)
}

// commandProvider invokes the configured interpreter with a version query.
type commandProvider struct {
	command string
}

// NewCommandProvider creates a Provider that runs `<command> --version`.
func NewCommandProvider(command string) Provider {
	if command == "" {
		command = DefaultCommand
	}
	return &commandProvider{command: command}
}

func (c *commandProvider) Version() (string, error) {
	logger := logging.GetLogger("interpreter")
	logging.LogCommand(c.command, []string{"--version"})

	// Older interpreters print the version banner to stderr.
	out, err := exec.Command(c.command, "--version").CombinedOutput()
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrVersionQuery,
			"failed to query %s for its version", c.command)
	}

	raw := extractVersion(string(out))
	if raw == "" {
		return "", errors.Newf(errors.ErrVersionQuery,
			"could not find a version number in %q", strings.TrimSpace(string(out)))
	}

	logger.Debug().Str("command", c.command).Str("version", raw).Msg("Interpreter version detected")
	return raw, nil
}

// extractVersion pulls the dotted version token out of a banner such as
// "Python 3.12.3".
func extractVersion(banner string) string {
	for _, field := range strings.Fields(banner) {
		if field == "" {
			continue
		}
		if unicode.IsDigit(rune(field[0])) && strings.Contains(field, ".") {
			return field
		}
	}
	return ""
}
