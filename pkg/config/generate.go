package config

import (
	"strings"

	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/devup/pkg/errors"
)

const starterHeader = `# devup configuration.
# Place this file at $XDG_CONFIG_HOME/devup/devup.toml, or commit a
# project-local .devup.toml. Every value can also be set through a
# DEVUP_* environment variable, e.g. DEVUP_INTERPRETER__MIN_VERSION=3.13.

`

// Default returns the built-in configuration values.
func Default() Config {
	return Config{
		Interpreter: InterpreterConfig{
			Command:    "python3",
			MinVersion: "3.12",
		},
		Project: ProjectConfig{
			EnvDir: ".venv",
		},
	}
}

// GenerateStarter renders a commented starter configuration file.
func GenerateStarter() (string, error) {
	body, err := gotoml.Marshal(Default())
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render starter config")
	}

	var b strings.Builder
	b.WriteString(starterHeader)
	b.Write(body)
	return b.String(), nil
}
