// Package config loads devup configuration.
//
// Sources are merged in priority order: built-in defaults (embedded TOML),
// the user config file under the devup config directory (TOML or YAML),
// a project-local .devup.toml, and finally DEVUP_* environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/devup/pkg/errors"
)

// EnvPrefix is the prefix for environment overrides. A double underscore
// separates nesting levels so keys containing underscores survive, e.g.
// DEVUP_INTERPRETER__MIN_VERSION maps to interpreter.min_version.
const EnvPrefix = "DEVUP_"

// ProjectConfigFile is the project-local configuration file name.
const ProjectConfigFile = ".devup.toml"

// Config is the resolved devup configuration.
type Config struct {
	Interpreter InterpreterConfig `koanf:"interpreter" toml:"interpreter"`
	Relocate    RelocateConfig    `koanf:"relocate" toml:"relocate"`
	Project     ProjectConfig     `koanf:"project" toml:"project"`
}

// InterpreterConfig controls the version gate.
type InterpreterConfig struct {
	// Command is the interpreter binary queried for its version.
	Command string `koanf:"command" toml:"command"`

	// MinVersion is the lowest supported interpreter version, "major.minor".
	MinVersion string `koanf:"min_version" toml:"min_version"`
}

// RelocateConfig controls where relocated environments live.
type RelocateConfig struct {
	// Root overrides the relocation root. Empty means the default under
	// the devup data directory.
	Root string `koanf:"root" toml:"root"`
}

// ProjectConfig overrides project identity.
type ProjectConfig struct {
	// Name overrides the project name derived from the project root.
	Name string `koanf:"name" toml:"name"`

	// EnvDir is the project-local environment directory name.
	EnvDir string `koanf:"env_dir" toml:"env_dir"`
}

// Load resolves configuration for the given config directory and project
// root. Missing files are fine; a file that exists but does not parse is
// a CONFIG_PARSE error.
func Load(configDir, projectRoot string) (*Config, error) {
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load built-in defaults")
	}

	// 2. User config file, first match wins
	userConfigs := []struct {
		name   string
		parser koanf.Parser
	}{
		{"devup.toml", toml.Parser()},
		{"devup.yaml", yaml.Parser()},
		{"devup.yml", yaml.Parser()},
	}
	for _, uc := range userConfigs {
		path := filepath.Join(configDir, uc.name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), uc.parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse,
				"failed to parse config file %s", path)
		}
		break
	}

	// 3. Project-local config
	if projectRoot != "" {
		path := filepath.Join(projectRoot, ProjectConfigFile)
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse,
					"failed to parse project config %s", path)
			}
		}
	}

	// 4. Environment overrides
	if err := k.Load(env.Provider(EnvPrefix, ".", envKeyToConfigKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	return &cfg, nil
}

// envKeyToConfigKey maps DEVUP_SECTION__KEY_NAME to section.key_name.
func envKeyToConfigKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}
