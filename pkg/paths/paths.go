// Package paths provides centralized path handling for devup.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/devup/pkg/errors"
)

// Environment variable names
const (
	// EnvProjectRoot is the primary environment variable for the project location
	EnvProjectRoot = "DEVUP_PROJECT_ROOT"

	// EnvDataDir overrides the XDG data directory for devup
	EnvDataDir = "DEVUP_DATA_DIR"

	// EnvConfigDir overrides the XDG config directory for devup
	EnvConfigDir = "DEVUP_CONFIG_DIR"

	// EnvEnvRoot overrides the relocation root for virtual environments
	EnvEnvRoot = "DEVUP_ENV_ROOT"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
// IMPORTANT: These constants define devup's internal directory structure and
// are NOT user-configurable. They must remain consistent across installations
// so a relocated environment is always found at the same place.
const (
	// DevupDirName is the directory name for devup-specific files
	DevupDirName = "devup"

	// EnvsDirName is the subdirectory of the data dir holding relocated
	// virtual environments, one subdirectory per project
	EnvsDirName = "envs"

	// DefaultEnvDirName is the project-local virtual environment directory
	DefaultEnvDirName = ".venv"

	// LogFileName is the name of the log file
	LogFileName = "devup.log"
)

// Paths provides centralized path management for devup
type Paths struct {
	// projectRoot is the root directory of the project being bootstrapped
	projectRoot string

	// xdgData is the XDG data directory
	xdgData string

	// xdgConfig is the XDG config directory
	xdgConfig string

	// xdgState is the XDG state directory
	xdgState string

	// envRoot is the relocation root for virtual environments
	envRoot string

	// usedFallback indicates if we fell back to cwd (for warning display)
	usedFallback bool
}

// New creates a new Paths instance with the given project root.
// If projectRoot is empty, it will be determined from the environment:
// DEVUP_PROJECT_ROOT first, then the enclosing git repository, then the
// current working directory as a fallback.
func New(projectRoot string) (*Paths, error) {
	p := &Paths{}

	if projectRoot == "" {
		root, usedFallback, err := findProjectRoot()
		if err != nil {
			return nil, err
		}
		p.projectRoot = root
		p.usedFallback = usedFallback
	} else {
		p.projectRoot = ExpandHome(projectRoot)
		p.usedFallback = false
	}

	absRoot, err := filepath.Abs(p.projectRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for project root")
	}
	p.projectRoot = absRoot

	p.setupXDGDirs()

	return p, nil
}

// setupXDGDirs initializes XDG directories, respecting environment overrides
func (p *Paths) setupXDGDirs() {
	if dataDir := os.Getenv(EnvDataDir); dataDir != "" {
		p.xdgData = ExpandHome(dataDir)
	} else {
		p.xdgData = filepath.Join(xdg.DataHome, DevupDirName)
	}

	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.xdgConfig = ExpandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, DevupDirName)
	}

	// XDG state dir for logs
	if stateDir := os.Getenv("XDG_STATE_HOME"); stateDir != "" {
		p.xdgState = filepath.Join(stateDir, DevupDirName)
	} else {
		homeDir, _ := os.UserHomeDir()
		p.xdgState = filepath.Join(homeDir, ".local", "state", DevupDirName)
	}

	// Relocation root; must be a pure function of the environment so the
	// same project always maps to the same target directory.
	if envRoot := os.Getenv(EnvEnvRoot); envRoot != "" {
		p.envRoot = ExpandHome(envRoot)
	} else {
		p.envRoot = filepath.Join(p.xdgData, EnvsDirName)
	}
}

// findProjectRoot determines the project root using the following priority:
// 1. DEVUP_PROJECT_ROOT environment variable (if set)
// 2. Git repository root (found via 'git rev-parse --show-toplevel')
// 3. Current working directory (fallback)
//
// The returned bool reports whether the cwd fallback was used, so callers
// can surface a warning.
func findProjectRoot() (string, bool, error) {
	if root := os.Getenv(EnvProjectRoot); root != "" {
		return ExpandHome(root), false, nil
	}

	gitRoot, err := findGitRoot()
	if err == nil && gitRoot != "" {
		return gitRoot, false, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrFileAccess, "failed to get current directory")
	}

	return cwd, true, nil
}

// findGitRoot attempts to find the root of the current git repository
func findGitRoot() (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	output, err := cmd.Output()
	if err != nil {
		// Git command failed - not in a git repo or git not installed
		return "", err
	}

	gitRoot := strings.TrimSpace(string(output))
	if gitRoot == "" {
		return "", errors.New(errors.ErrNotFound, "git root is empty")
	}

	return gitRoot, nil
}

// ExpandHome expands ~ to the home directory
func ExpandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				// Can't expand, return as-is
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}

// ProjectRoot returns the root directory of the project being bootstrapped
func (p *Paths) ProjectRoot() string {
	return p.projectRoot
}

// ProjectName returns the project name derived from the project root
func (p *Paths) ProjectName() string {
	return filepath.Base(p.projectRoot)
}

// UsedFallback returns true if the current working directory was used as fallback
func (p *Paths) UsedFallback() bool {
	return p.usedFallback
}

// EnvDir returns the project-local virtual environment directory.
// This is the path that ends up as a symlink when the environment is
// relocated.
func (p *Paths) EnvDir() string {
	return filepath.Join(p.projectRoot, DefaultEnvDirName)
}

// DataDir returns the XDG data directory for devup
func (p *Paths) DataDir() string {
	return p.xdgData
}

// ConfigDir returns the XDG config directory for devup
func (p *Paths) ConfigDir() string {
	return p.xdgConfig
}

// StateDir returns the XDG state directory for devup
func (p *Paths) StateDir() string {
	return p.xdgState
}

// EnvRoot returns the relocation root for virtual environments
func (p *Paths) EnvRoot() string {
	return p.envRoot
}

// EnvTargetPath returns the relocation target for a project's environment.
// The mapping is a pure function of the project name: no timestamps, no
// random components, so repeated bootstrap runs are idempotent.
func (p *Paths) EnvTargetPath(projectName string) string {
	return filepath.Join(p.envRoot, projectName)
}

// LogFilePath returns the path to the devup log file
func (p *Paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// GetHomeDirectory returns the user's home directory with proper error handling
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		if home := os.Getenv(EnvHome); home != "" {
			return home, nil
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get home directory")
	}
	return homeDir, nil
}
