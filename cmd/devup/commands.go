package devup

import (
	"path/filepath"

	"github.com/arthur-debert/devup/pkg/bootstrap"
	"github.com/arthur-debert/devup/pkg/config"
	"github.com/arthur-debert/devup/pkg/errors"
	"github.com/arthur-debert/devup/pkg/filesystem"
	"github.com/arthur-debert/devup/pkg/fsinfo"
	"github.com/arthur-debert/devup/pkg/githooks"
	"github.com/arthur-debert/devup/pkg/interpreter"
	"github.com/arthur-debert/devup/pkg/paths"
	"github.com/arthur-debert/devup/pkg/relocate"
)

// newEngine wires the bootstrap engine from paths and configuration.
// projectRoot may be empty, in which case it is discovered from the
// environment (DEVUP_PROJECT_ROOT, the enclosing git repo, or the cwd).
func newEngine(projectRoot string) (*bootstrap.Engine, *paths.Paths, error) {
	p, err := paths.New(projectRoot)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(p.ConfigDir(), p.ProjectRoot())
	if err != nil {
		return nil, nil, err
	}

	projectName := cfg.Project.Name
	if projectName == "" {
		projectName = p.ProjectName()
	}

	envDir := cfg.Project.EnvDir
	if envDir == "" {
		envDir = paths.DefaultEnvDirName
	}
	if !filepath.IsAbs(envDir) {
		envDir = filepath.Join(p.ProjectRoot(), envDir)
	}

	envRoot := cfg.Relocate.Root
	if envRoot == "" {
		envRoot = p.EnvRoot()
	} else {
		envRoot = paths.ExpandHome(envRoot)
	}

	req, err := interpreter.ParseRequirement(cfg.Interpreter.MinVersion)
	if err != nil {
		return nil, nil, errors.Wrapf(err, errors.ErrConfigParse,
			"invalid interpreter.min_version %q", cfg.Interpreter.MinVersion)
	}

	engine := bootstrap.New(
		filesystem.NewOS(),
		fsinfo.NewOSProvider(),
		interpreter.NewCommandProvider(cfg.Interpreter.Command),
		githooks.NewInspector(),
		relocate.NewPlanner(envRoot),
		bootstrap.Options{
			WorkDir:     p.ProjectRoot(),
			EnvDir:      envDir,
			ProjectName: projectName,
			Requirement: req,
		},
	)

	return engine, p, nil
}
