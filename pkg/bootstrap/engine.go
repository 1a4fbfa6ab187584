// Package bootstrap orchestrates the environment setup decision.
//
// The engine runs the checks in a fixed order (classify filesystem,
// decide relocation, inspect the environment link, gate the interpreter
// version, read the hooks-path override) and assembles a single Plan.
// The checks are independent of each other; the order only matters for
// producing one combined report.
package bootstrap

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/devup/pkg/errors"
	"github.com/arthur-debert/devup/pkg/fsinfo"
	"github.com/arthur-debert/devup/pkg/interpreter"
	"github.com/arthur-debert/devup/pkg/logging"
	"github.com/arthur-debert/devup/pkg/relocate"
	"github.com/arthur-debert/devup/pkg/symlink"
	"github.com/arthur-debert/devup/pkg/types"
)

// HooksInspector reads the effective git hooks-path override.
type HooksInspector interface {
	HooksPath() (string, bool, error)
}

// Options configures one bootstrap run.
type Options struct {
	// WorkDir is the path whose backing mount gets classified, normally
	// the project root.
	WorkDir string

	// EnvDir is the project-local virtual environment path, the one that
	// becomes a symlink when the environment is relocated.
	EnvDir string

	// ProjectName names the relocation target subdirectory.
	ProjectName string

	// Requirement is the minimum interpreter version.
	Requirement interpreter.Requirement
}

// Engine runs the bootstrap checks and applies the resulting plan.
type Engine struct {
	fs       types.FS
	fsProbe  fsinfo.Provider
	interp   interpreter.Provider
	hooks    HooksInspector
	planner  *relocate.Planner
	resolver *symlink.Resolver
	opts     Options
	logger   zerolog.Logger
}

// New creates an Engine. All collaborators are injected so the decision
// logic tests with fakes.
func New(fs types.FS, fsProbe fsinfo.Provider, interp interpreter.Provider,
	hooks HooksInspector, planner *relocate.Planner, opts Options) *Engine {
	return &Engine{
		fs:       fs,
		fsProbe:  fsProbe,
		interp:   interp,
		hooks:    hooks,
		planner:  planner,
		resolver: symlink.NewResolver(fs),
		opts:     opts,
		logger:   logging.GetLogger("bootstrap"),
	}
}

// Decide runs the checks in order and returns the plan.
//
// A version parse or query failure is fatal: the run cannot proceed with
// an unverifiable interpreter. A filesystem query failure and a failed
// git-config query are non-fatal and accumulate as warnings.
func (e *Engine) Decide() (*Plan, error) {
	plan := &Plan{Project: e.opts.ProjectName}

	// 1. Classify the filesystem backing the working directory.
	fstype, err := e.fsProbe.FSType(e.opts.WorkDir)
	if err != nil {
		plan.Tag = fsinfo.TagXattrCapable
		plan.Warnings = append(plan.Warnings, fmt.Sprintf(
			"could not determine the filesystem type of %s; assuming xattr support (%v)",
			e.opts.WorkDir, err))
		e.logger.Warn().Err(err).Str("path", e.opts.WorkDir).
			Msg("Filesystem query failed, assuming xattr-capable")
	} else {
		plan.FSType = fstype
		plan.Tag = fsinfo.Classify(fstype)
		if !fsinfo.Known(fstype) {
			plan.Warnings = append(plan.Warnings, fmt.Sprintf(
				"unrecognized filesystem type %q; assuming xattr support", fstype))
		}
	}
	e.logger.Debug().Str("fstype", plan.FSType).Str("tag", string(plan.Tag)).
		Msg("Filesystem classified")

	// 2. Relocation decision.
	relocation, err := e.planner.Plan(plan.Tag, e.opts.ProjectName)
	if err != nil {
		return nil, err
	}
	plan.Relocate = relocation.ShouldRelocate
	plan.TargetDir = relocation.TargetDir

	// 3. Environment link state.
	state, err := e.resolver.Inspect(e.opts.EnvDir)
	if err != nil {
		return nil, err
	}
	plan.EnvState = state.Kind.String()
	plan.EnvTarget = state.Target

	// 4. Interpreter version gate.
	raw, err := e.interp.Version()
	if err != nil {
		return nil, err
	}
	eval, err := e.opts.Requirement.Evaluate(raw)
	if err != nil {
		return nil, err
	}
	plan.Version = eval.Raw
	plan.VersionOK = eval.OK
	e.logger.Debug().Str("version", eval.Raw).Bool("ok", eval.OK).
		Str("minimum", e.opts.Requirement.String()).Msg("Interpreter gated")

	// 5. Hooks-path override.
	hooksPath, ok, err := e.hooks.HooksPath()
	if err != nil {
		plan.Warnings = append(plan.Warnings, fmt.Sprintf(
			"could not query git for core.hooksPath; treating it as unset (%v)", err))
		e.logger.Warn().Err(err).Msg("Git config query failed")
	} else if ok {
		plan.HooksOverride = hooksPath
		plan.Warnings = append(plan.Warnings, fmt.Sprintf(
			"git core.hooksPath is set to %q; managed hooks will be bypassed", hooksPath))
	}

	e.logger.Info().
		Bool("relocate", plan.Relocate).
		Bool("versionOK", plan.VersionOK).
		Int("warnings", len(plan.Warnings)).
		Msg("Bootstrap plan computed")
	return plan, nil
}

// Apply performs the relocation side effects the plan calls for. It is
// idempotent: applying the same plan against an already-correct link does
// nothing.
//
// First run against a plain environment directory: the directory is moved
// to the target (or aside, when a relocated environment already exists at
// the target), and only then is the local path pointed at the target.
// The old entry is removed strictly after the new target is confirmed to
// exist, so an interrupted run never strands the project without either
// the original directory or a valid link.
func (e *Engine) Apply(plan *Plan) error {
	if !plan.Relocate {
		e.logger.Debug().Msg("No relocation required, nothing to apply")
		return nil
	}

	if err := e.fs.MkdirAll(filepath.Dir(plan.TargetDir), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate,
			"failed to create relocation root %s", filepath.Dir(plan.TargetDir))
	}

	// Re-inspect at apply time; the filesystem may have changed since the
	// decision ran.
	state, err := e.resolver.Inspect(e.opts.EnvDir)
	if err != nil {
		return err
	}

	switch state.Kind {
	case symlink.KindSymlink:
		if state.Target == plan.TargetDir {
			e.logger.Debug().Str("link", e.opts.EnvDir).Msg("Environment already relocated")
			return nil
		}
		if _, err := e.fs.Stat(plan.TargetDir); err != nil {
			if mkErr := e.fs.MkdirAll(plan.TargetDir, 0755); mkErr != nil {
				return errors.Wrapf(mkErr, errors.ErrDirCreate,
					"failed to create environment target %s", plan.TargetDir)
			}
		}
		return e.resolver.Replace(e.opts.EnvDir, plan.TargetDir)

	case symlink.KindAbsent:
		if err := e.fs.MkdirAll(plan.TargetDir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate,
				"failed to create environment target %s", plan.TargetDir)
		}
		return e.resolver.Replace(e.opts.EnvDir, plan.TargetDir)

	case symlink.KindDirectory:
		if _, err := e.fs.Stat(plan.TargetDir); err != nil {
			// First relocation: adopt the existing environment wholesale.
			if err := e.moveTree(e.opts.EnvDir, plan.TargetDir); err != nil {
				return errors.Wrapf(err, errors.ErrEnvRelocate,
					"failed to move %s to %s", e.opts.EnvDir, plan.TargetDir)
			}
			e.logger.Info().Str("from", e.opts.EnvDir).Str("to", plan.TargetDir).
				Msg("Environment moved to relocation target")
		} else {
			// A relocated environment already exists; keep the local one
			// out of the way rather than merging or deleting it.
			backup := e.opts.EnvDir + ".pre-relocate"
			if err := e.fs.Rename(e.opts.EnvDir, backup); err != nil {
				return errors.Wrapf(err, errors.ErrEnvRelocate,
					"failed to move %s aside to %s", e.opts.EnvDir, backup)
			}
			e.logger.Warn().Str("backup", backup).
				Msg("Local environment moved aside; relocation target already exists")
		}
		return e.resolver.Replace(e.opts.EnvDir, plan.TargetDir)

	default:
		return errors.Newf(errors.ErrInternal,
			"unexpected environment state %q", state.Kind)
	}
}

// moveTree moves src to dst. The relocation target usually sits on a
// different filesystem than the environment being relocated, where a
// plain rename fails with EXDEV; in that case the tree is copied and
// the source removed only after the copy has fully succeeded, so an
// interrupted move never leaves the project without a complete
// environment on at least one side.
func (e *Engine) moveTree(src, dst string) error {
	err := e.fs.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !stderrors.Is(err, syscall.EXDEV) {
		return err
	}

	e.logger.Debug().Str("from", src).Str("to", dst).
		Msg("Cross-device move, copying instead")
	if err := e.copyTree(src, dst); err != nil {
		_ = e.fs.RemoveAll(dst)
		return err
	}
	return e.fs.RemoveAll(src)
}

// copyTree copies src to dst recursively, preserving permissions and
// symlinks. Virtual environments link their interpreter binary, so
// links are recreated, never followed.
func (e *Engine) copyTree(src, dst string) error {
	info, err := e.fs.Lstat(src)
	if err != nil {
		return err
	}

	switch {
	case info.Mode()&os.ModeSymlink != 0:
		target, err := e.fs.Readlink(src)
		if err != nil {
			return err
		}
		return e.fs.Symlink(target, dst)

	case info.IsDir():
		if err := e.fs.MkdirAll(dst, info.Mode().Perm()); err != nil {
			return err
		}
		entries, err := e.fs.ReadDir(src)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if err := e.copyTree(filepath.Join(src, entry.Name()),
				filepath.Join(dst, entry.Name())); err != nil {
				return err
			}
		}
		return nil

	default:
		data, err := e.fs.ReadFile(src)
		if err != nil {
			return err
		}
		return e.fs.WriteFile(dst, data, info.Mode().Perm())
	}
}
