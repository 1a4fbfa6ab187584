// Package symlink inspects and maintains the link that stands in for a
// relocated virtual environment.
package symlink

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/arthur-debert/devup/pkg/errors"
	"github.com/arthur-debert/devup/pkg/logging"
	"github.com/arthur-debert/devup/pkg/types"
)

// Kind classifies what is found at an inspected path.
type Kind int

const (
	// KindAbsent means nothing exists at the path.
	KindAbsent Kind = iota

	// KindDirectory means the path is a plain directory.
	KindDirectory

	// KindSymlink means the path is a symlink; symlink wins over directory
	// even when the link target is a directory.
	KindSymlink
)

// String returns the kind name for logging and display.
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindDirectory:
		return "directory"
	case KindSymlink:
		return "symlink"
	default:
		return "unknown"
	}
}

// State is the result of inspecting a path. Target is set only for
// symlinks and carries the immediate link target, never the recursively
// resolved one.
type State struct {
	Kind   Kind
	Target string
}

// tmpSeq disambiguates temp link names within one process.
var tmpSeq atomic.Uint64

// Resolver inspects and replaces symlinks through a types.FS.
type Resolver struct {
	fs types.FS
}

// NewResolver creates a Resolver on the given filesystem.
func NewResolver(fs types.FS) *Resolver {
	return &Resolver{fs: fs}
}

// Inspect classifies the path as absent, a directory, or a symlink.
//
// Inspection is read-only and is not cached: the filesystem can change
// between bootstrap runs. A path that exists but is neither a directory
// nor a symlink (e.g. a regular file squatting on the environment path)
// is an error, because no safe automatic action exists for it.
func (r *Resolver) Inspect(path string) (State, error) {
	info, err := r.fs.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return State{Kind: KindAbsent}, nil
		}
		return State{}, errors.Wrapf(err, errors.ErrFileAccess,
			"failed to inspect %s", path)
	}

	if info.Mode()&os.ModeSymlink != 0 {
		target, err := r.fs.Readlink(path)
		if err != nil {
			return State{}, errors.Wrapf(err, errors.ErrFileAccess,
				"failed to read link target of %s", path)
		}
		return State{Kind: KindSymlink, Target: target}, nil
	}

	if info.IsDir() {
		return State{Kind: KindDirectory}, nil
	}

	return State{}, errors.Newf(errors.ErrInvalidInput,
		"%s exists but is neither a directory nor a symlink", path)
}

// Replace points linkPath at target, atomically.
//
// The target must already exist: the old link is only ever replaced by a
// rename of a fully created new link, so a crash mid-operation leaves
// either the previous entry or the new link in place, never neither.
// Replacing a link that already points at target is a no-op, which keeps
// repeated bootstrap runs idempotent. A plain directory at linkPath is
// never clobbered; moving it aside is the caller's job.
func (r *Resolver) Replace(linkPath, target string) error {
	logger := logging.GetLogger("symlink")

	if _, err := r.fs.Stat(target); err != nil {
		return errors.Wrapf(err, errors.ErrSymlinkReplace,
			"link target %s does not exist", target)
	}

	state, err := r.Inspect(linkPath)
	if err != nil {
		return errors.Wrap(err, errors.ErrSymlinkReplace, "failed to inspect link path")
	}

	switch state.Kind {
	case KindSymlink:
		if state.Target == target {
			logger.Debug().Str("link", linkPath).Str("target", target).
				Msg("Link already correct, nothing to do")
			return nil
		}
	case KindDirectory:
		return errors.Newf(errors.ErrSymlinkReplace,
			"%s is a directory; refusing to replace it with a link", linkPath)
	}

	// Create under a temporary name in the same directory, then rename
	// into place. Rename over an existing symlink is atomic, and the
	// pid+sequence suffix keeps concurrent invocations off each other's
	// temp entries.
	tmpPath := filepath.Join(filepath.Dir(linkPath), fmt.Sprintf(".%s.devup-%d-%d",
		filepath.Base(linkPath), os.Getpid(), tmpSeq.Add(1)))

	if err := r.fs.Symlink(target, tmpPath); err != nil {
		return errors.Wrapf(err, errors.ErrSymlinkReplace,
			"failed to create link at %s", tmpPath)
	}
	if err := r.fs.Rename(tmpPath, linkPath); err != nil {
		_ = r.fs.Remove(tmpPath)
		return errors.Wrapf(err, errors.ErrSymlinkReplace,
			"failed to move link into place at %s", linkPath)
	}

	logger.Info().Str("link", linkPath).Str("target", target).Msg("Link replaced")
	return nil
}
