// Package relocate decides whether a project's virtual environment must
// move off its current filesystem and where it goes.
package relocate

import (
	"path/filepath"

	"github.com/arthur-debert/devup/pkg/errors"
	"github.com/arthur-debert/devup/pkg/fsinfo"
)

// Plan is the relocation decision for one project. TargetDir is only
// meaningful when ShouldRelocate is true.
type Plan struct {
	ShouldRelocate bool
	TargetDir      string
}

// Planner computes relocation plans against a fixed relocation root.
type Planner struct {
	root string
}

// NewPlanner creates a Planner rooted at the given directory, typically
// paths.EnvRoot().
func NewPlanner(root string) *Planner {
	return &Planner{root: root}
}

// Root returns the relocation root.
func (p *Planner) Root() string {
	return p.root
}

// Plan decides relocation for a project on a filesystem with the given
// capability tag.
//
// Relocation happens iff the tag is non-xattr. The target is the
// relocation root joined with the project name and nothing else: the
// mapping is a pure function of the name, so re-running bootstrap on an
// already relocated project lands on the same target and becomes a no-op
// instead of piling up duplicates.
func (p *Planner) Plan(tag fsinfo.Tag, projectName string) (Plan, error) {
	if projectName == "" {
		return Plan{}, errors.New(errors.ErrInvalidInput, "project name is empty")
	}
	if projectName != filepath.Base(projectName) {
		return Plan{}, errors.Newf(errors.ErrInvalidInput,
			"project name %q must not contain path separators", projectName)
	}

	if tag != fsinfo.TagNonXattr {
		return Plan{ShouldRelocate: false}, nil
	}

	return Plan{
		ShouldRelocate: true,
		TargetDir:      filepath.Join(p.root, projectName),
	}, nil
}
