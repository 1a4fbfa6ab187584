package bootstrap

import (
	"github.com/arthur-debert/devup/pkg/fsinfo"
)

// Plan is the immutable outcome of one bootstrap decision run. It is
// constructed once by the engine and passed onward, never mutated in
// place; the surrounding CLI decides from it whether to proceed,
// relocate, re-link, or abort.
type Plan struct {
	// Project is the project name the plan was computed for.
	Project string `json:"project" yaml:"project"`

	// FSType is the raw filesystem-type string, empty when the query failed.
	FSType string `json:"fstype" yaml:"fstype"`

	// Tag is the capability classification of FSType.
	Tag fsinfo.Tag `json:"tag" yaml:"tag"`

	// Relocate reports whether the environment must move.
	Relocate bool `json:"relocate" yaml:"relocate"`

	// TargetDir is the relocation target, empty when Relocate is false.
	TargetDir string `json:"target_dir,omitempty" yaml:"target_dir,omitempty"`

	// EnvState is the current state of the project-local environment
	// path: "absent", "directory" or "symlink".
	EnvState string `json:"env_state" yaml:"env_state"`

	// EnvTarget is the immediate link target when EnvState is "symlink".
	EnvTarget string `json:"env_target,omitempty" yaml:"env_target,omitempty"`

	// Version is the detected interpreter version string.
	Version string `json:"version" yaml:"version"`

	// VersionOK reports whether the version gate passed.
	VersionOK bool `json:"version_ok" yaml:"version_ok"`

	// HooksOverride is the configured core.hooksPath, empty when no
	// override is configured.
	HooksOverride string `json:"hooks_override,omitempty" yaml:"hooks_override,omitempty"`

	// Warnings collects the non-fatal findings of the run.
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// HasHooksOverride reports whether a core.hooksPath override was detected.
func (p *Plan) HasHooksOverride() bool {
	return p.HooksOverride != ""
}
