// Package interpreter validates the detected interpreter version against
// the minimum the tooling supports.
package interpreter

import (
	"fmt"
	"strconv"
	"strings"

	goversion "github.com/hashicorp/go-version"

	"github.com/arthur-debert/devup/pkg/errors"
)

// DefaultMinVersion is the lowest supported interpreter version. It is a
// policy constant, not a code constant: config and environment overrides
// change it without a rebuild.
const DefaultMinVersion = "3.12"

// Requirement is a minimum (major, minor) version requirement. The patch
// component of a detected version is ignored for gating purposes.
type Requirement struct {
	Major int
	Minor int
}

// Evaluation is the outcome of gating one detected version string.
type Evaluation struct {
	Raw   string
	Major int
	Minor int
	OK    bool
}

// ParseRequirement parses a "major.minor" requirement string.
func ParseRequirement(raw string) (Requirement, error) {
	major, minor, err := parseMajorMinor(raw)
	if err != nil {
		return Requirement{}, err
	}
	return Requirement{Major: major, Minor: minor}, nil
}

// MustRequirement is ParseRequirement for known-good literals.
func MustRequirement(raw string) Requirement {
	req, err := ParseRequirement(raw)
	if err != nil {
		panic(err)
	}
	return req
}

// String renders the requirement as "major.minor".
func (r Requirement) String() string {
	return fmt.Sprintf("%d.%d", r.Major, r.Minor)
}

// Evaluate gates a detected version string against the requirement.
//
// The string must be of the form "major.minor" or "major.minor.patch";
// a missing or non-numeric component is a hard VERSION_PARSE error, never
// a silent default. The gate fails when the detected (major, minor) sorts
// below the requirement; the patch component never influences the result.
func (r Requirement) Evaluate(raw string) (*Evaluation, error) {
	major, minor, err := parseMajorMinor(raw)
	if err != nil {
		return nil, err
	}

	detected, err := goversion.NewVersion(fmt.Sprintf("%d.%d", major, minor))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrVersionParse,
			"invalid interpreter version %q", raw)
	}
	minimum, err := goversion.NewVersion(r.String())
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrVersionParse,
			"invalid minimum version %q", r.String())
	}

	return &Evaluation{
		Raw:   strings.TrimSpace(raw),
		Major: major,
		Minor: minor,
		OK:    detected.GreaterThanOrEqual(minimum),
	}, nil
}

// parseMajorMinor extracts the major and minor components of a dotted
// version string. Both must be present and numeric.
func parseMajorMinor(raw string) (int, int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, 0, errors.New(errors.ErrVersionParse, "empty version string")
	}

	parts := strings.Split(trimmed, ".")
	if len(parts) < 2 {
		return 0, 0, errors.Newf(errors.ErrVersionParse,
			"version %q is missing a minor component", trimmed)
	}

	major, err := strconv.Atoi(parts[0])
	if err != nil || major < 0 {
		return 0, 0, errors.Newf(errors.ErrVersionParse,
			"version %q has a non-numeric major component", trimmed)
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil || minor < 0 {
		return 0, 0, errors.Newf(errors.ErrVersionParse,
			"version %q has a non-numeric minor component", trimmed)
	}

	return major, minor, nil
}
