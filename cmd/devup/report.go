package devup

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/devup/pkg/bootstrap"
	"github.com/arthur-debert/devup/pkg/errors"
	"github.com/arthur-debert/devup/pkg/style"
)

// Output formats for plan rendering
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// renderPlan writes the plan to w in the requested format.
func renderPlan(w io.Writer, plan *bootstrap.Plan, format string) error {
	switch format {
	case formatText:
		renderTextPlan(w, plan)
		return nil
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		defer func() { _ = enc.Close() }()
		return enc.Encode(plan)
	default:
		return errors.Newf(errors.ErrInvalidInput,
			"unknown output format %q (want text, json or yaml)", format)
	}
}

func renderTextPlan(w io.Writer, plan *bootstrap.Plan) {
	fmt.Fprintln(w, style.Render(style.TitleStyle, fmt.Sprintf("Bootstrap plan for %s", plan.Project)))

	fstype := plan.FSType
	if fstype == "" {
		fstype = "(unknown)"
	}
	fmt.Fprintf(w, "  filesystem:  %s (%s)\n", fstype, plan.Tag)

	if plan.Relocate {
		fmt.Fprintf(w, "  relocation:  required, target %s\n",
			style.Render(style.PathStyle, plan.TargetDir))
	} else {
		fmt.Fprintln(w, "  relocation:  not required")
	}

	env := plan.EnvState
	if plan.EnvTarget != "" {
		env = fmt.Sprintf("%s -> %s", env, plan.EnvTarget)
	}
	fmt.Fprintf(w, "  environment: %s\n", env)

	gate := style.Render(style.SuccessStyle, "ok")
	if !plan.VersionOK {
		gate = style.Render(style.ErrorStyle, "too old")
	}
	fmt.Fprintf(w, "  interpreter: %s (%s)\n", plan.Version, gate)

	if plan.HasHooksOverride() {
		fmt.Fprintf(w, "  git hooks:   %s\n",
			style.Render(style.WarningStyle, "overridden by "+plan.HooksOverride))
	} else {
		fmt.Fprintln(w, "  git hooks:   no override")
	}

	for _, warning := range plan.Warnings {
		fmt.Fprintf(w, "%s %s\n", style.Render(style.WarningStyle, "warning:"), warning)
	}
}
