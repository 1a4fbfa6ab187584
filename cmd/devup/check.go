package devup

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/devup/pkg/errors"
)

func newCheckCmd() *cobra.Command {
	var projectRoot string
	var format string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the bootstrap checks without changing anything",
		Long: `Check runs the same decision logic as setup but never touches the
filesystem. The exit code is non-zero when the interpreter version gate
fails; warnings alone leave it at zero.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := newEngine(projectRoot)
			if err != nil {
				return err
			}

			plan, err := engine.Decide()
			if err != nil {
				return err
			}

			if err := renderPlan(cmd.OutOrStdout(), plan, format); err != nil {
				return err
			}

			if !plan.VersionOK {
				return errors.Newf(errors.ErrVersionGate,
					"interpreter %s is below the supported minimum", plan.Version)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&projectRoot, "project-root", "", "Project root (default: discovered from git or cwd)")
	cmd.Flags().StringVar(&format, "format", formatText, "Plan output format (text, json, yaml)")

	return cmd
}
