package devup

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/devup/pkg/errors"
	"github.com/arthur-debert/devup/pkg/logging"
)

func newSetupCmd(dryRun *bool) *cobra.Command {
	var projectRoot string
	var format string

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Decide and apply the bootstrap plan",
		Long: `Setup runs the bootstrap checks and applies the outcome: when the
project lives on a filesystem without extended-attribute support, the
virtual environment is moved under the devup data directory and the
project-local path becomes a symlink to it.

Setup fails when the interpreter version cannot be verified or does not
meet the minimum; warnings (an unrecognized filesystem, a hooks-path
override) are reported without stopping.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.setup")

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

			if *dryRun {
				logger.Info().Msg("Dry run, skipping apply")
				return nil
			}

			if err := engine.Apply(plan); err != nil {
				return err
			}

			logger.Info().Msg("Setup finished")
			return nil
		},
	}

	cmd.Flags().StringVar(&projectRoot, "project-root", "", "Project root (default: discovered from git or cwd)")
	cmd.Flags().StringVar(&format, "format", formatText, "Plan output format (text, json, yaml)")

	return cmd
}
