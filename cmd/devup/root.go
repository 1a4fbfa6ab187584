package devup

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/devup/internal/version"
	"github.com/arthur-debert/devup/pkg/logging"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		dryRun    bool
	)

	rootCmd := &cobra.Command{
		Use:   "devup",
		Short: "Bootstrap a project's development environment",
		Long: `devup prepares a project for development: it checks that the
interpreter meets the minimum supported version, relocates the virtual
environment off filesystems without extended-attribute support (exFAT,
FAT32, NTFS), maintains the symlink that keeps tooling working after a
relocation, and warns when a git core.hooksPath override would bypass
the project's managed hooks.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Decide without touching the filesystem")

	rootCmd.AddCommand(newSetupCmd(&dryRun))
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
