package devup

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/devup/pkg/config"
	"github.com/arthur-debert/devup/pkg/errors"
	"github.com/arthur-debert/devup/pkg/paths"
	"github.com/arthur-debert/devup/pkg/style"
)

func newGenConfigCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: "Print a starter configuration file",
		Long: `Genconfig prints a commented configuration file with the built-in
defaults. With --write it is saved to the devup config directory
instead, refusing to overwrite an existing file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			starter, err := config.GenerateStarter()
			if err != nil {
				return err
			}

			if !write {
				fmt.Fprint(cmd.OutOrStdout(), starter)
				return nil
			}

			p, err := paths.New("")
			if err != nil {
				return err
			}

			target := filepath.Join(p.ConfigDir(), "devup.toml")
			if _, err := os.Stat(target); err == nil {
				return errors.Newf(errors.ErrInvalidInput,
					"config file %s already exists", target)
			}
			if err := os.MkdirAll(p.ConfigDir(), 0755); err != nil {
				return errors.Wrapf(err, errors.ErrDirCreate,
					"failed to create config directory %s", p.ConfigDir())
			}
			if err := os.WriteFile(target, []byte(starter), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess,
					"failed to write config file %s", target)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", style.Render(style.PathStyle, target))
			return nil
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, "Write the file to the config directory instead of stdout")

	return cmd
}
