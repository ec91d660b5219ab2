package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvframe/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the lvframe configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [PATH]",
		Short: "Write the default configuration as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := filepath.Join(config.ConfigDir(), config.FileName+".yaml")
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.WriteDefault(a.fs, path, force); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := a.cfg
			_, err := fmt.Fprintf(cmd.OutOrStdout(),
				"csv.separator=%q\ncsv.header=%t\ncsv.index_column=%t\nrender.rows=%d\nrender.width_mode=%s\nlogging.level=%s\nlogging.format=%s\n",
				c.CSV.Separator, c.CSV.Header, c.CSV.IndexColumn, c.Render.Rows, c.Render.WidthMode, c.Logging.Level, c.Logging.Format)
			return err
		},
	}

	cmd.AddCommand(initCmd, showCmd)

	return cmd
}
