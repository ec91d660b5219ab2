package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvframe/frame"
)

func newShowCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show FILE.csv",
		Short: "Print the first rows of a CSV file as a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.read(cmd, args[0])
			if err != nil {
				return err
			}
			mode, err := frame.ParseWidthMode(a.v.GetString("render.width_mode"))
			if err != nil {
				return err
			}

			return f.Print(cmd.OutOrStdout(), a.v.GetInt("render.rows"), frame.WithWidthMode(mode))
		},
	}
	cmd.Flags().IntP("rows", "n", 0, "number of rows to print (default from config)")
	cmd.Flags().String("width", "", "width mode: codepoints, graphemes, cells")
	a.bind(cmd.Flags(), map[string]string{
		"render.rows":       "rows",
		"render.width_mode": "width",
	})

	return cmd
}
