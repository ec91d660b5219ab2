package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvframe/frame"
	"github.com/katalvlaran/lvframe/internal/logging"
)

func newMergeCmd(a *app) *cobra.Command {
	var (
		axisName string
		out      string
	)
	cmd := &cobra.Command{
		Use:   "merge A.csv B.csv",
		Short: "Concatenate two CSV files by rows or by columns",
		Long: `Concatenate B onto A.

With --axis rows, B's rows go beneath A's and both files must have the same
column keys. With --axis cols, B's columns go to the right of A's and both
files must have the same row index. Labels on the growing axis must stay unique.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			axis, err := parseAxis(axisName)
			if err != nil {
				return err
			}
			left, err := a.read(cmd, args[0])
			if err != nil {
				return err
			}
			right, err := a.read(cmd, args[1])
			if err != nil {
				return err
			}
			merged, err := frame.Merge(left, right, axis)
			if err != nil {
				return fmt.Errorf("merge %s %s: %w", args[0], args[1], err)
			}
			logging.FromContext(cmd.Context()).Debug("merged", "axis", axis, "rows", merged.Height(), "cols", merged.Width())

			return a.emit(cmd, merged, out)
		},
	}
	cmd.Flags().StringVarP(&axisName, "axis", "a", "rows", "rows (0) or cols (1)")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output .csv file (default stdout)")

	return cmd
}

func parseAxis(s string) (frame.Axis, error) {
	switch strings.ToLower(s) {
	case "0", "rows", "row":
		return frame.AxisRows, nil
	case "1", "cols", "columns", "col":
		return frame.AxisCols, nil
	default:
		return 0, fmt.Errorf("axis %q: %w", s, frame.ErrInvalidAxis)
	}
}
