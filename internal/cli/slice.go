package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvframe/frame"
)

func newSliceCmd(a *app) *cobra.Command {
	var (
		rows, cols string
		positional bool
		out        string
	)
	cmd := &cobra.Command{
		Use:   "slice FILE.csv",
		Short: "Extract an inclusive range of rows and/or columns",
		Example: `  lvframe slice prices.csv --index --rows 2024-01:2024-06
  lvframe slice prices.csv --cols open:close -o subset.csv
  lvframe slice prices.csv --positional --rows 0:9`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.read(cmd, args[0])
			if err != nil {
				return err
			}
			if rows != "" {
				if f, err = sliceAxis(rows, positional, f.SliceRows, f.SliceRowsByLabel); err != nil {
					return fmt.Errorf("rows %s: %w", rows, err)
				}
			}
			if cols != "" {
				if f, err = sliceAxis(cols, positional, f.SliceColumns, f.SliceColumnsByKey); err != nil {
					return fmt.Errorf("cols %s: %w", cols, err)
				}
			}

			return a.emit(cmd, f, out)
		},
	}
	cmd.Flags().StringVar(&rows, "rows", "", "row range FROM:TO (inclusive)")
	cmd.Flags().StringVar(&cols, "cols", "", "column range FROM:TO (inclusive)")
	cmd.Flags().BoolVar(&positional, "positional", false, "ranges are 0-based positions instead of labels")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output .csv file (default stdout)")

	return cmd
}

type (
	slicePos   = func(start, end int) (*frame.Frame[string], error)
	sliceLabel = func(start, end string) (*frame.Frame[string], error)
)

// sliceAxis parses FROM:TO and dispatches to the label or positional slicer.
func sliceAxis(rng string, positional bool, byPos slicePos, byLabel sliceLabel) (*frame.Frame[string], error) {
	from, to, ok := strings.Cut(rng, ":")
	if !ok {
		return nil, fmt.Errorf("want FROM:TO: %w", frame.ErrOutOfRange)
	}
	if !positional {
		return byLabel(from, to)
	}
	start, err := strconv.Atoi(from)
	if err != nil {
		return nil, err
	}
	end, err := strconv.Atoi(to)
	if err != nil {
		return nil, err
	}

	return byPos(start, end)
}
