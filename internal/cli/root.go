// Package cli implements the lvframe command tree.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvframe/csvio"
	"github.com/katalvlaran/lvframe/frame"
	"github.com/katalvlaran/lvframe/internal/config"
	"github.com/katalvlaran/lvframe/internal/logging"
)

// app is the state shared by every command of one invocation.
type app struct {
	fs  afero.Fs
	v   *viper.Viper
	cfg *config.Config
}

// Option customizes NewRootCmd; used by tests to inject a filesystem.
type Option func(*app)

// WithFs makes every command read and write through fsys.
func WithFs(fsys afero.Fs) Option {
	return func(a *app) { a.fs = fsys }
}

// NewRootCmd builds the lvframe command tree.
func NewRootCmd(opts ...Option) *cobra.Command {
	a := &app{fs: afero.NewOsFs(), v: viper.New()}
	for _, opt := range opts {
		opt(a)
	}
	a.v.SetFs(a.fs)

	root := &cobra.Command{
		Use:   "lvframe",
		Short: "Inspect, merge and slice labeled CSV tables",
		Long: `lvframe loads CSV files into labeled frames (column keys and an
optional row index) and prints, merges or slices them.

Configuration is read from lvframe.yaml in the config directory or the
current directory, then LVFRAME_* environment variables, then flags.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringP("config", "c", "", "config file (default is "+config.ConfigDir()+"/"+config.FileName+".yaml)")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-format", "", "log format: text, json")
	pf.StringP("sep", "s", "", "field separator (one character)")
	pf.Bool("header", true, "first line holds column keys")
	pf.Bool("index", false, "first field of each line is the row label")

	a.bind(pf, map[string]string{
		"logging.level":    "log-level",
		"logging.format":   "log-format",
		"csv.separator":    "sep",
		"csv.header":       "header",
		"csv.index_column": "index",
	})

	root.AddCommand(
		newShowCmd(a),
		newMergeCmd(a),
		newSliceCmd(a),
		newConfigCmd(a),
	)

	return root
}

// Execute runs the command tree with ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// bind wires persistent flags to viper keys. Unchanged flags rank below
// file, environment and registered defaults.
func (a *app) bind(fs *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		_ = a.v.BindPFlag(key, fs.Lookup(name))
	}
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	if err := config.Init(a.v, cfgFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	log := logging.Setup(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
	cmd.SetContext(logging.NewContext(cmd.Context(), log))
	log.Debug("config loaded", "file", a.v.ConfigFileUsed())

	return nil
}

// csvOptions translates the loaded configuration into csvio options.
func (a *app) csvOptions(log *slog.Logger) ([]csvio.Option, error) {
	sep, err := a.cfg.CSV.SeparatorRune()
	if err != nil {
		return nil, err
	}

	return []csvio.Option{
		csvio.WithSeparator(sep),
		csvio.WithHeader(a.cfg.CSV.Header),
		csvio.WithIndexColumn(a.cfg.CSV.IndexColumn),
		csvio.WithLogger(log),
	}, nil
}

func (a *app) read(cmd *cobra.Command, path string) (*frame.Frame[string], error) {
	log := logging.FromContext(cmd.Context())
	opts, err := a.csvOptions(log)
	if err != nil {
		return nil, err
	}
	f, err := csvio.ReadFile(a.fs, path, opts...)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	log.Info("loaded", "path", path, "rows", f.Height(), "cols", f.Width())

	return f, nil
}

// emit writes f as CSV to out, or to stdout when out is empty.
func (a *app) emit(cmd *cobra.Command, f *frame.Frame[string], out string) error {
	log := logging.FromContext(cmd.Context())
	opts, err := a.csvOptions(log)
	if err != nil {
		return err
	}
	if out == "" {
		return csvio.Write(cmd.OutOrStdout(), f, opts...)
	}
	if err = csvio.WriteFile(a.fs, out, f, opts...); err != nil {
		return err
	}
	log.Info("written", "path", out, "rows", f.Height(), "cols", f.Width())

	return nil
}
