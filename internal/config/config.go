// Package config holds the lvframe command configuration.
//
// Values come, in increasing precedence, from built-in defaults, an optional
// YAML file (lvframe.yaml), LVFRAME_* environment variables and command flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvframe/frame"
	"github.com/katalvlaran/lvframe/internal/logging"
)

// FileName is the config file base name searched in ConfigDir() and ".".
const FileName = "lvframe"

// EnvPrefix prefixes environment overrides, e.g. LVFRAME_CSV_SEPARATOR.
const EnvPrefix = "LVFRAME"

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid value")

// Config represents the complete lvframe configuration
type Config struct {
	CSV     CSVConfig     `mapstructure:"csv" yaml:"csv"`
	Render  RenderConfig  `mapstructure:"render" yaml:"render"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// CSVConfig controls CSV parsing and writing
type CSVConfig struct {
	// Separator is the single-character field separator (default: ",")
	Separator string `mapstructure:"separator" yaml:"separator"`
	// Header treats the first line as column keys
	Header bool `mapstructure:"header" yaml:"header"`
	// IndexColumn treats the first field of each line as the row label
	IndexColumn bool `mapstructure:"index_column" yaml:"index_column"`
}

// RenderConfig controls table output
type RenderConfig struct {
	// Rows is the number of rows printed by "show" (default: 5)
	Rows int `mapstructure:"rows" yaml:"rows"`
	// WidthMode is one of "codepoints", "graphemes", "cells"
	WidthMode string `mapstructure:"width_mode" yaml:"width_mode"`
}

// LoggingConfig controls diagnostic logging
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn", "error"
	Level string `mapstructure:"level" yaml:"level"`
	// Format is "text" or "json"
	Format string `mapstructure:"format" yaml:"format"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		CSV: CSVConfig{
			Separator:   ",",
			Header:      true,
			IndexColumn: false,
		},
		Render: RenderConfig{
			Rows:      frame.DefaultPrintRows,
			WidthMode: frame.DefaultWidthMode.String(),
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: logging.FormatText,
		},
	}
}

// SetDefaults registers every default on v
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("csv.separator", defaults.CSV.Separator)
	v.SetDefault("csv.header", defaults.CSV.Header)
	v.SetDefault("csv.index_column", defaults.CSV.IndexColumn)

	v.SetDefault("render.rows", defaults.Render.Rows)
	v.SetDefault("render.width_mode", defaults.Render.WidthMode)

	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
}

// Init prepares v: defaults, config file search path (or an explicit file)
// and environment binding. A missing config file is not an error.
func Init(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
	}

	return nil
}

// Load unmarshals v into a validated Config
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field that has a restricted domain
func (c *Config) Validate() error {
	if _, err := c.CSV.SeparatorRune(); err != nil {
		return err
	}
	if c.Render.Rows < 0 {
		return fmt.Errorf("render.rows %d: %w", c.Render.Rows, ErrInvalid)
	}
	if _, err := frame.ParseWidthMode(c.Render.WidthMode); err != nil {
		return fmt.Errorf("render.width_mode: %w: %w", ErrInvalid, err)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level %q: %w", c.Logging.Level, ErrInvalid)
	}
	switch strings.ToLower(c.Logging.Format) {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("logging.format %q: %w", c.Logging.Format, ErrInvalid)
	}

	return nil
}

// SeparatorRune returns the separator as a rune; it must be exactly one
// character and not a line break.
func (c CSVConfig) SeparatorRune() (rune, error) {
	r, size := utf8.DecodeRuneInString(c.Separator)
	if size == 0 || size != len(c.Separator) || r == utf8.RuneError || r == '\n' || r == '\r' {
		return 0, fmt.Errorf("csv.separator %q: %w", c.Separator, ErrInvalid)
	}

	return r, nil
}

// ConfigDir returns the lvframe config directory, honoring XDG_CONFIG_HOME
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "lvframe")
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "lvframe")
	}

	return filepath.Join(".", ".lvframe")
}

// WriteDefault writes the default configuration as YAML to path on fsys,
// creating parent directories. An existing file is left alone unless force is set.
func WriteDefault(fsys afero.Fs, path string, force bool) error {
	if !force {
		if ok, err := afero.Exists(fsys, path); err != nil {
			return fmt.Errorf("config: stat %s: %w", path, err)
		} else if ok {
			return fmt.Errorf("config: %s: %w", path, os.ErrExist)
		}
	}
	body, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err = fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: mkdir: %w", err)
	}

	return afero.WriteFile(fsys, path, body, 0o644)
}
