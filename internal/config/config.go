// SPDX-License-Identifier: MIT

// Package config loads lvmat CLI settings from defaults, an optional YAML
// file, LVMAT_* environment variables and bound command-line flags, in
// increasing order of precedence.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix is prepended to every environment key: render.precision is read
// from LVMAT_RENDER_PRECISION.
const EnvPrefix = "LVMAT"

// Keys.
const (
	KeyLogLevel        = "log.level"
	KeyLogFormat       = "log.format"
	KeyRenderPrecision = "render.precision"
	KeyRenderCellWidth = "render.cellwidth"
	KeyRenderColor     = "render.color"
	KeyMatrixMaxCells  = "matrix.maxcells"
)

// Log formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Limits enforced by Validate.
const (
	MaxPrecision = 17
	MaxCellWidth = 64
)

// Config is the unmarshalled settings tree.
type Config struct {
	Log    Log    `mapstructure:"log"`
	Render Render `mapstructure:"render"`
	Matrix Matrix `mapstructure:"matrix"`
}

// Log selects the zap level and encoder.
type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Render mirrors render.Grid.
type Render struct {
	Precision int  `mapstructure:"precision"`
	CellWidth int  `mapstructure:"cellwidth"`
	Color     bool `mapstructure:"color"`
}

// Matrix carries engine options.
type Matrix struct {
	MaxCells int `mapstructure:"maxcells"`
}

// NewViper returns a viper instance with lvmat defaults and environment
// lookup installed. Flags are bound by the caller.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, FormatConsole)
	v.SetDefault(KeyRenderPrecision, 3)
	v.SetDefault(KeyRenderCellWidth, 10)
	v.SetDefault(KeyRenderColor, false)
	v.SetDefault(KeyMatrixMaxCells, 1<<26)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return v
}

// Load reads file (when non-empty) into v, unmarshals the merged settings and
// validates them.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", file)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if _, err := c.Log.ZapLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case FormatConsole, FormatJSON:
	default:
		return errors.Errorf("%s: unknown format %q (want %s or %s)", KeyLogFormat, c.Log.Format, FormatConsole, FormatJSON)
	}
	if c.Render.Precision < 0 || c.Render.Precision > MaxPrecision {
		return errors.Errorf("%s: %d out of range [0, %d]", KeyRenderPrecision, c.Render.Precision, MaxPrecision)
	}
	if c.Render.CellWidth < 1 || c.Render.CellWidth > MaxCellWidth {
		return errors.Errorf("%s: %d out of range [1, %d]", KeyRenderCellWidth, c.Render.CellWidth, MaxCellWidth)
	}
	if c.Matrix.MaxCells <= 0 {
		return errors.Errorf("%s: must be positive, got %d", KeyMatrixMaxCells, c.Matrix.MaxCells)
	}

	return nil
}

// ZapLevel parses Log.Level.
func (l Log) ZapLevel() (zapcore.Level, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return lvl, errors.Wrapf(err, "%s", KeyLogLevel)
	}
	return lvl, nil
}
