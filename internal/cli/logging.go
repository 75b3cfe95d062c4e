// SPDX-License-Identifier: MIT

package cli

import (
	"io"

	"github.com/katalvlaran/lvmat/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds a zap logger writing to w. The console format uses the
// development encoder settings, json the production ones.
func newLogger(c config.Log, w io.Writer) (*zap.Logger, error) {
	lvl, err := c.ZapLevel()
	if err != nil {
		return nil, err
	}

	var enc zapcore.Encoder
	if c.Format == config.FormatJSON {
		enc = zapcore.NewJSONEncoder(zap.NewProductionConfig().EncoderConfig)
	} else {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentConfig().EncoderConfig)
	}

	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), lvl)), nil
}
