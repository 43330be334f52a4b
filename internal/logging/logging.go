// Package logging builds the zap logger shared by gaia commands.
package logging

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the level and encoder for New.
type Options struct {
	Level  string
	Format string
}

// New returns a logger writing to w. Every entry carries an invocation id so
// lines from one command run can be grouped.
func New(opts Options, w io.Writer) (*zap.Logger, error) {
	level := zapcore.WarnLevel
	if opts.Level != "" {
		parsed, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		level = parsed
	}

	var encoder zapcore.Encoder
	switch opts.Format {
	case "", "console":
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeTime = zapcore.RFC3339TimeEncoder
		encoder = zapcore.NewConsoleEncoder(cfg)
	case "json":
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	default:
		return nil, fmt.Errorf("unsupported log format %q (expected json|console)", opts.Format)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zap.NewAtomicLevelAt(level))
	return zap.New(core).With(zap.String("invocation", uuid.NewString())), nil
}
