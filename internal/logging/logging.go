// Package logging builds the application's zap logger. A full-screen TUI
// owns the terminal, so logs go to a file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects where and how much to log.
type Config struct {
	Enabled bool
	File    string // empty means DefaultFile
	Debug   bool
}

// DefaultFile returns the log path under the XDG state directory.
func DefaultFile(app string) string {
	return filepath.Join(xdg.StateHome, app, app+".log")
}

// New builds a JSON file logger. A disabled config yields a no-op logger.
func New(app string, cfg Config) (*zap.Logger, error) {
	if !cfg.Enabled && !cfg.Debug {
		return zap.NewNop(), nil
	}

	path := cfg.File
	if path == "" {
		path = DefaultFile(app)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	zc := zap.NewProductionConfig()
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.Sampling = nil
	if cfg.Debug {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.Named(app), nil
}
