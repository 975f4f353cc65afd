package config

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger, set by InitLogger.
var Log *logrus.Logger

// NewLogger builds a logrus logger writing to out (stdout when nil) with the
// given level and format ("json" or "text").
func NewLogger(cfg LogConfig, out io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()

	if out == nil {
		out = os.Stdout
	}
	logger.SetOutput(out)

	switch cfg.Format {
	case "", "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	level := logrus.InfoLevel
	if cfg.Level != "" {
		parsed, err := logrus.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
		level = parsed
	}
	logger.SetLevel(level)

	return logger, nil
}

// InitLogger configures Log from cfg.
func InitLogger(cfg LogConfig) error {
	logger, err := NewLogger(cfg, os.Stdout)
	if err != nil {
		return err
	}
	Log = logger
	return nil
}
