package config

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// SetupLogging applies the configured level and format to the standard
// logrus logger. An unknown level falls back to info and an unknown format
// to text; the returned error names whatever was ignored.
func SetupLogging(cfg Config) error {
	var errs []error

	switch cfg.LogFormat {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		errs = append(errs, fmt.Errorf("unknown log format %q, using text", cfg.LogFormat))
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
		errs = append(errs, fmt.Errorf("log level: %w, using info", err))
	}
	logrus.SetLevel(level)

	return errors.Join(errs...)
}
