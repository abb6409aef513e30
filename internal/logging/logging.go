// Package logging configures the process-wide logrus logger.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/home-listing/internal/config"
)

// Setup switches to JSON output in production and applies LOG_LEVEL. An
// unknown level falls back to info.
func Setup(cfg *config.Config) {
	logrus.SetOutput(os.Stdout)

	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.WithField("level", cfg.LogLevel).Warn("unknown log level, using info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
