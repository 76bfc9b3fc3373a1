package vkcontext

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger returns a text logger writing to w at the configured level.
// An unparsable level falls back to info.
func NewLogger(cfg Config, w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.Out = w
	log.Formatter = &logrus.TextFormatter{
		FullTimestamp: true,
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}
