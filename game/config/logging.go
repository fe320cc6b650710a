package config

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the logger for a run. Output goes to LogFile when set,
// otherwise to fallback. The returned close func releases the log file.
func NewLogger(o Options, fallback io.Writer) (*logrus.Logger, func() error, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetLevel(logrus.InfoLevel)
	if o.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	if o.LogFile == "" {
		logger.SetOutput(fallback)
		return logger, func() error { return nil }, nil
	}

	f, err := os.OpenFile(o.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	logger.SetOutput(f)

	return logger, f.Close, nil
}
