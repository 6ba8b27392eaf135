// Package logging configures the logrus logger used by the bytesize CLI.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// EnvLevel names the environment variable consulted when no level flag is given.
const EnvLevel = "BYTESIZE_LOG_LEVEL"

// DefaultLevel keeps the CLI quiet unless something goes wrong.
const DefaultLevel = logrus.WarnLevel

// New returns a text logger writing to w at the given level. An empty level
// falls back to $BYTESIZE_LOG_LEVEL, then DefaultLevel.
func New(w io.Writer, level string) (*logrus.Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		QuoteEmptyFields: true,
	})

	if level == "" {
		level = os.Getenv(EnvLevel)
	}
	if strings.TrimSpace(level) == "" {
		logger.SetLevel(DefaultLevel)
		return logger, nil
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(lvl)
	return logger, nil
}
