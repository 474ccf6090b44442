package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New initializes the logger used for row warnings and debug output.
// Unknown levels fall back to info.
func New(level string, out io.Writer) *logrus.Logger {
	logger := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	if out == nil {
		out = os.Stdout
	}
	logger.SetOutput(out)

	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})

	return logger
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
