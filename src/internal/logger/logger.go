package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

type Fields map[string]any

const (
	FormatText = "text"
	FormatJSON = "json"
)

var log = logrus.New()

// Init configures the process logger. Console output belongs to the menu, so
// callers normally pass os.Stderr.
func Init(level string, format string, out io.Writer) error {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText:
		log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	case FormatJSON:
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unsupported log format %q", format)
	}

	log.SetLevel(parsed)
	if out != nil {
		log.SetOutput(out)
	}

	return nil
}

func Debug(message string, fields Fields) {
	log.WithFields(logrus.Fields(fields)).Debug(message)
}

func Info(message string, fields Fields) {
	log.WithFields(logrus.Fields(fields)).Info(message)
}

func Warn(message string, fields Fields) {
	log.WithFields(logrus.Fields(fields)).Warn(message)
}

func Error(message string, err error, fields Fields) {
	base := Fields{}
	for k, v := range fields {
		base[k] = v
	}
	if err != nil {
		base["error"] = err.Error()
	}

	log.WithFields(logrus.Fields(base)).Error(message)
}
