// Package logging builds logrus loggers for the command.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log formats.
const (
	TextFormat       = "text"
	JSONFormat       = "json"
	JSONPrettyFormat = "json-pretty"
)

// GetLevel converts level name to logrus level, empty name means info.
func GetLevel(level string) (logrus.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel, nil
	case "", "info":
		return logrus.InfoLevel, nil
	case "warn":
		return logrus.WarnLevel, nil
	case "error":
		return logrus.ErrorLevel, nil
	default:
		return logrus.DebugLevel, fmt.Errorf("invalid log level: %v", level)
	}
}

// GetFormatter returns logrus formatter for format name.
func GetFormatter(format string) (logrus.Formatter, error) {
	switch format {
	case "", TextFormat:
		return &logrus.TextFormatter{DisableTimestamp: true}, nil
	case JSONFormat:
		return &logrus.JSONFormatter{}, nil
	case JSONPrettyFormat:
		return &logrus.JSONFormatter{PrettyPrint: true}, nil
	default:
		return nil, fmt.Errorf("invalid log format: %v", format)
	}
}

// New creates a logger writing to w.
func New(w io.Writer, level, format string) (*logrus.Logger, error) {
	lvl, e := GetLevel(level)
	if e != nil {
		return nil, e
	}

	formatter, e := GetFormatter(format)
	if e != nil {
		return nil, e
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)
	logger.SetFormatter(formatter)
	return logger, nil
}
