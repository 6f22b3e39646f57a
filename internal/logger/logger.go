package logger

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// Init configures the process-wide logger. An empty logfilePath keeps
// output on stderr only; otherwise the file receives a JSON copy of
// every event.
func Init(logfilePath string, levelStr string) error {
	level := parseLevel(levelStr)
	zerolog.SetGlobalLevel(level)

	console := zerolog.ConsoleWriter{Out: os.Stderr}
	if logfilePath == "" {
		log = zerolog.New(console).With().Timestamp().Logger()
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(logfilePath), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(logfilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	log = zerolog.New(zerolog.MultiLevelWriter(console, f)).With().Timestamp().Logger()
	return nil
}

func parseLevel(levelStr string) zerolog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "none":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

func Debug(msg string, args ...any) {
	log.Debug().Msgf(msg, args...)
}

func Info(msg string, args ...any) {
	log.Info().Msgf(msg, args...)
}

func Warn(msg string, args ...any) {
	log.Warn().Msgf(msg, args...)
}

func Error(msg string, args ...any) {
	log.Error().Msgf(msg, args...)
}
