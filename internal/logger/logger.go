// Package logger wraps zerolog for the application's diagnostic output.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFileName is the name of the rotated log file inside Config.Path.
const LogFileName = "yt-assistant.log"

// Logger wraps zerolog and owns the optional file rotator.
type Logger struct {
	zerolog.Logger
	rotator *lumberjack.Logger
}

// Config holds logger configuration.
type Config struct {
	Level      string
	Format     string // "console" or "json"
	Path       string // directory for log files, empty disables file output
	MaxSizeMB  int    // default: 10
	MaxBackups int    // default: 3
	MaxAgeDays int    // default: 14
}

// New creates a logger writing to stdout and, when Path is set, to a rotated file.
func New(cfg Config) *Logger {
	return newWithConsole(cfg, os.Stdout)
}

func newWithConsole(cfg Config, out io.Writer) *Logger {
	var consoleOutput io.Writer = out
	if cfg.Format != "json" {
		consoleOutput = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}

	var output io.Writer = consoleOutput
	var rotator *lumberjack.Logger

	if cfg.Path != "" {
		if err := os.MkdirAll(cfg.Path, 0755); err == nil {
			maxSize := cfg.MaxSizeMB
			if maxSize <= 0 {
				maxSize = 10
			}
			maxBackups := cfg.MaxBackups
			if maxBackups <= 0 {
				maxBackups = 3
			}
			maxAge := cfg.MaxAgeDays
			if maxAge <= 0 {
				maxAge = 14
			}

			rotator = &lumberjack.Logger{
				Filename:   filepath.Join(cfg.Path, LogFileName),
				MaxSize:    maxSize,
				MaxBackups: maxBackups,
				MaxAge:     maxAge,
				LocalTime:  true,
			}
			output = io.MultiWriter(consoleOutput, rotator)
		}
	}

	logger := zerolog.New(output).
		Level(parseLevel(cfg.Level)).
		With().
		Timestamp().
		Logger()

	return &Logger{Logger: logger, rotator: rotator}
}

// Close closes the log file if one is open.
func (l *Logger) Close() error {
	if l.rotator != nil {
		return l.rotator.Close()
	}
	return nil
}

// WithComponent returns a zerolog.Logger tagged with a component field.
func (l *Logger) WithComponent(component string) zerolog.Logger {
	return l.Logger.With().Str("component", component).Logger()
}

// parseLevel converts string level to zerolog.Level
func parseLevel(level string) zerolog.Level {
	switch level {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
