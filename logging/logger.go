// Package logging provides structured logging for the subway topology validator.
package logging

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with a small set of domain-specific helpers.
type Logger struct {
	*slog.Logger
	level slog.Level
}

// LogLevel represents different logging levels.
type LogLevel int

const (
	// LevelDebug provides detailed diagnostic information.
	LevelDebug LogLevel = iota
	// LevelInfo provides general informational messages.
	LevelInfo
	// LevelWarn provides warning messages for potentially problematic situations.
	LevelWarn
	// LevelError provides error messages for serious problems.
	LevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ToSlogLevel converts LogLevel to slog.Level.
func (l LogLevel) ToSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Config holds configuration for logger creation.
type Config struct {
	// Level sets the minimum log level.
	Level LogLevel
	// Format specifies the output format ("json" or "text").
	Format string
	// Output specifies the output destination.
	Output io.Writer
	// IncludeSource adds source code information to log entries.
	IncludeSource bool
}

// New creates a new structured logger with the specified configuration.
func New(config Config) *Logger {
	if config.Output == nil {
		config.Output = os.Stdout
	}
	if config.Format == "" {
		config.Format = "text"
	}

	opts := &slog.HandlerOptions{
		Level:     config.Level.ToSlogLevel(),
		AddSource: config.IncludeSource,
	}

	var handler slog.Handler
	switch config.Format {
	case "json":
		handler = slog.NewJSONHandler(config.Output, opts)
	default:
		handler = slog.NewTextHandler(config.Output, opts)
	}

	return &Logger{
		Logger: slog.New(handler).With("component", "subway-topology-validator"),
		level:  config.Level.ToSlogLevel(),
	}
}

// NewDefault creates a logger with sensible defaults.
func NewDefault() *Logger {
	return New(Config{Level: LevelInfo, Format: "text"})
}

// WithCity returns a logger tagged with the city under validation.
func (l *Logger) WithCity(name string) *Logger {
	return &Logger{l.With("city", name), l.level}
}

// WithError returns a logger with error context.
func (l *Logger) WithError(err error) *Logger {
	return &Logger{l.With("error", err.Error()), l.level}
}

// IsLevelEnabled checks if a log level is enabled.
func (l *Logger) IsLevelEnabled(level LogLevel) bool {
	return l.level <= level.ToSlogLevel()
}

// ExtractionStart logs the start of a per-city route extraction pass.
func (l *Logger) ExtractionStart(city string, elementCount int) {
	l.Info("starting route extraction",
		"city", city,
		"elements", elementCount,
		"timestamp", time.Now().Format(time.RFC3339),
	)
}

// ExtractionComplete logs the completion of a per-city route extraction pass.
func (l *Logger) ExtractionComplete(city string, duration time.Duration, stations, routes int) {
	l.Info("route extraction completed",
		"city", city,
		"duration_ms", duration.Milliseconds(),
		"stations", stations,
		"routes", routes,
	)
}

// ValidationComplete logs the completion of a per-city validation pass.
func (l *Logger) ValidationComplete(city string, isGood bool, errorCount, warningCount int) {
	l.Info("validation completed",
		"city", city,
		"is_good", isGood,
		"errors", errorCount,
		"warnings", warningCount,
	)
}

// Global default logger instance for convenience.
var defaultLogger = NewDefault()

// SetDefault sets the global default logger.
func SetDefault(logger *Logger) {
	defaultLogger = logger
}

// Default returns the global default logger.
func Default() *Logger {
	return defaultLogger
}
