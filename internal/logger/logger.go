package logger

import (
	"log/slog"
	"os"
	"sync"
)

var (
	defaultLogger *slog.Logger
	once          sync.Once
)

// Init initializes the default logger with a JSON handler writing to stderr,
// keeping stdout free for command output. It runs at most once; DEBUG or
// HASHLY_DEBUG in the environment lowers the level to Debug.
func Init() {
	once.Do(func() {
		level := slog.LevelInfo
		if os.Getenv("DEBUG") != "" || os.Getenv("HASHLY_DEBUG") != "" {
			level = slog.LevelDebug
		}
		defaultLogger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}))
		slog.SetDefault(defaultLogger)
	})
}

// Get returns the initialized default logger, initializing it if needed.
func Get() *slog.Logger {
	Init()
	return defaultLogger
}

// Info logs an informational message using the default logger.
func Info(msg string, args ...any) {
	Get().Info(msg, args...)
}

// Warn logs a warning message using the default logger.
func Warn(msg string, args ...any) {
	Get().Warn(msg, args...)
}

// Error logs an error message using the default logger.
func Error(msg string, err error, args ...any) {
	if err != nil {
		args = append(args, "error", err.Error())
	}
	Get().Error(msg, args...)
}

// Debug logs a debug message using the default logger.
func Debug(msg string, args ...any) {
	Get().Debug(msg, args...)
}
