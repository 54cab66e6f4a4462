package logger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/assoc/utils"
)

// SlogLogger implements Interface using the standard library slog package
type SlogLogger struct {
	Logger        *slog.Logger
	LogLevel      LogLevel
	SlowThreshold time.Duration
}

// NewSlogLogger creates a new logger using slog
func NewSlogLogger(logger *slog.Logger, config Config) Interface {
	return &SlogLogger{
		Logger:        logger,
		LogLevel:      config.LogLevel,
		SlowThreshold: config.SlowThreshold,
	}
}

// LogMode sets the log level
func (l *SlogLogger) LogMode(level LogLevel) Interface {
	newLogger := *l
	newLogger.LogLevel = level
	return &newLogger
}

// Info logs info messages
func (l *SlogLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= Info {
		l.Logger.InfoContext(ctx, msg, "file", utils.FileWithLineNum(), "data", data)
	}
}

// Warn logs warning messages
func (l *SlogLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= Warn {
		l.Logger.WarnContext(ctx, msg, "file", utils.FileWithLineNum(), "data", data)
	}
}

// Error logs error messages
func (l *SlogLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= Error {
		l.Logger.ErrorContext(ctx, msg, "file", utils.FileWithLineNum(), "data", data)
	}
}

// Trace logs SQL compilation details
func (l *SlogLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, vars int64), err error) {
	if l.LogLevel <= Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, vars := fc()

	attrs := []interface{}{
		"file", utils.FileWithLineNum(),
		"duration", fmt.Sprintf("%.3fms", float64(elapsed.Nanoseconds())/1e6),
		"sql", sql,
		"vars", vars,
	}

	switch {
	case err != nil:
		l.Logger.ErrorContext(ctx, "SQL compiled", append(attrs, "error", err)...)
	case l.SlowThreshold != 0 && elapsed > l.SlowThreshold:
		l.Logger.WarnContext(ctx, "SQL compiled", append(attrs, "slow_threshold", l.SlowThreshold.String())...)
	case l.LogLevel >= Info:
		l.Logger.InfoContext(ctx, "SQL compiled", attrs...)
	}
}
