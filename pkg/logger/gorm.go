package logger

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// maxSQLLength caps logged statements so bulk inserts do not flood the log.
const maxSQLLength = 1000

// GormLogger routes gorm's query log through zap.
type GormLogger struct {
	ZapLogger     *zap.Logger
	SlowThreshold time.Duration
	LogLevel      gormlogger.LogLevel
}

// NewGormLogger creates a gorm logger. level takes the same names as LOG_LEVEL.
func NewGormLogger(zapLogger *zap.Logger, slowQuerySeconds float64, level string) *GormLogger {
	return &GormLogger{
		ZapLogger:     zapLogger.Named("gorm"),
		SlowThreshold: time.Duration(slowQuerySeconds * float64(time.Second)),
		LogLevel:      gormLevel(level),
	}
}

func gormLevel(level string) gormlogger.LogLevel {
	switch level {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "warn", "warning":
		return gormlogger.Warn
	case "info", "debug":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}

// LogMode implements gormlogger.Interface
func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	newLogger := *l
	newLogger.LogLevel = level
	return &newLogger
}

// Info implements gormlogger.Interface
func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormlogger.Info {
		WithContext(ctx, l.ZapLogger).Sugar().Infof(msg, data...)
	}
}

// Warn implements gormlogger.Interface
func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormlogger.Warn {
		WithContext(ctx, l.ZapLogger).Sugar().Warnf(msg, data...)
	}
}

// Error implements gormlogger.Interface
func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormlogger.Error {
		WithContext(ctx, l.ZapLogger).Sugar().Errorf(msg, data...)
	}
}

// Trace implements gormlogger.Interface
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	if len(sql) > maxSQLLength {
		sql = sql[:maxSQLLength] + "..."
	}

	log := WithContext(ctx, l.ZapLogger)
	fields := []zap.Field{
		zap.String("sql", sql),
		zap.Int64("rows", rows),
		zap.Duration("elapsed", elapsed),
	}

	switch {
	// A missing row is reported to callers as NotFound, not logged as a failure.
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		log.Error("gorm query error", append(fields, zap.Error(err))...)
	case l.SlowThreshold != 0 && elapsed > l.SlowThreshold && l.LogLevel >= gormlogger.Warn:
		log.Warn("gorm slow query", append(fields, zap.Duration("threshold", l.SlowThreshold))...)
	case l.LogLevel >= gormlogger.Info:
		log.Debug("gorm query", fields...)
	}
}
