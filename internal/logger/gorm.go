package logger

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const _slowQueryThreshold = 200 * time.Millisecond

var _ gormlogger.Interface = (*GormLogger)(nil)

// GormLogger sends gorm statement traces to a sugared zap logger.
type GormLogger struct {
	logger Logger
	level  gormlogger.LogLevel
}

func NewGormLogger(logger Logger, level string) *GormLogger {
	if logger == nil {
		logger = getDefaultLogger()
	}
	return &GormLogger{logger: logger, level: parseLevel(level)}
}

func parseLevel(level string) gormlogger.LogLevel {
	switch level {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "warn":
		return gormlogger.Warn
	default:
		return gormlogger.Info
	}
}

func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *GormLogger) Info(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Info {
		l.logger.Infow(msg, "args", args)
	}
}

func (l *GormLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Warn {
		l.logger.Warnw(msg, "args", args)
	}
}

func (l *GormLogger) Error(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Error {
		l.logger.Errorw(msg, "args", args)
	}
}

func (l *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	statement, rows := fc()
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error:
		l.logger.Errorw("statement failed", "sql", statement, "rows", rows, "elapsed", elapsed, "error", err.Error())
	case elapsed > _slowQueryThreshold && l.level >= gormlogger.Warn:
		l.logger.Warnw("slow statement", "sql", statement, "rows", rows, "elapsed", elapsed)
	case l.level >= gormlogger.Info:
		l.logger.Debugw("statement", "sql", statement, "rows", rows, "elapsed", elapsed)
	}
}
