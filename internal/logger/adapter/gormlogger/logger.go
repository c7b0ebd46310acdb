// Package gormlogger routes gorm's query log through zerolog.
package gormlogger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Logger implements gorm's logger.Interface on top of a zerolog logger.
//
// Every statement is logged at trace level, statements slower than
// SlowThreshold at warn level and failed statements at error level.
// gorm.ErrRecordNotFound is not treated as a failure.
type Logger struct {
	zl            *zerolog.Logger
	level         gormlogger.LogLevel
	SlowThreshold time.Duration
}

// New returns a gorm logger writing to zl, or to the global zerolog logger if zl is nil.
func New(zl *zerolog.Logger, slowThreshold time.Duration) *Logger {
	return &Logger{
		zl:            zl,
		level:         gormlogger.Info,
		SlowThreshold: slowThreshold,
	}
}

func (l *Logger) logger() *zerolog.Logger {
	if l.zl != nil {
		return l.zl
	}

	return &log.Logger
}

// LogMode implements logger.Interface.
func (l *Logger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cp := *l
	cp.level = level

	return &cp
}

// Info implements logger.Interface.
func (l *Logger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Info {
		l.logger().Info().Ctx(ctx).Str("component", "gorm").Msg(fmt.Sprintf(msg, data...))
	}
}

// Warn implements logger.Interface.
func (l *Logger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Warn {
		l.logger().Warn().Ctx(ctx).Str("component", "gorm").Msg(fmt.Sprintf(msg, data...))
	}
}

// Error implements logger.Interface.
func (l *Logger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Error {
		l.logger().Error().Ctx(ctx).Str("component", "gorm").Msg(fmt.Sprintf(msg, data...))
	}
}

// Trace implements logger.Interface.
func (l *Logger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)

	var event *zerolog.Event

	switch {
	case err != nil && l.level >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		event = l.logger().Error().Err(err)
	case l.SlowThreshold != 0 && elapsed > l.SlowThreshold && l.level >= gormlogger.Warn:
		event = l.logger().Warn().Dur("threshold", l.SlowThreshold)
	case l.level >= gormlogger.Info:
		event = l.logger().Trace()
	default:
		return
	}

	// disabled levels return a nil event, skip building the sql string
	if event == nil {
		return
	}

	sql, rows := fc()

	event.Ctx(ctx).
		Str("component", "gorm").
		Dur("elapsed", elapsed).
		Int64("rows", rows).
		Str("sql", sql).
		Msg("query")
}
