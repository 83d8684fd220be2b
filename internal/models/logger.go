package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gorm_logger "gorm.io/gorm/logger"
)

// slowQueryThreshold is the duration after which a query is logged as a warning.
const slowQueryThreshold = 200 * time.Millisecond

// queryLogger forwards gorm messages to zerolog.
type queryLogger struct {
	log   zerolog.Logger
	level gorm_logger.LogLevel
	slow  time.Duration
}

func newQueryLogger(l zerolog.Logger, slow time.Duration) *queryLogger {
	return &queryLogger{
		log:   l.With().Str("component", "gorm").Logger(),
		level: gorm_logger.Info,
		slow:  slow,
	}
}

// LogMode returns a copy of the logger with the level changed.
func (l *queryLogger) LogMode(level gorm_logger.LogLevel) gorm_logger.Interface {
	c := *l
	c.level = level
	return &c
}

// event returns nil for levels that are not enabled. All methods of
// a nil *zerolog.Event are no-ops.
func (l *queryLogger) event(level gorm_logger.LogLevel) *zerolog.Event {
	if l.level < level {
		return nil
	}

	switch level {
	case gorm_logger.Error:
		return l.log.Error()
	case gorm_logger.Warn:
		return l.log.Warn()
	default:
		return l.log.Info()
	}
}

func (l *queryLogger) Info(_ context.Context, s string, args ...interface{}) {
	l.event(gorm_logger.Info).Msgf(s, args...)
}

func (l *queryLogger) Warn(_ context.Context, s string, args ...interface{}) {
	l.event(gorm_logger.Warn).Msgf(s, args...)
}

func (l *queryLogger) Error(_ context.Context, s string, args ...interface{}) {
	l.event(gorm_logger.Error).Msgf(s, args...)
}

func (l *queryLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gorm_logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	var e *zerolog.Event
	msg := "query"
	switch {
	case err != nil && !errors.Is(err, ErrResourceNotFound) && !errors.Is(err, gorm_logger.ErrRecordNotFound):
		e, msg = l.event(gorm_logger.Error), "query failed"
		if e != nil {
			e = e.Err(err)
		}
	case l.slow > 0 && elapsed > l.slow:
		e, msg = l.event(gorm_logger.Warn), "slow query"
		if e != nil {
			e = e.Dur("threshold", l.slow)
		}
	default:
		e = l.log.Debug()
	}

	if e == nil {
		return
	}

	// gorm reports -1 when the row count is unknown
	if rows >= 0 {
		e = e.Int64("rows", rows)
	}

	e.Str("sql", sql).Dur("elapsed", elapsed).Msg(msg)
}
