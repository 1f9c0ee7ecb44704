package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tasktrack/config"
	deliverycontext "tasktrack/internal/delivery/context"
	"tasktrack/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultSlowQueryThreshold = 200 * time.Millisecond

// queryLogger adapts slog to gorm's logger.Interface. Entries go to the
// request logger when the query runs under one, so they carry request_id.
// Only placeholder SQL is logged: bound values include password hashes and
// task text.
type queryLogger struct {
	base          *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newQueryLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	l := &queryLogger{
		base:          base,
		level:         logger.Warn,
		slowThreshold: defaultSlowQueryThreshold,
	}
	if cfg == nil {
		return l
	}
	if cfg.Env.Debug {
		l.level = logger.Info
	}
	if cfg.Postgres != nil && cfg.Postgres.SlowQueryThreshold > 0 {
		l.slowThreshold = cfg.Postgres.SlowQueryThreshold
	}

	return l
}

// ParamsFilter drops bound values from the SQL gorm renders for Trace.
func (l *queryLogger) ParamsFilter(_ context.Context, sql string, _ ...any) (string, []any) {
	return sql, nil
}

func (l *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *queryLogger) printf(ctx context.Context, floor logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.level < floor || l.base == nil {
		return
	}
	l.target(ctx).LogAttrs(ctx, level, "Database message", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs a finished statement. Failures win over slowness; routine
// queries show up only at info level. Missing rows are an expected outcome
// for lookups and are not failures here.
func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.base == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound)

	switch {
	case failed && l.level >= logger.Error:
		attrs := append(statementAttrs(fc, elapsed), slog.String("error", err.Error()))
		l.target(ctx).LogAttrs(ctx, slog.LevelError, "Query failed", attrs...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		attrs := append(statementAttrs(fc, elapsed), slog.Duration("threshold", l.slowThreshold))
		l.target(ctx).LogAttrs(ctx, slog.LevelWarn, "Slow query", attrs...)
	case l.level >= logger.Info:
		l.target(ctx).LogAttrs(ctx, slog.LevelInfo, "Query", statementAttrs(fc, elapsed)...)
	}
}

func (l *queryLogger) target(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.base)
}

func statementAttrs(fc func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := fc()

	return []slog.Attr{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}
}
