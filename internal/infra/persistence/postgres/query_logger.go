package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"carhub/config"
	deliverycontext "carhub/internal/delivery/context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// queryLogger sends gorm output to the request-scoped slog logger, so SQL lines
// carry the request_id and user_id attached by the HTTP middleware.
type queryLogger struct {
	fallback  *slog.Logger
	level     gormlogger.LogLevel
	slowQuery time.Duration
}

func newQueryLogger(base *slog.Logger, cfg *config.Config) gormlogger.Interface {
	level := gormlogger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = gormlogger.Info
	}

	return &queryLogger{
		fallback:  base,
		level:     level,
		slowQuery: slowQueryThreshold,
	}
}

func (l *queryLogger) from(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.fallback)
}

func (l *queryLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, gormlogger.Info, slog.LevelInfo, msg, args)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, gormlogger.Warn, slog.LevelWarn, msg, args)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, gormlogger.Error, slog.LevelError, msg, args)
}

func (l *queryLogger) message(ctx context.Context, min gormlogger.LogLevel, level slog.Level, msg string, args []any) {
	logger := l.from(ctx)
	if l.level < min || logger == nil {
		return
	}

	logger.LogAttrs(ctx, level, "gorm", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs failed statements, then slow ones, then every statement in debug mode.
func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	logger := l.from(ctx)
	if logger == nil || l.level == gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)

	var (
		level slog.Level
		msg   string
		extra slog.Attr
	)
	switch {
	case err != nil && l.level >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		level, msg, extra = slog.LevelError, "SQL statement failed", slog.String("error", err.Error())
	case l.slowQuery > 0 && elapsed > l.slowQuery && l.level >= gormlogger.Warn:
		level, msg, extra = slog.LevelWarn, "Slow SQL statement", slog.Duration("threshold", l.slowQuery)
	case l.level >= gormlogger.Info:
		level, msg = slog.LevelDebug, "SQL statement"
	default:
		return
	}

	statement, rows := fc()
	attrs := []slog.Attr{
		slog.String("sql", statement),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}
	if extra.Key != "" {
		attrs = append(attrs, extra)
	}

	logger.LogAttrs(ctx, level, msg, attrs...)
}
