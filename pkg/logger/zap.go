package logger

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Gunvolt24/cleanpos/pkg/ctxmeta"
)

// ZapLogger — реализация ports.Logger поверх zap.
// Метаданные из контекста (request_id, trace_id, span_id) попадают в поля записи.
type ZapLogger struct {
	base   *zap.Logger
	sugar  *zap.SugaredLogger
	isProd bool
}

type options struct {
	level string
}

// Option — настройка логгера.
type Option func(*options)

// WithLevel — минимальный уровень: debug|info|warn|error. Пустая строка — дефолт сборки.
func WithLevel(level string) Option {
	return func(o *options) { o.level = level }
}

func NewZapLogger(isProd bool, opts ...Option) (*ZapLogger, func() error, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	cfg := zap.NewDevelopmentConfig()
	if isProd {
		cfg = zap.NewProductionConfig()
	}
	if o.level != "" {
		lvl, err := zapcore.ParseLevel(o.level)
		if err != nil {
			return nil, nil, fmt.Errorf("logger level %q: %w", o.level, err)
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, nil, err
	}

	loggerWrap := New(logger)
	loggerWrap.isProd = isProd

	cleanup := func() error { return loggerWrap.base.Sync() }
	return loggerWrap, cleanup, nil
}

// New — обёртка над готовым *zap.Logger (тесты, встраивание).
func New(base *zap.Logger) *ZapLogger {
	return &ZapLogger{base: base, sugar: base.Sugar()}
}

func (z *ZapLogger) with(ctx context.Context) *zap.SugaredLogger {
	if fields := ctxmeta.Fields(ctx); len(fields) > 0 {
		return z.sugar.With(fields...)
	}
	return z.sugar
}

func (z *ZapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.with(ctx).Infof(format, args...)
}
func (z *ZapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.with(ctx).Warnf(format, args...)
}
func (z *ZapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.with(ctx).Errorf(format, args...)
}

func (z *ZapLogger) Base() *zap.Logger           { return z.base }
func (z *ZapLogger) Sugared() *zap.SugaredLogger { return z.sugar }
