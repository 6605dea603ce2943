package contextkeys

import (
	"context"

	"listing-service/internal/core/port"
)

type loggerKeyType struct{}

var loggerKey = loggerKeyType{}

// ContextWithLogger кладет в контекст логгер запроса или прогона ингеста.
// Use case и адаптеры хранилища берут его через LoggerFromContext.
func ContextWithLogger(ctx context.Context, logger port.LoggerPort) context.Context {
	if logger == nil {
		return ctx
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// ContextWithLoggerFields дополняет логгер из контекста полями.
func ContextWithLoggerFields(ctx context.Context, fields port.Fields) context.Context {
	return context.WithValue(ctx, loggerKey, LoggerFromContext(ctx).WithFields(fields))
}

// LoggerFromContext никогда не возвращает nil. Без логгера в контексте
// (юнит-тесты, вызов use case в обход HTTP) записи молча отбрасываются.
func LoggerFromContext(ctx context.Context) port.LoggerPort {
	if logger, ok := ctx.Value(loggerKey).(port.LoggerPort); ok {
		return logger
	}
	return discard
}

var discard port.LoggerPort = discardLogger{}

type discardLogger struct{}

func (discardLogger) Info(string, port.Fields)                 {}
func (discardLogger) Warn(string, port.Fields)                 {}
func (discardLogger) Error(string, error, port.Fields)         {}
func (discardLogger) Debug(string, port.Fields)                {}
func (d discardLogger) WithFields(port.Fields) port.LoggerPort { return d }
