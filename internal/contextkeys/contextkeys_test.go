package contextkeys

import (
	"context"
	"testing"

	"listing-service/internal/core/port"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fieldsLogger struct {
	fields port.Fields
}

func (l *fieldsLogger) Info(string, port.Fields)         {}
func (l *fieldsLogger) Warn(string, port.Fields)         {}
func (l *fieldsLogger) Error(string, error, port.Fields) {}
func (l *fieldsLogger) Debug(string, port.Fields)        {}
func (l *fieldsLogger) WithFields(fields port.Fields) port.LoggerPort {
	merged := port.Fields{}
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &fieldsLogger{fields: merged}
}

func TestLoggerFromContext_FallsBackToDiscard(t *testing.T) {
	logger := LoggerFromContext(context.Background())
	assert.NotNil(t, logger)
	assert.NotPanics(t, func() {
		logger.WithFields(nil).Info("dropped", nil)
	})
}

func TestContextWithLogger_IgnoresNil(t *testing.T) {
	ctx := ContextWithLogger(context.Background(), nil)
	assert.Equal(t, discard, LoggerFromContext(ctx))
}

func TestContextWithLoggerFields(t *testing.T) {
	ctx := ContextWithLogger(context.Background(), &fieldsLogger{fields: port.Fields{"trace_id": "t1"}})
	ctx = ContextWithLoggerFields(ctx, port.Fields{"feed_file": "feed.json"})

	logger, ok := LoggerFromContext(ctx).(*fieldsLogger)
	require.True(t, ok)
	assert.Equal(t, port.Fields{"trace_id": "t1", "feed_file": "feed.json"}, logger.fields)
}

func TestTraceID_RoundTrip(t *testing.T) {
	ctx := ContextWithTraceID(context.Background(), "trace-1")
	assert.Equal(t, "trace-1", TraceIDFromContext(ctx))
	assert.Empty(t, TraceIDFromContext(context.Background()))
}
