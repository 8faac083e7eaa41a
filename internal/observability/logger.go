package observability

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Logger is the process-wide structured logger. Handlers derive per-request
// loggers from it via LoggerWithTrace; the service and store receive it
// explicitly through their constructors.
var Logger *zap.Logger

// InitLogger builds the global logger. The development environment gets the
// human-readable console encoder; everything else logs production JSON.
func InitLogger(environment string) error {
	var err error

	if environment == "development" {
		Logger, err = zap.NewDevelopment()
	} else {
		Logger, err = zap.NewProduction()
	}

	return err
}

func SyncLogger() {
	_ = Logger.Sync()
}

// LoggerWithTrace returns a child logger enriched with trace_id and span_id
// fields from the active OTel span in ctx.
//
// The ctx itself is embedded as a zap.Any("context", ctx) field so the otelzap
// bridge can populate the native TraceID/SpanID on the exported OTLP log
// record; the string fields keep stdout JSON logs greppable without an
// OTel-aware tool.
func LoggerWithTrace(ctx context.Context) *zap.Logger {
	span := trace.SpanContextFromContext(ctx)

	if !span.IsValid() {
		return Logger
	}

	return Logger.With(
		zap.Any("context", ctx),
		zap.String("trace_id", span.TraceID().String()),
		zap.String("span_id", span.SpanID().String()),
	)
}
