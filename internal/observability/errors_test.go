package observability

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"calculator-api/internal/testutil"
)

func TestRecordError(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	logger := zap.New(core)

	counter, err := otel.Meter("test").Int64Counter("test_errors_total")
	if err != nil {
		t.Fatalf("creating counter: %v", err)
	}

	ctx := ContextWithRequestID(context.Background(), NewRequestID())
	span := trace.SpanFromContext(ctx)

	w := httptest.NewRecorder()
	RecordError(ctx, span, logger, counter, "divide", "division by zero is not allowed",
		errors.New("division by zero"), http.StatusBadRequest, w)

	testutil.CheckResponseCode(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	testutil.DecodeJSONBody(t, w.Body, &body)
	if body["error"] != "division by zero is not allowed" {
		t.Fatalf("unexpected error body %q", body["error"])
	}
	if _, ok := body["request_id"]; ok {
		t.Fatal("request id belongs in the header, not the body")
	}

	entries := logs.FilterMessage("division by zero is not allowed").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["operation"] != "divide" {
		t.Fatalf("expected operation divide, got %v", fields["operation"])
	}
	if fields["request_id"] == "" {
		t.Fatal("expected a request_id log field")
	}
}
