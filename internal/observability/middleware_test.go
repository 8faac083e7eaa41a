package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"calculator-api/internal/testutil"
)

func TestShouldTraceRequest(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{path: "/api/calculator/calculate", want: true},
		{path: "/", want: true},
		{path: "/healthcheck", want: true},
		{path: "/metrics", want: false},
		{path: "/health", want: false},
		{path: "/health/ready", want: false},
		{path: "/health/detailed", want: false},
	}

	for _, tc := range tests {
		req := httptest.NewRequest(http.MethodGet, tc.path, nil)
		if got := shouldTraceRequest(req); got != tc.want {
			t.Errorf("shouldTraceRequest(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestRequestIDMiddlewareGenerates(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := testutil.ExecuteRequest(req, RequestIDMiddleware(next))

	if _, err := uuid.Parse(seen); err != nil {
		t.Fatalf("expected a UUID in the request context, got %q: %v", seen, err)
	}
	if got := w.Header().Get(RequestIDHeader); got != seen {
		t.Fatalf("expected header %q to match context id %q", got, seen)
	}
}

func TestRequestIDMiddlewareAdoptsInbound(t *testing.T) {
	inbound := uuid.New().String()
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, inbound)
	w := testutil.ExecuteRequest(req, RequestIDMiddleware(next))

	if seen != inbound {
		t.Fatalf("expected inbound id %q in the context, got %q", inbound, seen)
	}
	if got := w.Header().Get(RequestIDHeader); got != inbound {
		t.Fatalf("expected inbound id %q in the response header, got %q", inbound, got)
	}
}

func TestLoggingMiddlewareRecordsCompletion(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	Logger = zap.New(core)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
	testutil.ExecuteRequest(req, RequestIDMiddleware(LoggingMiddleware(next)))

	entries := logs.FilterMessage("request completed").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 completion log entry, got %d", len(entries))
	}

	fields := entries[0].ContextMap()
	if fields["method"] != http.MethodGet {
		t.Fatalf("expected method GET, got %v", fields["method"])
	}
	if fields["path"] != "/api/history" {
		t.Fatalf("expected path /api/history, got %v", fields["path"])
	}
	if fields["status"] != int64(http.StatusTeapot) {
		t.Fatalf("expected status %d, got %v", http.StatusTeapot, fields["status"])
	}
	if fields["request_id"] == "" {
		t.Fatal("expected a request_id field")
	}
}
