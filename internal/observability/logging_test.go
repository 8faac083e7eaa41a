package observability

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestInitLoggingTeesLogger(t *testing.T) {
	Logger = zap.NewNop()
	before := Logger

	shutdown, err := InitLogging(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if shutdown == nil {
		t.Fatal("expected a shutdown function")
	}
	if Logger == before {
		t.Fatal("expected the global logger to be replaced with a teed core")
	}

	// The teed logger must still accept writes; the OTel core buffers them
	// for the exporter.
	Logger.Info("log pipeline ready")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = shutdown(ctx)
}
