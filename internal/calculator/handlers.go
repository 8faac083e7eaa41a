package calculator

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"calculator-api/internal/handlers"
	"calculator-api/internal/observability"
	"calculator-api/internal/storage"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

// Handler serves the calculator endpoints.
type Handler struct {
	db      *sql.DB
	service *Service
}

// NewHandler returns a calculator handler drawing per-request units of work
// from db.
func NewHandler(db *sql.DB, service *Service) *Handler {
	return &Handler{db: db, service: service}
}

// Calculate handles POST /api/calculator/calculate.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	var req CalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, trace.SpanFromContext(ctx), logger, errorCounter,
			"calculate", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	ctx, span := tracer.Start(ctx, "calculator."+req.Operation,
		trace.WithAttributes(
			attribute.String("calculator.operation", req.Operation),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	if req.A == nil {
		observability.RecordError(ctx, span, logger, errorCounter,
			req.Operation, "first operand is required", errors.New("missing operand a"), http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(attribute.Float64("calculator.operand.a", *req.A))
	if req.B != nil {
		span.SetAttributes(attribute.Float64("calculator.operand.b", *req.B))
	}

	uow, release := h.acquire(ctx, logger)
	defer release()

	start := time.Now()
	result, persisted, err := h.service.Calculate(ctx, uow, req.Operation, *req.A, req.B)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrInvalidOperand) || errors.Is(err, ErrInvalidOperation) {
			status = http.StatusBadRequest
		}
		observability.RecordError(ctx, span, logger, errorCounter,
			req.Operation, err.Error(), err, status, w)
		return
	}

	attrs := metric.WithAttributes(attribute.String("operation", req.Operation))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)
	resultGauge.Record(ctx, result, attrs)

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.Float64("result", result),
		attribute.Bool("persisted", persisted),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.Float64("calculator.result", result))
	span.SetStatus(codes.Ok, "")

	logger.Info("calculation completed",
		zap.String("operation", req.Operation),
		zap.Float64("a", *req.A),
		zap.Float64p("b", req.B),
		zap.Float64("result", result),
		zap.Bool("persisted", persisted),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, CalculationResponse{
		Success:   true,
		Operation: req.Operation,
		A:         *req.A,
		B:         req.B,
		Result:    result,
		Persisted: persisted,
		Timestamp: time.Now().UTC(),
	})
}

// Operations handles GET /api/calculator/operations.
func (h *Handler) Operations(w http.ResponseWriter, r *http.Request) {
	ops := []OperationInfo{
		{Name: OpAdd, Symbol: "+", Description: "Add two numbers", Parameters: []string{"a", "b"}},
		{Name: OpSubtract, Symbol: "-", Description: "Subtract second number from first", Parameters: []string{"a", "b"}},
		{Name: OpMultiply, Symbol: "×", Description: "Multiply two numbers", Parameters: []string{"a", "b"}},
		{Name: OpDivide, Symbol: "÷", Description: "Divide first number by second", Parameters: []string{"a", "b"}},
		{Name: OpPower, Symbol: "^", Description: "Raise first number to power of second", Parameters: []string{"a", "b"}},
		{Name: OpSqrt, Symbol: "√", Description: "Calculate square root of number", Parameters: []string{"a"}},
		{Name: OpAbsDiff, Symbol: "|a-b|", Description: "Calculate absolute difference between two numbers", Parameters: []string{"a", "b"}},
		{Name: OpCubic, Symbol: "³", Description: "Raise number to the power of 3", Parameters: []string{"a"}},
	}

	handlers.WriteJSON(w, http.StatusOK, OperationsResponse{
		Operations: ops,
		Count:      len(ops),
	})
}

// Health handles GET /api/calculator/health with an evaluator self-test.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	one := 1.0
	result, err := Evaluate(OpAdd, 1, &one)
	if err != nil || result != 2 {
		observability.LoggerWithTrace(r.Context()).Error("calculator self-test failed", zap.Error(err))
		handlers.WriteError(w, http.StatusServiceUnavailable, "calculator service unhealthy")
		return
	}

	handlers.WriteJSON(w, http.StatusOK, HealthResponse{
		Status:          "healthy",
		Service:         "calculator",
		TestCalculation: "1 + 1 = 2",
		ActualResult:    result,
		Timestamp:       time.Now().UTC(),
	})
}

// acquire checks a dedicated connection out of the pool to act as the
// request's unit of work. A nil unit of work is returned when acquisition
// fails; the calculation then proceeds without history.
func (h *Handler) acquire(ctx context.Context, logger *zap.Logger) (storage.Querier, func()) {
	conn, err := h.db.Conn(ctx)
	if err != nil {
		logger.Warn("failed to acquire database connection", zap.Error(err))
		return nil, func() {}
	}
	return conn, func() { conn.Close() }
}
