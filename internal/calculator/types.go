package calculator

import "time"

// CalculationRequest is the JSON body for POST /api/calculator/calculate.
// Pointer fields distinguish absent operands from zero values.
type CalculationRequest struct {
	Operation string   `json:"operation"`
	A         *float64 `json:"a"`
	B         *float64 `json:"b"`
}

// CalculationResponse is the JSON response for a successful calculation.
// Persisted reports whether the history row was written; a best-effort
// storage failure still returns the result, with persisted=false.
type CalculationResponse struct {
	Success   bool      `json:"success"`
	Operation string    `json:"operation"`
	A         float64   `json:"a"`
	B         *float64  `json:"b"`
	Result    float64   `json:"result"`
	Persisted bool      `json:"persisted"`
	Timestamp time.Time `json:"timestamp"`
}

// OperationInfo describes one supported operation.
type OperationInfo struct {
	Name        string   `json:"name"`
	Symbol      string   `json:"symbol"`
	Description string   `json:"description"`
	Parameters  []string `json:"parameters"`
}

// OperationsResponse is the JSON response for GET /api/calculator/operations.
type OperationsResponse struct {
	Operations []OperationInfo `json:"operations"`
	Count      int             `json:"count"`
}

// HealthResponse is the JSON response for GET /api/calculator/health.
type HealthResponse struct {
	Status          string    `json:"status"`
	Service         string    `json:"service"`
	TestCalculation string    `json:"test_calculation,omitempty"`
	ActualResult    float64   `json:"actual_result,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
}
