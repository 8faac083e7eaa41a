package history

import "time"

// Calculation is one persisted history row. Rows are immutable after insert;
// the only mutations the store performs are insert-one and delete-all.
type Calculation struct {
	ID        int64     `json:"id"`
	Operation string    `json:"operation"`
	OperandA  float64   `json:"operand_a"`
	OperandB  *float64  `json:"operand_b"`
	Result    float64   `json:"result"`
	CreatedAt time.Time `json:"created_at"`
}

// Statistics aggregates the current state of the history table.
type Statistics struct {
	TotalCalculations int64   `json:"total_calculations"`
	MostUsedOperation *string `json:"most_used_operation"`
	AverageResult     float64 `json:"average_result"`
	TodayCalculations int64   `json:"today_calculations"`
	WeekCalculations  int64   `json:"week_calculations"`
}
