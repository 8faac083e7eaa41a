package history

import "time"

// Pagination echoes the window a listing was served with.
type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Count  int `json:"count"`
}

// HistoryResponse is the JSON response for GET /api/history.
type HistoryResponse struct {
	Success    bool          `json:"success"`
	Data       []Calculation `json:"data"`
	Pagination Pagination    `json:"pagination"`
	Timestamp  time.Time     `json:"timestamp"`
}

// StatisticsResponse is the JSON response for GET /api/history/statistics.
type StatisticsResponse struct {
	Success   bool       `json:"success"`
	Data      Statistics `json:"data"`
	Timestamp time.Time  `json:"timestamp"`
}

// ClearHistoryResponse is the JSON response for DELETE /api/history.
type ClearHistoryResponse struct {
	Success      bool      `json:"success"`
	Message      string    `json:"message"`
	DeletedCount int64     `json:"deleted_count"`
	Timestamp    time.Time `json:"timestamp"`
}
