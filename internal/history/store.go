package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"calculator-api/internal/storage"
)

// List pagination bounds.
const (
	MinLimit = 1
	MaxLimit = 100
)

// Store reads and writes calculation history rows. It holds no connection of
// its own; every method operates on the caller-supplied unit-of-work.
type Store struct {
	log *zap.Logger
}

// NewStore returns a history store logging through log.
func NewStore(log *zap.Logger) *Store {
	return &Store{log: log}
}

// Insert appends one calculation row, assigning created_at from the store
// clock (UTC) and id from the database.
func (s *Store) Insert(ctx context.Context, uow storage.Querier, operation string, a float64, b *float64, result float64) (Calculation, error) {
	c := Calculation{
		Operation: operation,
		OperandA:  a,
		OperandB:  b,
		Result:    result,
		CreatedAt: time.Now().UTC(),
	}

	err := uow.QueryRowContext(ctx,
		`INSERT INTO calculations (operation, operand_a, operand_b, result, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		c.Operation, c.OperandA, c.OperandB, c.Result, c.CreatedAt).Scan(&c.ID)
	if err != nil {
		return Calculation{}, fmt.Errorf("insert calculation: %w", err)
	}

	s.log.Debug("calculation stored",
		zap.Int64("id", c.ID),
		zap.String("operation", c.Operation))
	return c, nil
}

// List returns at most limit rows ordered newest-first (created_at descending,
// id descending on ties), skipping the first offset rows. limit is clamped to
// [MinLimit, MaxLimit] and offset to >= 0. The result is a snapshot with no
// consistency guarantee across calls under concurrent writers.
func (s *Store) List(ctx context.Context, uow storage.Querier, limit, offset int) ([]Calculation, error) {
	limit = clampLimit(limit)
	if offset < 0 {
		offset = 0
	}

	rows, err := uow.QueryContext(ctx,
		`SELECT id, operation, operand_a, operand_b, result, created_at
		 FROM calculations
		 ORDER BY created_at DESC, id DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list calculations: %w", err)
	}
	defer rows.Close()

	var list []Calculation
	for rows.Next() {
		var c Calculation
		if err := rows.Scan(&c.ID, &c.Operation, &c.OperandA, &c.OperandB, &c.Result, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan calculation: %w", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list calculations: %w", err)
	}
	return list, nil
}

// Statistics runs five independent aggregate queries against the current
// table state. Ties for the most used operation break lexicographically.
// "Today" is the current calendar date and "week" the trailing 7 days, both
// on the store clock (UTC).
func (s *Store) Statistics(ctx context.Context, uow storage.Querier) (Statistics, error) {
	var stats Statistics

	if err := uow.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM calculations`).Scan(&stats.TotalCalculations); err != nil {
		return Statistics{}, fmt.Errorf("count calculations: %w", err)
	}

	var mostUsed string
	err := uow.QueryRowContext(ctx,
		`SELECT operation FROM calculations
		 GROUP BY operation
		 ORDER BY COUNT(*) DESC, operation ASC
		 LIMIT 1`).Scan(&mostUsed)
	switch {
	case err == nil:
		stats.MostUsedOperation = &mostUsed
	case errors.Is(err, sql.ErrNoRows):
		// Empty table: no most used operation.
	default:
		return Statistics{}, fmt.Errorf("most used operation: %w", err)
	}

	if err := uow.QueryRowContext(ctx,
		`SELECT COALESCE(AVG(result), 0) FROM calculations`).Scan(&stats.AverageResult); err != nil {
		return Statistics{}, fmt.Errorf("average result: %w", err)
	}

	now := time.Now().UTC()
	year, month, day := now.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	if err := uow.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM calculations WHERE created_at >= $1`,
		midnight).Scan(&stats.TodayCalculations); err != nil {
		return Statistics{}, fmt.Errorf("today count: %w", err)
	}

	if err := uow.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM calculations WHERE created_at >= $1`,
		now.AddDate(0, 0, -7)).Scan(&stats.WeekCalculations); err != nil {
		return Statistics{}, fmt.Errorf("week count: %w", err)
	}

	return stats, nil
}

// ClearAll removes every history row and returns the pre-deletion count. The
// count and the delete are separate statements, so it can be stale under
// concurrent inserts.
func (s *Store) ClearAll(ctx context.Context, uow storage.Querier) (int64, error) {
	var count int64
	if err := uow.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM calculations`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count calculations: %w", err)
	}

	if _, err := uow.ExecContext(ctx, `DELETE FROM calculations`); err != nil {
		return 0, fmt.Errorf("clear calculations: %w", err)
	}

	s.log.Info("calculation history cleared", zap.Int64("deleted_count", count))
	return count, nil
}

func clampLimit(limit int) int {
	if limit < MinLimit {
		return MinLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
