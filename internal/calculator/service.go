package calculator

import (
	"context"

	"go.uber.org/zap"

	"calculator-api/internal/history"
	"calculator-api/internal/storage"
)

// Service evaluates operations and records them in the history store. It is
// stateless between calls and safe for concurrent use.
type Service struct {
	store *history.Store
	log   *zap.Logger
}

// NewService returns a calculation service writing history through store.
func NewService(store *history.Store, log *zap.Logger) *Service {
	return &Service{store: store, log: log}
}

// Calculate validates and evaluates one operation, then records it against the
// caller-supplied unit-of-work. Evaluation errors always propagate. History is
// best-effort: a storage failure is logged and swallowed, and a nil uow skips
// persistence entirely. The persisted flag reports whether the row was written,
// so callers can tell "persisted" from "computed but not recorded".
func (s *Service) Calculate(ctx context.Context, uow storage.Querier, operation string, a float64, b *float64) (result float64, persisted bool, err error) {
	result, err = Evaluate(operation, a, b)
	if err != nil {
		return 0, false, err
	}

	if uow == nil {
		s.log.Warn("no unit of work supplied, calculation not recorded",
			zap.String("operation", operation))
		return result, false, nil
	}

	if _, err := s.store.Insert(ctx, uow, operation, a, b, result); err != nil {
		s.log.Error("failed to store calculation",
			zap.String("operation", operation),
			zap.Float64("result", result),
			zap.Error(err))
		return result, false, nil
	}

	return result, true, nil
}
