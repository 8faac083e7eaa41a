package history

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"calculator-api/internal/handlers"
	"calculator-api/internal/observability"
)

const defaultLimit = 10

// Handler serves the calculation history endpoints. Unlike the calculator,
// these paths have no fallback: a storage failure surfaces as a server error.
type Handler struct {
	db    *sql.DB
	store *Store
}

// NewHandler returns a history handler drawing per-request units of work
// from db.
func NewHandler(db *sql.DB, store *Store) *Handler {
	return &Handler{db: db, store: store}
}

// List handles GET /api/history with limit/offset pagination.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)

	limit, ok := queryInt(r, "limit", defaultLimit)
	if !ok {
		handlers.WriteError(w, http.StatusBadRequest, "invalid limit parameter")
		return
	}
	offset, ok := queryInt(r, "offset", 0)
	if !ok {
		handlers.WriteError(w, http.StatusBadRequest, "invalid offset parameter")
		return
	}
	limit = clampLimit(limit)
	if offset < 0 {
		offset = 0
	}

	conn, err := h.db.Conn(ctx)
	if err != nil {
		logger.Error("failed to acquire database connection", zap.Error(err))
		handlers.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	defer conn.Close()

	list, err := h.store.List(ctx, conn, limit, offset)
	if err != nil {
		logger.Error("failed to fetch calculation history", zap.Error(err))
		handlers.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if list == nil {
		list = []Calculation{}
	}

	handlers.WriteJSON(w, http.StatusOK, HistoryResponse{
		Success: true,
		Data:    list,
		Pagination: Pagination{
			Limit:  limit,
			Offset: offset,
			Count:  len(list),
		},
		Timestamp: time.Now().UTC(),
	})
}

// GetStatistics handles GET /api/history/statistics.
func (h *Handler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)

	conn, err := h.db.Conn(ctx)
	if err != nil {
		logger.Error("failed to acquire database connection", zap.Error(err))
		handlers.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	defer conn.Close()

	stats, err := h.store.Statistics(ctx, conn)
	if err != nil {
		logger.Error("failed to fetch calculation statistics", zap.Error(err))
		handlers.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	handlers.WriteJSON(w, http.StatusOK, StatisticsResponse{
		Success:   true,
		Data:      stats,
		Timestamp: time.Now().UTC(),
	})
}

// Clear handles DELETE /api/history.
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)

	conn, err := h.db.Conn(ctx)
	if err != nil {
		logger.Error("failed to acquire database connection", zap.Error(err))
		handlers.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	defer conn.Close()

	deleted, err := h.store.ClearAll(ctx, conn)
	if err != nil {
		logger.Error("failed to clear calculation history", zap.Error(err))
		handlers.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	handlers.WriteJSON(w, http.StatusOK, ClearHistoryResponse{
		Success:      true,
		Message:      "Calculation history cleared successfully",
		DeletedCount: deleted,
		Timestamp:    time.Now().UTC(),
	})
}

// queryInt parses an optional integer query parameter.
func queryInt(r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
