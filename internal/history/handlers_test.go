package history

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"calculator-api/internal/observability"
	"calculator-api/internal/testutil"
)

func newTestRouter(t *testing.T) (http.Handler, *sql.DB) {
	t.Helper()

	observability.Logger = zap.NewNop()

	db := testutil.OpenTestDB(t)
	h := NewHandler(db, NewStore(zap.NewNop()))

	r := chi.NewRouter()
	RegisterRoutes(r, h)
	return r, db
}

func getHistory(t *testing.T, router http.Handler, query string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/history"+query, nil)
	return testutil.ExecuteRequest(req, router)
}

func TestListEndpoint(t *testing.T) {
	router, db := newTestRouter(t)
	store := NewStore(zap.NewNop())
	for i := 0; i < 3; i++ {
		if _, err := store.Insert(context.Background(), db, "add", float64(i), f(1), float64(i+1)); err != nil {
			t.Fatalf("seeding: %v", err)
		}
	}

	w := getHistory(t, router, "?limit=2")
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp HistoryResponse
	testutil.DecodeJSONBody(t, w.Body, &resp)

	if !resp.Success {
		t.Fatal("expected success=true")
	}
	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(resp.Data))
	}
	if resp.Pagination.Limit != 2 || resp.Pagination.Offset != 0 || resp.Pagination.Count != 2 {
		t.Fatalf("unexpected pagination: %+v", resp.Pagination)
	}
	if resp.Data[0].ID <= resp.Data[1].ID {
		t.Fatalf("expected newest-first ordering, got ids [%d %d]", resp.Data[0].ID, resp.Data[1].ID)
	}
}

func TestListEndpointEmpty(t *testing.T) {
	router, _ := newTestRouter(t)

	w := getHistory(t, router, "")
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp HistoryResponse
	testutil.DecodeJSONBody(t, w.Body, &resp)

	if resp.Data == nil || len(resp.Data) != 0 {
		t.Fatalf("expected an empty array, got %v", resp.Data)
	}
	if resp.Pagination.Limit != defaultLimit {
		t.Fatalf("expected default limit %d, got %d", defaultLimit, resp.Pagination.Limit)
	}
}

func TestListEndpointClampsLimit(t *testing.T) {
	router, _ := newTestRouter(t)

	w := getHistory(t, router, "?limit=500&offset=-3")
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp HistoryResponse
	testutil.DecodeJSONBody(t, w.Body, &resp)

	if resp.Pagination.Limit != MaxLimit {
		t.Fatalf("expected limit clamped to %d, got %d", MaxLimit, resp.Pagination.Limit)
	}
	if resp.Pagination.Offset != 0 {
		t.Fatalf("expected offset clamped to 0, got %d", resp.Pagination.Offset)
	}
}

func TestListEndpointRejectsBadParameters(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, query := range []string{"?limit=abc", "?offset=1.5"} {
		w := getHistory(t, router, query)
		testutil.CheckResponseCode(t, http.StatusBadRequest, w.Code)
	}
}

func TestStatisticsEndpoint(t *testing.T) {
	router, db := newTestRouter(t)
	store := NewStore(zap.NewNop())
	if _, err := store.Insert(context.Background(), db, "multiply", 6, f(7), 42); err != nil {
		t.Fatalf("seeding: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/history/statistics", nil)
	w := testutil.ExecuteRequest(req, router)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp StatisticsResponse
	testutil.DecodeJSONBody(t, w.Body, &resp)

	if !resp.Success {
		t.Fatal("expected success=true")
	}
	if resp.Data.TotalCalculations != 1 {
		t.Fatalf("expected total 1, got %d", resp.Data.TotalCalculations)
	}
	if resp.Data.MostUsedOperation == nil || *resp.Data.MostUsedOperation != "multiply" {
		t.Fatalf("expected most used operation multiply, got %v", resp.Data.MostUsedOperation)
	}
}

func TestClearEndpoint(t *testing.T) {
	router, db := newTestRouter(t)
	store := NewStore(zap.NewNop())
	for i := 0; i < 2; i++ {
		if _, err := store.Insert(context.Background(), db, "add", 1, f(1), 2); err != nil {
			t.Fatalf("seeding: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodDelete, "/history", nil)
	w := testutil.ExecuteRequest(req, router)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp ClearHistoryResponse
	testutil.DecodeJSONBody(t, w.Body, &resp)

	if resp.DeletedCount != 2 {
		t.Fatalf("expected deleted_count 2, got %d", resp.DeletedCount)
	}
	if resp.Message == "" {
		t.Fatal("expected a confirmation message")
	}

	w = getHistory(t, router, "")
	var after HistoryResponse
	testutil.DecodeJSONBody(t, w.Body, &after)
	if len(after.Data) != 0 {
		t.Fatalf("expected empty history after clear, got %d rows", len(after.Data))
	}
}

func TestEndpointsSurfaceStorageFailures(t *testing.T) {
	router, db := newTestRouter(t)
	if err := db.Close(); err != nil {
		t.Fatalf("closing database: %v", err)
	}

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/history"},
		{http.MethodGet, "/history/statistics"},
		{http.MethodDelete, "/history"},
	} {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		w := testutil.ExecuteRequest(req, router)
		testutil.CheckResponseCode(t, http.StatusInternalServerError, w.Code)
	}
}

func TestQueryInt(t *testing.T) {
	for _, tc := range []struct {
		raw    string
		def    int
		want   int
		wantOK bool
	}{
		{raw: "", def: 10, want: 10, wantOK: true},
		{raw: "25", def: 10, want: 25, wantOK: true},
		{raw: "-5", def: 10, want: -5, wantOK: true},
		{raw: "abc", def: 10, wantOK: false},
		{raw: "1.5", def: 10, wantOK: false},
	} {
		req := httptest.NewRequest(http.MethodGet, "/history?limit="+tc.raw, nil)
		got, ok := queryInt(req, "limit", tc.def)
		if ok != tc.wantOK {
			t.Fatalf("queryInt(%q): ok = %v, want %v", tc.raw, ok, tc.wantOK)
		}
		if ok && got != tc.want {
			t.Fatalf("queryInt(%q) = %d, want %d", tc.raw, got, tc.want)
		}
	}
}
