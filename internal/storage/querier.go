package storage

import (
	"context"
	"database/sql"
)

// Querier is the unit-of-work handed to the store for one request. It is
// satisfied by *sql.DB, *sql.Conn and *sql.Tx; the HTTP layer acquires a
// dedicated *sql.Conn per request and releases it when the request ends.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
