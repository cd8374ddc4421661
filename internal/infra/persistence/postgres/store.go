// Package postgres provides a Postgres-backed persistent store with the same
// record semantics as the in-memory store. It is opt-in and never selected
// unless a DSN is configured.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"rostercore/internal/infra/persistence/sqltable"
	"rostercore/pkg/domain"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
)

// Compile-time contract assertion ensuring the store satisfies the domain interface.
var _ domain.PersistentStore = (*Store)(nil)

const defaultDriver = "pgx"

// ErrMissingDSN is returned when no connection string is supplied.
var ErrMissingDSN = errors.New("postgres: dsn is required")

var (
	sqlOpen = sql.Open
	openMu  sync.Mutex
)

// Store persists team and player records to Postgres tables.
type Store struct {
	*sqltable.Store
}

// NewStore opens and pings the database, then creates the teams and players
// tables when absent.
func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, ErrMissingDSN
	}
	openMu.Lock()
	db, err := sqlOpen(defaultDriver, dsn)
	openMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	inner, err := sqltable.Open(ctx, db, sqltable.Postgres)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{Store: inner}, nil
}

// OverrideSQLOpen swaps the sqlOpen function for tests and returns a restore function.
func OverrideSQLOpen(fn func(driverName, dataSourceName string) (*sql.DB, error)) func() {
	openMu.Lock()
	defer openMu.Unlock()
	prev := sqlOpen
	sqlOpen = fn
	return func() {
		openMu.Lock()
		defer openMu.Unlock()
		sqlOpen = prev
	}
}
