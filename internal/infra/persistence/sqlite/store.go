// Package sqlite provides a domain.PersistentStore on the pure-Go SQLite
// driver. The default DSN is a private in-memory database, so nothing is
// written to disk unless the caller passes a file DSN.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"rostercore/internal/infra/persistence/sqltable"
	"rostercore/pkg/domain"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// DefaultDSN opens a database that lives only as long as the store.
const DefaultDSN = ":memory:"

var _ domain.PersistentStore = (*Store)(nil)

// Store is a SQLite-backed persistent store.
type Store struct {
	*sqltable.Store
}

// NewStore opens the DSN (falls back to DefaultDSN) and migrates the tables.
func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		dsn = DefaultDSN
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// An in-memory database is per connection; pin the pool to one.
	db.SetMaxOpenConns(1)
	inner, err := sqltable.Open(ctx, db, sqltable.SQLite)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{Store: inner}, nil
}
