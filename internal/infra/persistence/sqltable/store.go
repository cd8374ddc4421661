package sqltable

import (
	"context"
	"database/sql"

	"rostercore/pkg/domain"
)

var _ domain.PersistentStore = (*Store)(nil)

// Store groups the team and player tables over one database handle.
type Store struct {
	db      *sql.DB
	teams   *Table[domain.TeamRecord]
	players *Table[domain.PlayerRecord]
}

// Open migrates both tables and returns a store that owns db.
func Open(ctx context.Context, db *sql.DB, dialect Dialect) (*Store, error) {
	s := &Store{
		db:      db,
		teams:   NewTable(db, dialect, TeamCodec),
		players: NewTable(db, dialect, PlayerCodec),
	}
	if err := s.teams.Migrate(ctx); err != nil {
		return nil, err
	}
	if err := s.players.Migrate(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Teams returns the team table.
func (s *Store) Teams() domain.RecordStore[domain.TeamRecord] { return s.teams }

// Players returns the player table.
func (s *Store) Players() domain.RecordStore[domain.PlayerRecord] { return s.players }

// DB exposes the underlying sql.DB for integration testing hooks.
func (s *Store) DB() *sql.DB { return s.db }

// Close closes the database handle.
func (s *Store) Close() error { return s.db.Close() }
