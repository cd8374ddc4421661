// Package memory provides the default in-memory implementation of the
// record stores used by the bridges and by tests.
package memory

import (
	"context"
	"slices"
	"sync"

	"rostercore/pkg/domain"
)

// Compile-time contract assertions ensuring memory types adhere to the domain persistence interfaces.
var (
	_ domain.PersistentStore                   = (*Store)(nil)
	_ domain.RecordStore[domain.TeamRecord]   = (*Table[domain.TeamRecord])(nil)
	_ domain.RecordStore[domain.PlayerRecord] = (*Table[domain.PlayerRecord])(nil)
)

// Table is an insertion-ordered, mutex-guarded slice of records of one type.
// Identifiers are not required to be unique.
type Table[R domain.Record[R]] struct {
	entity   domain.EntityType
	keyField string
	mu       sync.RWMutex
	rows     []R
}

// NewTable constructs an empty table. keyField names the identifier in
// validation errors raised by Delete.
func NewTable[R domain.Record[R]](entity domain.EntityType, keyField string) *Table[R] {
	return &Table[R]{entity: entity, keyField: keyField}
}

// Insert appends a copy of record and echoes its identifier.
func (t *Table[R]) Insert(_ context.Context, record R) (int64, error) {
	if err := record.Validate(); err != nil {
		return 0, err
	}
	id, _ := record.Key()
	t.mu.Lock()
	t.rows = append(t.rows, record.Clone())
	t.mu.Unlock()
	return id, nil
}

// Delete removes the first record whose identifier matches record's.
func (t *Table[R]) Delete(_ context.Context, record R) error {
	id, ok := record.Key()
	if !ok {
		return domain.MissingKey(t.entity, t.keyField)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, row := range t.rows {
		if k, ok := row.Key(); ok && k == id {
			t.rows = slices.Delete(t.rows, i, i+1)
			return nil
		}
	}
	return domain.NotFoundError{Entity: t.entity, ID: id}
}

// FindAll returns copies of every record in insertion order.
func (t *Table[R]) FindAll(_ context.Context) ([]R, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]R, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, row.Clone())
	}
	return out, nil
}

// Find returns a copy of the first record with the identifier.
func (t *Table[R]) Find(_ context.Context, id int64) (R, bool, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, row := range t.rows {
		if k, ok := row.Key(); ok && k == id {
			return row.Clone(), true, nil
		}
	}
	var zero R
	return zero, false, nil
}

// Len returns the number of stored records.
func (t *Table[R]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

func (t *Table[R]) replace(rows []R) {
	cp := make([]R, 0, len(rows))
	for _, row := range rows {
		cp = append(cp, row.Clone())
	}
	t.mu.Lock()
	t.rows = cp
	t.mu.Unlock()
}

// Snapshot captures a point-in-time clone of the store state.
type Snapshot struct {
	Teams   []domain.TeamRecord   `json:"teams" yaml:"teams"`
	Players []domain.PlayerRecord `json:"players" yaml:"players"`
}

// Store holds one table per record type. Its lifetime is the owner's; there
// is no process-wide instance.
type Store struct {
	teams   *Table[domain.TeamRecord]
	players *Table[domain.PlayerRecord]
}

// NewStore constructs an empty in-memory store.
func NewStore() *Store {
	return &Store{
		teams:   NewTable[domain.TeamRecord](domain.EntityTeam, "team_id"),
		players: NewTable[domain.PlayerRecord](domain.EntityPlayer, "player_id"),
	}
}

// Teams returns the team table.
func (s *Store) Teams() domain.RecordStore[domain.TeamRecord] { return s.teams }

// Players returns the player table.
func (s *Store) Players() domain.RecordStore[domain.PlayerRecord] { return s.players }

// Close is a no-op; memory stores hold no external resources.
func (s *Store) Close() error { return nil }

// ExportState clones the current store state.
func (s *Store) ExportState() Snapshot {
	teams, _ := s.teams.FindAll(context.Background())
	players, _ := s.players.FindAll(context.Background())
	return Snapshot{Teams: teams, Players: players}
}

// ImportState replaces the store state with a copy of the snapshot. Records
// are not validated, matching whatever state produced the snapshot.
func (s *Store) ImportState(snapshot Snapshot) {
	s.teams.replace(snapshot.Teams)
	s.players.replace(snapshot.Players)
}
