package domain

import "context"

// Record is the constraint satisfied by every storable record type.
type Record[R any] interface {
	Key() (int64, bool)
	Validate() error
	Clone() R
}

// RecordStore is an insertion-ordered collection of records of one type.
// Identifiers are echoed from the input on insert and are not required to be
// unique; lookups and deletes act on the first match in insertion order.
type RecordStore[R any] interface {
	// Insert appends the record and returns its identifier. It fails with a
	// ValidationError when a required field is absent.
	Insert(ctx context.Context, record R) (int64, error)
	// Delete removes the first record whose identifier matches. It fails with
	// a ValidationError when the identifier is absent and a NotFoundError when
	// nothing matches.
	Delete(ctx context.Context, record R) error
	// FindAll returns a copy of every record in insertion order.
	FindAll(ctx context.Context) ([]R, error)
	// Find returns the first record with the identifier. Absence is not an error.
	Find(ctx context.Context, id int64) (R, bool, error)
}

// PersistentStore groups the record stores a backend provides.
type PersistentStore interface {
	Teams() RecordStore[TeamRecord]
	Players() RecordStore[PlayerRecord]
	Close() error
}
