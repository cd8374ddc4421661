package sqltable

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"rostercore/pkg/domain"
)

// Table is a domain.RecordStore backed by one SQL table.
type Table[R domain.Record[R]] struct {
	db      *sql.DB
	dialect Dialect
	codec   Codec[R]
}

// NewTable binds a codec to a database handle. Call Migrate before use.
func NewTable[R domain.Record[R]](db *sql.DB, dialect Dialect, codec Codec[R]) *Table[R] {
	return &Table[R]{db: db, dialect: dialect, codec: codec}
}

// Migrate creates the table when it does not exist.
func (t *Table[R]) Migrate(ctx context.Context) error {
	if _, err := t.db.ExecContext(ctx, t.dialect.createTable(t.codec.Table, t.codec.Columns)); err != nil {
		return t.fail("migrate", err)
	}
	return nil
}

// Insert validates and appends the record, echoing its identifier.
func (t *Table[R]) Insert(ctx context.Context, record R) (int64, error) {
	if err := record.Validate(); err != nil {
		return 0, err
	}
	id, _ := record.Key()
	if _, err := t.db.ExecContext(ctx, t.dialect.insert(t.codec.Table, t.codec.Columns), t.codec.Values(record)...); err != nil {
		return 0, t.fail("insert", err)
	}
	return id, nil
}

// Delete removes the earliest row carrying the record's identifier.
func (t *Table[R]) Delete(ctx context.Context, record R) error {
	id, ok := record.Key()
	if !ok {
		return domain.MissingKey(t.codec.Entity, t.codec.Key)
	}
	res, err := t.db.ExecContext(ctx, t.dialect.deleteFirst(t.codec.Table, t.codec.Key), id)
	if err != nil {
		return t.fail("delete", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return t.fail("delete", err)
	}
	if n == 0 {
		return domain.NotFoundError{Entity: t.codec.Entity, ID: id}
	}
	return nil
}

// FindAll returns every row in insertion order.
func (t *Table[R]) FindAll(ctx context.Context) ([]R, error) {
	rows, err := t.db.QueryContext(ctx, t.dialect.selectAll(t.codec.Table, t.codec.Columns))
	if err != nil {
		return nil, t.fail("find all", err)
	}
	defer func() { _ = rows.Close() }()
	out := []R{}
	for rows.Next() {
		rec, err := t.codec.Scan(rows)
		if err != nil {
			return nil, t.fail("scan", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, t.fail("iterate", err)
	}
	return out, nil
}

// Find returns the earliest row with the identifier.
func (t *Table[R]) Find(ctx context.Context, id int64) (R, bool, error) {
	var zero R
	row := t.db.QueryRowContext(ctx, t.dialect.selectFirst(t.codec.Table, t.codec.Key, t.codec.Columns), id)
	rec, err := t.codec.Scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, t.fail("find", err)
	}
	return rec, true, nil
}

func (t *Table[R]) fail(op string, err error) error {
	return domain.DatastoreError{Entity: t.codec.Entity, Op: op, Err: fmt.Errorf("%s %s: %w", t.dialect.Name, t.codec.Table, err)}
}
