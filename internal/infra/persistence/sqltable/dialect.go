// Package sqltable implements domain.RecordStore on top of database/sql.
// Each record type maps to one table with a monotonically increasing seq
// column that preserves insertion order, so identifiers may repeat exactly
// as they may in the in-memory store.
package sqltable

import (
	"strconv"
	"strings"
)

// Dialect captures the SQL differences between supported backends.
type Dialect struct {
	Name string
	// SeqColumn is the DDL for the insertion-order column named seq.
	SeqColumn string
	// Placeholder renders the n-th (1-based) bind parameter.
	Placeholder func(n int) string
}

// Supported dialects.
var (
	SQLite = Dialect{
		Name:        "sqlite",
		SeqColumn:   "seq INTEGER PRIMARY KEY AUTOINCREMENT",
		Placeholder: func(int) string { return "?" },
	}
	Postgres = Dialect{
		Name:        "postgres",
		SeqColumn:   "seq BIGSERIAL PRIMARY KEY",
		Placeholder: func(n int) string { return "$" + strconv.Itoa(n) },
	}
)

func (d Dialect) placeholders(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = d.Placeholder(i + 1)
	}
	return strings.Join(parts, ", ")
}

func (d Dialect) createTable(table string, cols []Column) string {
	defs := make([]string, 0, len(cols)+1)
	defs = append(defs, d.SeqColumn)
	for _, c := range cols {
		defs = append(defs, c.Name+" "+c.Type+" NULL")
	}
	return "CREATE TABLE IF NOT EXISTS " + table + " (\n\t" + strings.Join(defs, ",\n\t") + "\n)"
}

func (d Dialect) insert(table string, cols []Column) string {
	return "INSERT INTO " + table + " (" + columnList(cols) + ") VALUES (" + d.placeholders(len(cols)) + ")"
}

func (d Dialect) deleteFirst(table, key string) string {
	return "DELETE FROM " + table + " WHERE seq = (SELECT seq FROM " + table +
		" WHERE " + key + " = " + d.Placeholder(1) + " ORDER BY seq LIMIT 1)"
}

func (d Dialect) selectAll(table string, cols []Column) string {
	return "SELECT " + columnList(cols) + " FROM " + table + " ORDER BY seq"
}

func (d Dialect) selectFirst(table, key string, cols []Column) string {
	return "SELECT " + columnList(cols) + " FROM " + table +
		" WHERE " + key + " = " + d.Placeholder(1) + " ORDER BY seq LIMIT 1"
}

func columnList(cols []Column) string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	return strings.Join(names, ", ")
}
