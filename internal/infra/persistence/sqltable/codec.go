package sqltable

import (
	"database/sql"

	"rostercore/pkg/domain"
)

// Column describes one nullable record column.
type Column struct {
	Name string
	Type string
}

// Codec maps a record type onto a table.
type Codec[R any] struct {
	Entity domain.EntityType
	Table  string
	// Key is the identifier column; it must appear in Columns.
	Key     string
	Columns []Column
	// Values returns bind values in Columns order, nil for absent fields.
	Values func(R) []any
	// Scan reads one row selected in Columns order.
	Scan func(row interface{ Scan(dest ...any) error }) (R, error)
}

// TeamCodec maps domain.TeamRecord onto the teams table.
var TeamCodec = Codec[domain.TeamRecord]{
	Entity: domain.EntityTeam,
	Table:  "teams",
	Key:    "team_id",
	Columns: []Column{
		{Name: "team_id", Type: "BIGINT"},
		{Name: "city", Type: "TEXT"},
		{Name: "nick_name", Type: "TEXT"},
		{Name: "abbreviation", Type: "TEXT"},
	},
	Values: func(r domain.TeamRecord) []any {
		return []any{nullInt64(r.TeamID), nullString(r.City), nullString(r.NickName), nullString(r.Abbreviation)}
	},
	Scan: func(row interface{ Scan(dest ...any) error }) (domain.TeamRecord, error) {
		var (
			id                 sql.NullInt64
			city, nick, abbrev sql.NullString
		)
		if err := row.Scan(&id, &city, &nick, &abbrev); err != nil {
			return domain.TeamRecord{}, err
		}
		return domain.TeamRecord{
			TeamID:       int64Ptr(id),
			City:         stringPtr(city),
			NickName:     stringPtr(nick),
			Abbreviation: stringPtr(abbrev),
		}, nil
	},
}

// PlayerCodec maps domain.PlayerRecord onto the players table.
var PlayerCodec = Codec[domain.PlayerRecord]{
	Entity: domain.EntityPlayer,
	Table:  "players",
	Key:    "player_id",
	Columns: []Column{
		{Name: "player_id", Type: "BIGINT"},
		{Name: "first_name", Type: "TEXT"},
		{Name: "last_name", Type: "TEXT"},
		{Name: "number", Type: "BIGINT"},
		{Name: "team_id", Type: "BIGINT"},
		{Name: "position", Type: "TEXT"},
	},
	Values: func(r domain.PlayerRecord) []any {
		var number, position any
		if r.Number != nil {
			number = int64(*r.Number)
		}
		if r.Position != nil {
			position = string(*r.Position)
		}
		return []any{nullInt64(r.PlayerID), nullString(r.FirstName), nullString(r.LastName), number, nullInt64(r.TeamID), position}
	},
	Scan: func(row interface{ Scan(dest ...any) error }) (domain.PlayerRecord, error) {
		var (
			id, number, teamID    sql.NullInt64
			first, last, position sql.NullString
		)
		if err := row.Scan(&id, &first, &last, &number, &teamID, &position); err != nil {
			return domain.PlayerRecord{}, err
		}
		rec := domain.PlayerRecord{
			PlayerID:  int64Ptr(id),
			FirstName: stringPtr(first),
			LastName:  stringPtr(last),
			TeamID:    int64Ptr(teamID),
		}
		if number.Valid {
			rec.Number = domain.Ptr(int(number.Int64))
		}
		if position.Valid {
			rec.Position = domain.Ptr(domain.Position(position.String))
		}
		return rec, nil
	},
}

func nullInt64(p *int64) any {
	if p == nil {
		return nil
	}
	return *p
}

func nullString(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func int64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return domain.Ptr(v.Int64)
}

func stringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return domain.Ptr(v.String)
}
