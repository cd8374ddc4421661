package sqltable

import (
	"strings"
	"testing"
)

func TestDialectStatements(t *testing.T) {
	cols := TeamCodec.Columns
	cases := []struct {
		name string
		got  string
		want string
	}{
		{"sqlite insert", SQLite.insert("teams", cols), "INSERT INTO teams (team_id, city, nick_name, abbreviation) VALUES (?, ?, ?, ?)"},
		{"postgres insert", Postgres.insert("teams", cols), "INSERT INTO teams (team_id, city, nick_name, abbreviation) VALUES ($1, $2, $3, $4)"},
		{"postgres delete", Postgres.deleteFirst("teams", "team_id"), "DELETE FROM teams WHERE seq = (SELECT seq FROM teams WHERE team_id = $1 ORDER BY seq LIMIT 1)"},
		{"sqlite find", SQLite.selectFirst("teams", "team_id", cols), "SELECT team_id, city, nick_name, abbreviation FROM teams WHERE team_id = ? ORDER BY seq LIMIT 1"},
		{"sqlite find all", SQLite.selectAll("teams", cols), "SELECT team_id, city, nick_name, abbreviation FROM teams ORDER BY seq"},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Fatalf("%s:\nwant: %s\ngot:  %s", tc.name, tc.want, tc.got)
		}
	}
}

func TestCreateTableMarksEveryColumnNullable(t *testing.T) {
	ddl := SQLite.createTable("players", PlayerCodec.Columns)
	if !strings.HasPrefix(ddl, "CREATE TABLE IF NOT EXISTS players") {
		t.Fatalf("unexpected ddl: %s", ddl)
	}
	if !strings.Contains(ddl, "seq INTEGER PRIMARY KEY AUTOINCREMENT") {
		t.Fatalf("missing sequence column: %s", ddl)
	}
	for _, c := range PlayerCodec.Columns {
		if !strings.Contains(ddl, c.Name+" "+c.Type+" NULL") {
			t.Fatalf("column %s not declared nullable: %s", c.Name, ddl)
		}
	}
}

func TestPlayerCodecRoundTripsAbsentFields(t *testing.T) {
	vals := PlayerCodec.Values(playerWithoutPosition())
	if vals[5] != nil {
		t.Fatalf("expected nil position bind, got %v", vals[5])
	}
	rec, err := PlayerCodec.Scan(fakeRow(vals))
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if rec.Position != nil || rec.Number == nil || *rec.Number != 34 {
		t.Fatalf("unexpected record: %+v", rec)
	}
}
