package domain

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTeamRecordValidateReportsEveryMissingField(t *testing.T) {
	err := TeamRecord{TeamID: Ptr(int64(1))}.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	want := []string{"city", "nick_name", "abbreviation"}
	if diff := cmp.Diff(want, verr.Fields); diff != "" {
		t.Fatalf("missing fields mismatch (-want +got):\n%s", diff)
	}
	if verr.Entity != EntityTeam {
		t.Fatalf("expected team entity, got %s", verr.Entity)
	}
}

func TestPlayerRecordValidate(t *testing.T) {
	complete := PlayerRecord{
		PlayerID:  Ptr(int64(0)),
		FirstName: Ptr("David"),
		LastName:  Ptr("Ortiz"),
		Number:    Ptr(34),
		TeamID:    Ptr(int64(0)),
		Position:  Ptr(PositionDesignatedHitter),
	}
	if err := complete.Validate(); err != nil {
		t.Fatalf("complete player: %v", err)
	}

	cases := map[string]func(*PlayerRecord){
		"player_id":  func(r *PlayerRecord) { r.PlayerID = nil },
		"first_name": func(r *PlayerRecord) { r.FirstName = nil },
		"last_name":  func(r *PlayerRecord) { r.LastName = nil },
		"number":     func(r *PlayerRecord) { r.Number = nil },
		"team_id":    func(r *PlayerRecord) { r.TeamID = nil },
		"position":   func(r *PlayerRecord) { r.Position = nil },
	}
	for field, strip := range cases {
		t.Run(field, func(t *testing.T) {
			rec := complete.Clone()
			strip(&rec)
			var verr ValidationError
			if err := rec.Validate(); !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if len(verr.Fields) != 1 || verr.Fields[0] != field {
				t.Fatalf("expected only %s missing, got %v", field, verr.Fields)
			}
		})
	}
}

func TestRecordCloneIsDeep(t *testing.T) {
	orig := TeamRecord{TeamID: Ptr(int64(7)), City: Ptr("Boston"), NickName: Ptr("Red Sox"), Abbreviation: Ptr("BOS")}
	cp := orig.Clone()
	*cp.City = "Chicago"
	if *orig.City != "Boston" {
		t.Fatalf("clone shares city pointer with original")
	}

	player := PlayerRecord{Position: Ptr(PositionCatcher)}
	pc := player.Clone()
	*pc.Position = PositionPitcher
	if *player.Position != PositionCatcher {
		t.Fatalf("clone shares position pointer with original")
	}
}

func TestKeyReportsPresence(t *testing.T) {
	if _, ok := (TeamRecord{}).Key(); ok {
		t.Fatalf("expected absent key")
	}
	if id, ok := (PlayerRecord{PlayerID: Ptr(int64(12))}).Key(); !ok || id != 12 {
		t.Fatalf("expected key 12, got %d %v", id, ok)
	}
}

func TestParsePosition(t *testing.T) {
	for _, p := range Positions() {
		got, err := ParsePosition(string(p))
		if err != nil {
			t.Fatalf("parse %q: %v", p, err)
		}
		if got != p {
			t.Fatalf("expected %q, got %q", p, got)
		}
	}
	if got, err := ParsePosition("  designated hitter "); err != nil || got != PositionDesignatedHitter {
		t.Fatalf("expected case-insensitive match, got %q %v", got, err)
	}
	if _, err := ParsePosition("goalkeeper"); err == nil {
		t.Fatalf("expected error for unknown position")
	}
	if Position("Goalkeeper").Valid() {
		t.Fatalf("unexpected valid position")
	}
	if len(Positions()) != 10 {
		t.Fatalf("expected 10 positions, got %d", len(Positions()))
	}
}
