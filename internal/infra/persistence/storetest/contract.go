// Package storetest holds the behavioural contract every domain.PersistentStore
// backend must satisfy. Backend packages call RunContract from their tests.
package storetest

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"rostercore/pkg/domain"
)

// Factory returns a fresh, empty store for one subtest.
type Factory func(t *testing.T) domain.PersistentStore

// Team builds a complete team record.
func Team(id int64, city, nick, abbr string) domain.TeamRecord {
	return domain.TeamRecord{
		TeamID:       domain.Ptr(id),
		City:         domain.Ptr(city),
		NickName:     domain.Ptr(nick),
		Abbreviation: domain.Ptr(abbr),
	}
}

// Player builds a complete player record.
func Player(id int64, first, last string, number int, teamID int64, pos domain.Position) domain.PlayerRecord {
	return domain.PlayerRecord{
		PlayerID:  domain.Ptr(id),
		FirstName: domain.Ptr(first),
		LastName:  domain.Ptr(last),
		Number:    domain.Ptr(number),
		TeamID:    domain.Ptr(teamID),
		Position:  domain.Ptr(pos),
	}
}

// RunContract exercises insert/delete/find-all/find against the backend.
func RunContract(t *testing.T, open Factory) {
	t.Helper()
	ctx := context.Background()

	t.Run("insert rejects missing fields without mutating", func(t *testing.T) {
		store := open(t)
		incomplete := domain.TeamRecord{TeamID: domain.Ptr(int64(1)), City: domain.Ptr("Boston")}
		if _, err := store.Teams().Insert(ctx, incomplete); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
		player := Player(1, "David", "Ortiz", 34, 0, domain.PositionDesignatedHitter)
		player.Position = nil
		if _, err := store.Players().Insert(ctx, player); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected player validation error, got %v", err)
		}
		teams, err := store.Teams().FindAll(ctx)
		if err != nil {
			t.Fatalf("find all teams: %v", err)
		}
		players, err := store.Players().FindAll(ctx)
		if err != nil {
			t.Fatalf("find all players: %v", err)
		}
		if len(teams) != 0 || len(players) != 0 {
			t.Fatalf("expected empty store, got %d teams %d players", len(teams), len(players))
		}
	})

	t.Run("insert then find is field-wise equal", func(t *testing.T) {
		store := open(t)
		team := Team(0, "Boston", "Red Sox", "BOS")
		id, err := store.Teams().Insert(ctx, team)
		if err != nil {
			t.Fatalf("insert team: %v", err)
		}
		if id != 0 {
			t.Fatalf("expected echoed id 0, got %d", id)
		}
		got, ok, err := store.Teams().Find(ctx, id)
		if err != nil || !ok {
			t.Fatalf("find team: ok=%v err=%v", ok, err)
		}
		if diff := cmp.Diff(team, got); diff != "" {
			t.Fatalf("team mismatch (-want +got):\n%s", diff)
		}

		player := Player(7, "David", "Ortiz", 34, 0, domain.PositionDesignatedHitter)
		pid, err := store.Players().Insert(ctx, player)
		if err != nil {
			t.Fatalf("insert player: %v", err)
		}
		gotPlayer, ok, err := store.Players().Find(ctx, pid)
		if err != nil || !ok {
			t.Fatalf("find player: ok=%v err=%v", ok, err)
		}
		if diff := cmp.Diff(player, gotPlayer); diff != "" {
			t.Fatalf("player mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("find missing is absent not error", func(t *testing.T) {
		store := open(t)
		_, ok, err := store.Teams().Find(ctx, 42)
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if ok {
			t.Fatalf("expected absent team")
		}
	})

	t.Run("find all preserves insertion order and duplicates", func(t *testing.T) {
		store := open(t)
		rows := []domain.TeamRecord{
			Team(3, "New York", "Yankees", "NYY"),
			Team(1, "Boston", "Red Sox", "BOS"),
			Team(3, "Tampa Bay", "Rays", "TB"),
		}
		for _, r := range rows {
			if _, err := store.Teams().Insert(ctx, r); err != nil {
				t.Fatalf("insert: %v", err)
			}
		}
		all, err := store.Teams().FindAll(ctx)
		if err != nil {
			t.Fatalf("find all: %v", err)
		}
		if diff := cmp.Diff(rows, all); diff != "" {
			t.Fatalf("order mismatch (-want +got):\n%s", diff)
		}
		first, ok, err := store.Teams().Find(ctx, 3)
		if err != nil || !ok {
			t.Fatalf("find duplicate: ok=%v err=%v", ok, err)
		}
		if *first.City != "New York" {
			t.Fatalf("expected first inserted duplicate, got %s", *first.City)
		}
	})

	t.Run("delete removes first match only", func(t *testing.T) {
		store := open(t)
		for _, r := range []domain.TeamRecord{
			Team(5, "Chicago", "Cubs", "CHC"),
			Team(5, "Chicago", "White Sox", "CWS"),
		} {
			if _, err := store.Teams().Insert(ctx, r); err != nil {
				t.Fatalf("insert: %v", err)
			}
		}
		if err := store.Teams().Delete(ctx, domain.TeamRecord{TeamID: domain.Ptr(int64(5))}); err != nil {
			t.Fatalf("delete: %v", err)
		}
		all, err := store.Teams().FindAll(ctx)
		if err != nil {
			t.Fatalf("find all: %v", err)
		}
		if len(all) != 1 || *all[0].NickName != "White Sox" {
			t.Fatalf("expected only the second duplicate to remain, got %+v", all)
		}
	})

	t.Run("delete missing id fails and leaves store unchanged", func(t *testing.T) {
		store := open(t)
		if _, err := store.Players().Insert(ctx, Player(1, "Ted", "Williams", 9, 0, domain.PositionLeftField)); err != nil {
			t.Fatalf("insert: %v", err)
		}
		err := store.Players().Delete(ctx, domain.PlayerRecord{PlayerID: domain.Ptr(int64(99))})
		var nf domain.NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
		if nf.ID != 99 || nf.Entity != domain.EntityPlayer {
			t.Fatalf("unexpected not found payload %+v", nf)
		}
		all, err := store.Players().FindAll(ctx)
		if err != nil {
			t.Fatalf("find all: %v", err)
		}
		if len(all) != 1 {
			t.Fatalf("expected store unchanged, got %d players", len(all))
		}
	})

	t.Run("delete without id is a validation error", func(t *testing.T) {
		store := open(t)
		if err := store.Teams().Delete(ctx, domain.TeamRecord{City: domain.Ptr("Boston")}); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("returned records are copies", func(t *testing.T) {
		store := open(t)
		team := Team(1, "Boston", "Red Sox", "BOS")
		if _, err := store.Teams().Insert(ctx, team); err != nil {
			t.Fatalf("insert: %v", err)
		}
		*team.City = "Mutated"
		got, _, err := store.Teams().Find(ctx, 1)
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if *got.City != "Boston" {
			t.Fatalf("store aliased caller's record: %s", *got.City)
		}
		*got.City = "Mutated again"
		again, _, _ := store.Teams().Find(ctx, 1)
		if *again.City != "Boston" {
			t.Fatalf("store aliased returned record: %s", *again.City)
		}
	})
}
