package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"rostercore/internal/infra/persistence/memory"
	"rostercore/internal/infra/persistence/storetest"
	"rostercore/pkg/domain"
)

func TestMemoryStoreContract(t *testing.T) {
	storetest.RunContract(t, func(t *testing.T) domain.PersistentStore {
		store := memory.NewStore()
		t.Cleanup(func() { _ = store.Close() })
		return store
	})
}

func TestMemoryStoreExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	if _, err := store.Teams().Insert(ctx, storetest.Team(0, "Boston", "Red Sox", "BOS")); err != nil {
		t.Fatalf("insert team: %v", err)
	}
	if _, err := store.Players().Insert(ctx, storetest.Player(0, "David", "Ortiz", 34, 0, domain.PositionDesignatedHitter)); err != nil {
		t.Fatalf("insert player: %v", err)
	}

	snap := store.ExportState()
	*snap.Teams[0].City = "Mutated"
	if got, _, _ := store.Teams().Find(ctx, 0); *got.City != "Boston" {
		t.Fatalf("export aliased store state")
	}

	*snap.Teams[0].City = "Boston"
	restored := memory.NewStore()
	restored.ImportState(snap)
	if diff := cmp.Diff(snap, restored.ExportState()); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestTableConcurrentInserts(t *testing.T) {
	ctx := context.Background()
	table := memory.NewTable[domain.TeamRecord](domain.EntityTeam, "team_id")
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := table.Insert(ctx, storetest.Team(int64(i), "City", "Nick", "ABC")); err != nil {
				t.Errorf("insert %d: %v", i, err)
			}
		}(i)
	}
	wg.Wait()
	if table.Len() != 16 {
		t.Fatalf("expected 16 rows, got %d", table.Len())
	}
}
