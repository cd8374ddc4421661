package sqlite

import (
	"context"
	"errors"
	"testing"

	"rostercore/internal/infra/persistence/storetest"
	"rostercore/pkg/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(context.Background(), "")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStoreContract(t *testing.T) {
	storetest.RunContract(t, func(t *testing.T) domain.PersistentStore {
		return newTestStore(t)
	})
}

func TestStoresAreIsolated(t *testing.T) {
	ctx := context.Background()
	a := newTestStore(t)
	b := newTestStore(t)
	if _, err := a.Teams().Insert(ctx, storetest.Team(1, "Boston", "Red Sox", "BOS")); err != nil {
		t.Fatalf("insert: %v", err)
	}
	all, err := b.Teams().FindAll(ctx)
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected private in-memory database, got %d rows", len(all))
	}
}

func TestClosedStoreReportsDatastoreError(t *testing.T) {
	ctx := context.Background()
	store, err := NewStore(ctx, "")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	_, err = store.Players().Insert(ctx, storetest.Player(1, "David", "Ortiz", 34, 1, domain.PositionDesignatedHitter))
	if !errors.Is(err, domain.ErrDatastore) {
		t.Fatalf("expected datastore error, got %v", err)
	}
	var dsErr domain.DatastoreError
	if !errors.As(err, &dsErr) || dsErr.Entity != domain.EntityPlayer || dsErr.Op != "insert" {
		t.Fatalf("unexpected error detail: %#v", err)
	}
	if _, _, err := store.Teams().Find(ctx, 1); !errors.Is(err, domain.ErrDatastore) {
		t.Fatalf("expected datastore error from find, got %v", err)
	}
}

func TestPinnedConnectionKeepsRows(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	for i := 0; i < 3; i++ {
		if _, err := store.Teams().Insert(ctx, storetest.Team(int64(i), "City", "Nick", "ABC")); err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}
	if err := store.DB().PingContext(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}
	all, err := store.Teams().FindAll(ctx)
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 rows on the pinned connection, got %d", len(all))
	}
}
