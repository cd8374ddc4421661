package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorTaxonomyMatchesSentinels(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"validation", MissingKey(EntityTeam, "team_id"), ErrValidation},
		{"not found", NotFoundError{Entity: EntityPlayer, ID: 3}, ErrNotFound},
		{"index", IndexError{Index: 4, Len: 2}, ErrIndex},
		{"datastore", DatastoreError{Entity: EntityTeam, Op: "find", Err: errors.New("conn reset")}, ErrDatastore},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := fmt.Errorf("outer: %w", tc.err)
			if !errors.Is(wrapped, tc.sentinel) {
				t.Fatalf("expected %v to match %v", wrapped, tc.sentinel)
			}
			if tc.err.Error() == "" {
				t.Fatalf("expected error message")
			}
		})
	}
}

func TestDatastoreErrorUnwrapsBackendError(t *testing.T) {
	backend := errors.New("connection refused")
	err := DatastoreError{Entity: EntityPlayer, Op: "insert", Err: backend}
	if !errors.Is(err, backend) {
		t.Fatalf("expected backend error to be reachable")
	}
	if !strings.Contains(err.Error(), "player insert") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestNotFoundErrorMessage(t *testing.T) {
	if got := (NotFoundError{Entity: EntityTeam, ID: 9}).Error(); got != "team 9 not found" {
		t.Fatalf("unexpected message %q", got)
	}
}
