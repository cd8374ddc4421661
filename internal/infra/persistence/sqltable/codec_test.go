package sqltable

import (
	"database/sql"
	"fmt"

	"rostercore/pkg/domain"
)

func playerWithoutPosition() domain.PlayerRecord {
	return domain.PlayerRecord{
		PlayerID:  domain.Ptr(int64(34)),
		FirstName: domain.Ptr("David"),
		LastName:  domain.Ptr("Ortiz"),
		Number:    domain.Ptr(34),
		TeamID:    domain.Ptr(int64(1)),
	}
}

type fakeRow []any

func (r fakeRow) Scan(dest ...any) error {
	if len(dest) != len(r) {
		return fmt.Errorf("expected %d destinations, got %d", len(r), len(dest))
	}
	for i, d := range dest {
		if s, ok := d.(sql.Scanner); ok {
			if err := s.Scan(r[i]); err != nil {
				return err
			}
			continue
		}
		return fmt.Errorf("unsupported destination %T", d)
	}
	return nil
}
