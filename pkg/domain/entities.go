// Package domain defines the flat record types, value types, error taxonomy
// and persistence contracts shared by rostercore stores and bridges.
package domain

import (
	"fmt"
	"strings"
)

// EntityType identifies the type of record stored in a record store.
type EntityType string

// Supported entity type identifiers used in errors, metrics and SQL tables.
const (
	// EntityTeam identifies a team record.
	EntityTeam EntityType = "team"
	// EntityPlayer identifies a player record.
	EntityPlayer EntityType = "player"
)

// Position enumerates the fielding positions a player can be registered for.
type Position string

// Canonical positions, stored by display name.
const (
	PositionPitcher          Position = "Pitcher"
	PositionCatcher          Position = "Catcher"
	PositionFirstBase        Position = "First Base"
	PositionSecondBase       Position = "Second Base"
	PositionThirdBase        Position = "Third Base"
	PositionShortstop        Position = "Shortstop"
	PositionLeftField        Position = "Left Field"
	PositionCenterField      Position = "Center Field"
	PositionRightField       Position = "Right Field"
	PositionDesignatedHitter Position = "Designated Hitter"
)

var allPositions = []Position{
	PositionPitcher,
	PositionCatcher,
	PositionFirstBase,
	PositionSecondBase,
	PositionThirdBase,
	PositionShortstop,
	PositionLeftField,
	PositionCenterField,
	PositionRightField,
	PositionDesignatedHitter,
}

// Positions returns every known position in roster order.
func Positions() []Position {
	out := make([]Position, len(allPositions))
	copy(out, allPositions)
	return out
}

// ParsePosition resolves a display name (case-insensitive) to a Position.
func ParsePosition(name string) (Position, error) {
	trimmed := strings.TrimSpace(name)
	for _, p := range allPositions {
		if strings.EqualFold(string(p), trimmed) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown position %q", name)
}

// Valid reports whether p is one of the canonical positions.
func (p Position) Valid() bool {
	for _, known := range allPositions {
		if p == known {
			return true
		}
	}
	return false
}

// TeamRecord is the flat stored shape of a team. Every field is optional
// until the record is inserted, at which point all of them are required.
type TeamRecord struct {
	TeamID       *int64  `json:"team_id,omitempty" yaml:"team_id,omitempty"`
	City         *string `json:"city,omitempty" yaml:"city,omitempty"`
	NickName     *string `json:"nick_name,omitempty" yaml:"nick_name,omitempty"`
	Abbreviation *string `json:"abbreviation,omitempty" yaml:"abbreviation,omitempty"`
}

// Key returns the record identifier and whether it is present.
func (r TeamRecord) Key() (int64, bool) {
	if r.TeamID == nil {
		return 0, false
	}
	return *r.TeamID, true
}

// Validate reports every absent required field as a single ValidationError.
func (r TeamRecord) Validate() error {
	var missing fieldCheck
	missing.require("team_id", r.TeamID != nil)
	missing.require("city", r.City != nil)
	missing.require("nick_name", r.NickName != nil)
	missing.require("abbreviation", r.Abbreviation != nil)
	return missing.err(EntityTeam)
}

// Clone returns a deep copy of the record.
func (r TeamRecord) Clone() TeamRecord {
	return TeamRecord{
		TeamID:       clonePtr(r.TeamID),
		City:         clonePtr(r.City),
		NickName:     clonePtr(r.NickName),
		Abbreviation: clonePtr(r.Abbreviation),
	}
}

// PlayerRecord is the flat stored shape of a player. TeamID references a
// TeamRecord but the reference is not enforced by stores.
type PlayerRecord struct {
	PlayerID  *int64    `json:"player_id,omitempty" yaml:"player_id,omitempty"`
	FirstName *string   `json:"first_name,omitempty" yaml:"first_name,omitempty"`
	LastName  *string   `json:"last_name,omitempty" yaml:"last_name,omitempty"`
	Number    *int      `json:"number,omitempty" yaml:"number,omitempty"`
	TeamID    *int64    `json:"team_id,omitempty" yaml:"team_id,omitempty"`
	Position  *Position `json:"position,omitempty" yaml:"position,omitempty"`
}

// Key returns the record identifier and whether it is present.
func (r PlayerRecord) Key() (int64, bool) {
	if r.PlayerID == nil {
		return 0, false
	}
	return *r.PlayerID, true
}

// Validate reports every absent required field as a single ValidationError.
func (r PlayerRecord) Validate() error {
	var missing fieldCheck
	missing.require("player_id", r.PlayerID != nil)
	missing.require("first_name", r.FirstName != nil)
	missing.require("last_name", r.LastName != nil)
	missing.require("number", r.Number != nil)
	missing.require("team_id", r.TeamID != nil)
	missing.require("position", r.Position != nil)
	return missing.err(EntityPlayer)
}

// Clone returns a deep copy of the record.
func (r PlayerRecord) Clone() PlayerRecord {
	return PlayerRecord{
		PlayerID:  clonePtr(r.PlayerID),
		FirstName: clonePtr(r.FirstName),
		LastName:  clonePtr(r.LastName),
		Number:    clonePtr(r.Number),
		TeamID:    clonePtr(r.TeamID),
		Position:  clonePtr(r.Position),
	}
}

// Ptr returns a pointer to a copy of v. It keeps optional-field literals short.
func Ptr[T any](v T) *T {
	return &v
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
