package core

import (
	"fmt"

	"rostercore/pkg/domain"
)

// PlayerFields carries the constructor inputs for a Player.
type PlayerFields struct {
	ID        *int64
	FirstName *string
	LastName  *string
	Number    *int
	TeamID    *int64
	Position  *domain.Position
}

// Player is the domain form of a player record. It holds a snapshot of its
// team taken when the team id was last assigned; the snapshot is not updated
// when the stored team changes afterwards.
type Player struct {
	ID        *int64
	FirstName *string
	LastName  *string
	Number    *int
	Position  *domain.Position

	teamID  *int64
	team    *Team
	teamErr error
}

// TeamID returns a copy of the player's team identifier.
func (p Player) TeamID() *int64 {
	if p.teamID == nil {
		return nil
	}
	id := *p.teamID
	return &id
}

// Team returns a copy of the team snapshot, or nil when the team id did not
// resolve.
func (p Player) Team() *Team {
	if p.team == nil {
		return nil
	}
	t := p.team.Clone()
	return &t
}

// TeamLookupErr returns the store error swallowed during the last team
// refresh. A nil snapshot with a nil error means the team does not exist.
func (p Player) TeamLookupErr() error { return p.teamErr }

func (p Player) record() domain.PlayerRecord {
	return domain.PlayerRecord{
		PlayerID:  p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Number:    p.Number,
		TeamID:    p.teamID,
		Position:  p.Position,
	}.Clone()
}

func playerFromFields(f PlayerFields) Player {
	rec := domain.PlayerRecord{
		PlayerID:  f.ID,
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Number:    f.Number,
		TeamID:    f.TeamID,
		Position:  f.Position,
	}.Clone()
	return playerFromRecord(rec)
}

func playerFromRecord(r domain.PlayerRecord) Player {
	return Player{
		ID:        r.PlayerID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Number:    r.Number,
		Position:  r.Position,
		teamID:    r.TeamID,
	}
}

// String renders "#34 David Ortiz, Designated Hitter".
func (p Player) String() string {
	num := "?"
	if p.Number != nil {
		num = fmt.Sprint(*p.Number)
	}
	pos := ""
	if p.Position != nil {
		pos = string(*p.Position)
	}
	return fmt.Sprintf("#%s %s %s, %s", num, deref(p.FirstName), deref(p.LastName), pos)
}
