// Package core hosts the rich domain objects and the bridges that translate
// them to and from flat records held by a domain.PersistentStore.
package core

import "rostercore/pkg/domain"

// Team is the domain form of a team record.
type Team struct {
	ID           *int64
	City         *string
	NickName     *string
	Abbreviation *string
}

func teamFromRecord(r domain.TeamRecord) Team {
	return Team{
		ID:           r.TeamID,
		City:         r.City,
		NickName:     r.NickName,
		Abbreviation: r.Abbreviation,
	}
}

func (t Team) record() domain.TeamRecord {
	return domain.TeamRecord{
		TeamID:       t.ID,
		City:         t.City,
		NickName:     t.NickName,
		Abbreviation: t.Abbreviation,
	}.Clone()
}

// Clone returns a deep copy of the team.
func (t Team) Clone() Team {
	return teamFromRecord(t.record())
}

// String renders "City NickName (ABBR)" with blanks for absent fields.
func (t Team) String() string {
	return deref(t.City) + " " + deref(t.NickName) + " (" + deref(t.Abbreviation) + ")"
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
