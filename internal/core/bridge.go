package core

import (
	"context"

	"rostercore/pkg/domain"
)

// TeamBridge translates between Team and domain.TeamRecord and delegates
// persistence to a record store.
type TeamBridge struct {
	store domain.RecordStore[domain.TeamRecord]
	opts  serviceOptions
}

// NewTeamBridge binds a bridge to the team store.
func NewTeamBridge(store domain.RecordStore[domain.TeamRecord], opts ...ServiceOption) *TeamBridge {
	o := defaultServiceOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &TeamBridge{store: store, opts: o}
}

// Save inserts the team and writes the stored identifier back onto it.
func (b *TeamBridge) Save(ctx context.Context, team *Team) (err error) {
	started := b.opts.clock.Now()
	defer func() { b.opts.observe(ctx, OpTeamSave, started, err) }()
	id, err := b.store.Insert(ctx, team.record())
	if err != nil {
		return err
	}
	team.ID = &id
	return nil
}

// Delete removes the first stored team with the same identifier.
func (b *TeamBridge) Delete(ctx context.Context, team Team) (err error) {
	started := b.opts.clock.Now()
	defer func() { b.opts.observe(ctx, OpTeamDelete, started, err) }()
	return b.store.Delete(ctx, team.record())
}

// Retrieve looks a team up by identifier. Absence is reported with ok=false.
func (b *TeamBridge) Retrieve(ctx context.Context, id int64) (team Team, ok bool, err error) {
	started := b.opts.clock.Now()
	defer func() { b.opts.observe(ctx, OpTeamRetrieve, started, err) }()
	rec, ok, err := b.store.Find(ctx, id)
	if err != nil || !ok {
		return Team{}, false, err
	}
	return teamFromRecord(rec), true, nil
}

// RetrieveAll returns every stored team in insertion order.
func (b *TeamBridge) RetrieveAll(ctx context.Context) (teams []Team, err error) {
	started := b.opts.clock.Now()
	defer func() { b.opts.observe(ctx, OpTeamRetrieveAll, started, err) }()
	recs, err := b.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	teams = make([]Team, 0, len(recs))
	for _, rec := range recs {
		teams = append(teams, teamFromRecord(rec))
	}
	return teams, nil
}

// PlayerBridge translates between Player and domain.PlayerRecord. Every path
// that sets a player's team id refreshes the team snapshot through the team
// bridge.
type PlayerBridge struct {
	store domain.RecordStore[domain.PlayerRecord]
	teams *TeamBridge
	opts  serviceOptions
}

// NewPlayerBridge binds a bridge to the player store and the team bridge
// used for snapshot refreshes.
func NewPlayerBridge(store domain.RecordStore[domain.PlayerRecord], teams *TeamBridge, opts ...ServiceOption) *PlayerBridge {
	o := defaultServiceOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &PlayerBridge{store: store, teams: teams, opts: o}
}

// NewPlayer builds a player and resolves its team snapshot.
func (b *PlayerBridge) NewPlayer(ctx context.Context, fields PlayerFields) Player {
	p := playerFromFields(fields)
	b.refreshTeam(ctx, &p)
	return p
}

// AssignTeam sets the player's team id and refreshes the snapshot. A nil id
// clears both.
func (b *PlayerBridge) AssignTeam(ctx context.Context, player *Player, teamID *int64) {
	player.teamID = nil
	if teamID != nil {
		id := *teamID
		player.teamID = &id
	}
	b.refreshTeam(ctx, player)
}

// Save inserts the player and writes the stored identifier back onto it.
func (b *PlayerBridge) Save(ctx context.Context, player *Player) (err error) {
	started := b.opts.clock.Now()
	defer func() { b.opts.observe(ctx, OpPlayerSave, started, err) }()
	id, err := b.store.Insert(ctx, player.record())
	if err != nil {
		return err
	}
	player.ID = &id
	return nil
}

// Delete removes the first stored player with the same identifier.
func (b *PlayerBridge) Delete(ctx context.Context, player Player) (err error) {
	started := b.opts.clock.Now()
	defer func() { b.opts.observe(ctx, OpPlayerDelete, started, err) }()
	return b.store.Delete(ctx, player.record())
}

// Retrieve looks a player up by identifier and resolves its team snapshot.
func (b *PlayerBridge) Retrieve(ctx context.Context, id int64) (player Player, ok bool, err error) {
	started := b.opts.clock.Now()
	defer func() { b.opts.observe(ctx, OpPlayerRetrieve, started, err) }()
	rec, ok, err := b.store.Find(ctx, id)
	if err != nil || !ok {
		return Player{}, false, err
	}
	player = playerFromRecord(rec)
	b.refreshTeam(ctx, &player)
	return player, true, nil
}

// RetrieveAll returns every stored player in insertion order, each with its
// team snapshot resolved.
func (b *PlayerBridge) RetrieveAll(ctx context.Context) (players []Player, err error) {
	started := b.opts.clock.Now()
	defer func() { b.opts.observe(ctx, OpPlayerRetrieveAll, started, err) }()
	recs, err := b.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	players = make([]Player, 0, len(recs))
	for _, rec := range recs {
		p := playerFromRecord(rec)
		b.refreshTeam(ctx, &p)
		players = append(players, p)
	}
	return players, nil
}

// refreshTeam never fails: a store error leaves the snapshot nil, is logged
// and counted, and is kept on the player for TeamLookupErr.
func (b *PlayerBridge) refreshTeam(ctx context.Context, player *Player) {
	player.team, player.teamErr = nil, nil
	if player.teamID == nil {
		return
	}
	started := b.opts.clock.Now()
	team, ok, err := b.teams.Retrieve(ctx, *player.teamID)
	b.opts.metrics.Observe(ctx, OpTeamLookup, err == nil, b.opts.clock.Now().Sub(started))
	if err != nil {
		b.opts.logger.Warn("team lookup failed, player left without team",
			"team_id", *player.teamID, "error", err)
		player.teamErr = err
		return
	}
	if ok {
		player.team = &team
	}
}
