package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"rostercore/pkg/domain"
)

// Seed is a fixture of records loaded in order: teams first, then players.
type Seed struct {
	Teams   []domain.TeamRecord   `yaml:"teams"`
	Players []domain.PlayerRecord `yaml:"players"`
}

// SeedResult counts the records a Seed call inserted.
type SeedResult struct {
	Teams   int
	Players int
}

// LoadSeed decodes a YAML fixture. Unknown keys are rejected and positions
// are normalised to their canonical display names.
func LoadSeed(r io.Reader) (Seed, error) {
	var seed Seed
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil && !errors.Is(err, io.EOF) {
		return Seed{}, fmt.Errorf("decode seed: %w", err)
	}
	for i, p := range seed.Players {
		if p.Position == nil {
			continue
		}
		pos, err := domain.ParsePosition(string(*p.Position))
		if err != nil {
			return Seed{}, fmt.Errorf("seed player %d: %w", i, err)
		}
		seed.Players[i].Position = &pos
	}
	return seed, nil
}

// LoadSeedFile opens and decodes a YAML fixture file.
func LoadSeedFile(path string) (Seed, error) {
	f, err := os.Open(path)
	if err != nil {
		return Seed{}, fmt.Errorf("open seed: %w", err)
	}
	defer func() { _ = f.Close() }()
	return LoadSeed(f)
}

// Seed saves every fixture record through the bridges, stopping at the first
// failure. Records saved before the failure stay stored.
func (s *Service) Seed(ctx context.Context, seed Seed) (SeedResult, error) {
	var res SeedResult
	for i, rec := range seed.Teams {
		team := teamFromRecord(rec.Clone())
		if err := s.teams.Save(ctx, &team); err != nil {
			return res, fmt.Errorf("seed team %d: %w", i, err)
		}
		res.Teams++
	}
	for i, rec := range seed.Players {
		player := playerFromRecord(rec.Clone())
		if err := s.players.Save(ctx, &player); err != nil {
			return res, fmt.Errorf("seed player %d: %w", i, err)
		}
		res.Players++
	}
	s.opts.logger.Info("seed loaded", "teams", res.Teams, "players", res.Players)
	return res, nil
}
