package core

import (
	"rostercore/internal/infra/persistence/memory"
	"rostercore/pkg/domain"
)

// Service composes the team and player bridges over one persistent store.
type Service struct {
	store   domain.PersistentStore
	teams   *TeamBridge
	players *PlayerBridge
	opts    serviceOptions
}

// NewService constructs a service backed by the supplied store.
func NewService(store domain.PersistentStore, opts ...ServiceOption) *Service {
	o := defaultServiceOptions()
	for _, opt := range opts {
		opt(&o)
	}
	share := func(dst *serviceOptions) { *dst = o }
	teams := NewTeamBridge(store.Teams(), share)
	return &Service{
		store:   store,
		teams:   teams,
		players: NewPlayerBridge(store.Players(), teams, share),
		opts:    o,
	}
}

// NewInMemoryService creates a service over a fresh in-memory store.
func NewInMemoryService(opts ...ServiceOption) *Service {
	return NewService(memory.NewStore(), opts...)
}

// Store returns the underlying storage implementation.
func (s *Service) Store() domain.PersistentStore { return s.store }

// Teams returns the team bridge.
func (s *Service) Teams() *TeamBridge { return s.teams }

// Players returns the player bridge.
func (s *Service) Players() *PlayerBridge { return s.players }

// Close releases the underlying store.
func (s *Service) Close() error { return s.store.Close() }
