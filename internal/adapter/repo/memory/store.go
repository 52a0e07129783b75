package memory

import (
	"sync"

	"rentspin/internal/app/ports"
	"rentspin/internal/domain/economy"
)

// Store keeps every game in process memory. Repositories built on it are not
// safe on their own; callers serialise access through TxManager.
type Store struct {
	mu     sync.Mutex
	games  map[string]economy.Game
	events map[string][]economy.DomainEvent
	spins  map[string][]ports.SpinRecord
}

func NewStore() *Store {
	return &Store{
		games:  make(map[string]economy.Game),
		events: make(map[string][]economy.DomainEvent),
		spins:  make(map[string][]ports.SpinRecord),
	}
}

func (s *Store) SeedGame(game economy.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID] = game.Clone()
}
