package memory

import (
	"context"

	"rentspin/internal/app/ports"
	"rentspin/internal/domain/economy"
)

type GameRepo struct {
	store *Store
}

func NewGameRepo(store *Store) GameRepo {
	return GameRepo{store: store}
}

func (r GameRepo) Get(_ context.Context, gameID string) (economy.Game, error) {
	game, ok := r.store.games[gameID]
	if !ok {
		return economy.Game{}, ports.ErrNotFound
	}
	return game.Clone(), nil
}

func (r GameRepo) SaveWithVersion(_ context.Context, game economy.Game, expectedVersion int64) error {
	current, ok := r.store.games[game.ID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		r.store.games[game.ID] = game.Clone()
		return nil
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.games[game.ID] = game.Clone()
	return nil
}
