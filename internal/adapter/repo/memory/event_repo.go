package memory

import (
	"context"

	"rentspin/internal/app/ports"
	"rentspin/internal/domain/economy"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(_ context.Context, gameID string, events []economy.DomainEvent) error {
	r.store.events[gameID] = append(r.store.events[gameID], events...)
	return nil
}

// ListByGameID returns the newest events first.
func (r EventRepo) ListByGameID(_ context.Context, gameID string, limit int) ([]economy.DomainEvent, error) {
	all := r.store.events[gameID]
	if len(all) == 0 {
		return nil, ports.ErrNotFound
	}
	n := len(all)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]economy.DomainEvent, 0, n)
	for i := len(all) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, all[i])
	}
	return out, nil
}
