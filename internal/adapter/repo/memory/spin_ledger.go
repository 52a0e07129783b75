package memory

import (
	"context"

	"rentspin/internal/app/ports"
)

type SpinLedger struct {
	store *Store
}

func NewSpinLedger(store *Store) SpinLedger {
	return SpinLedger{store: store}
}

func (l SpinLedger) Record(_ context.Context, rec ports.SpinRecord) error {
	for _, existing := range l.store.spins[rec.GameID] {
		if existing.SpinSeq == rec.SpinSeq {
			return ports.ErrConflict
		}
	}
	rec.Grid = rec.Grid.Clone()
	l.store.spins[rec.GameID] = append(l.store.spins[rec.GameID], rec)
	return nil
}

// ListByGameID returns the newest spins first.
func (l SpinLedger) ListByGameID(_ context.Context, gameID string, limit int) ([]ports.SpinRecord, error) {
	all := l.store.spins[gameID]
	n := len(all)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]ports.SpinRecord, 0, n)
	for i := len(all) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, all[i])
	}
	return out, nil
}
