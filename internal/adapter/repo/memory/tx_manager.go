package memory

import (
	"context"

	"rentspin/internal/app/ports"
)

type TxManager struct {
	store *Store
	inner ports.TxManager
}

func NewTxManager(store *Store) TxManager {
	return TxManager{store: store}
}

// NewChainedTxManager holds the store lock and runs fn inside inner, so
// history writes to an external store commit or roll back together.
func NewChainedTxManager(store *Store, inner ports.TxManager) TxManager {
	return TxManager{store: store, inner: inner}
}

// RunInTx holds the store lock for the whole of fn. Memory writes have no
// rollback: fn must not write game state before it knows it will succeed.
func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	if t.inner != nil {
		return t.inner.RunInTx(ctx, fn)
	}
	return fn(ctx)
}
