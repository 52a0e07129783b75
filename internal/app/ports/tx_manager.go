package ports

import "context"

// TxManager runs fn as one unit of work. Game mutations rely on it for
// per-store serialisation; repositories pick the transaction up from ctx.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
