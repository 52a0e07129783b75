package ports

import "errors"

var (
	// ErrNotFound is returned for an unknown game id or a game with no history.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned for a stale game version or a spin already in the ledger.
	ErrConflict = errors.New("conflict")
)
