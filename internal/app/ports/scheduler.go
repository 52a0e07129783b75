package ports

import "time"

// Scheduler runs fn once after d. Implementations must not block the caller.
type Scheduler interface {
	After(d time.Duration, fn func())
}
