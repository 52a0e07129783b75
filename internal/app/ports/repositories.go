package ports

import (
	"context"
	"time"

	"rentspin/internal/domain/economy"
	"rentspin/internal/domain/slot"
)

type GameRepository interface {
	Get(ctx context.Context, gameID string) (economy.Game, error)
	SaveWithVersion(ctx context.Context, game economy.Game, expectedVersion int64) error
}

type EventRepository interface {
	Append(ctx context.Context, gameID string, events []economy.DomainEvent) error
	ListByGameID(ctx context.Context, gameID string, limit int) ([]economy.DomainEvent, error)
}

// SpinRecord is one scored spin in the ledger. (GameID, SpinSeq) is unique.
type SpinRecord struct {
	GameID         string             `json:"game_id"`
	SpinSeq        int64              `json:"spin_seq"`
	Payout         int                `json:"payout"`
	Coins          int                `json:"coins"`
	Rent           int                `json:"rent"`
	SpinsUntilRent int                `json:"spins_until_rent"`
	Consumed       []slot.Consumption `json:"consumed"`
	Grid           slot.Grid          `json:"grid"`
	RecordedAt     time.Time          `json:"recorded_at"`
}

type SpinLedger interface {
	Record(ctx context.Context, rec SpinRecord) error
	ListByGameID(ctx context.Context, gameID string, limit int) ([]SpinRecord, error)
}
