package economy

import (
	"time"

	"rentspin/internal/domain/slot"
	"rentspin/internal/domain/symbol"
)

type Phase string

const (
	PhaseIdle        Phase = "idle"
	PhaseSpinning    Phase = "spinning"
	PhaseInteraction Phase = "interaction"
	PhaseScoring     Phase = "scoring"
	PhaseDrafting    Phase = "drafting"
	PhaseGameOver    Phase = "game_over"
)

const (
	EventGameStarted   = "game_started"
	EventSpinStarted   = "spin_started"
	EventSpinResolved  = "spin_resolved"
	EventSpinRevealed  = "spin_revealed"
	EventSpinScored    = "spin_scored"
	EventSymbolDrafted = "symbol_drafted"
	EventDraftSkipped  = "draft_skipped"
	EventRentPaid      = "rent_paid"
	EventGameOver      = "game_over"
	EventGameRestarted = "game_restarted"
)

type DomainEvent struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

// Game is the single owner of one player's run.
type Game struct {
	ID             string       `json:"id"`
	Phase          Phase        `json:"phase"`
	Coins          int          `json:"coins"`
	Rent           int          `json:"rent"`
	SpinsUntilRent int          `json:"spins_until_rent"`
	Deck           slot.Deck    `json:"deck"`
	Grid           slot.Grid    `json:"grid"`
	LastOutcome    slot.Outcome `json:"last_outcome"`
	Offers         []string     `json:"offers"`
	SpinSeq        int64        `json:"spin_seq"`
	Version        int64        `json:"version"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// Clone returns a copy that shares no slices or cells with g.
func (g Game) Clone() Game {
	out := g
	out.Deck = g.Deck.Clone()
	out.Grid = g.Grid.Clone()
	out.Offers = append([]string(nil), g.Offers...)
	out.LastOutcome.Consumed = append([]slot.Consumption(nil), g.LastOutcome.Consumed...)
	return out
}

func (g Game) Over() bool { return g.Phase == PhaseGameOver }

// Tuning holds the numeric rules of a run.
type Tuning struct {
	Rows          int
	Cols          int
	StartingCoins int
	StartingRent  int
	RentIncrement int
	SpinsPerCycle int
	StartingDeck  []string
	SettleDelay   time.Duration
	RevealDelay   time.Duration
	FlightDelay   time.Duration
	OfferCount    int
	OfferWeights  map[symbol.Rarity]int
}

func DefaultTuning() Tuning {
	return Tuning{
		Rows:          slot.DefaultRows,
		Cols:          slot.DefaultCols,
		StartingCoins: 10,
		StartingRent:  25,
		RentIncrement: 25,
		SpinsPerCycle: 5,
		StartingDeck:  append([]string(nil), symbol.StartingDeck...),
		SettleDelay:   1500 * time.Millisecond,
		RevealDelay:   1500 * time.Millisecond,
		FlightDelay:   1500 * time.Millisecond,
		OfferCount:    3,
		OfferWeights: map[symbol.Rarity]int{
			symbol.RarityCommon:    60,
			symbol.RarityUncommon:  25,
			symbol.RarityRare:      12,
			symbol.RarityLegendary: 3,
		},
	}
}
