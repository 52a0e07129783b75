package economy

import (
	"fmt"
	"time"

	"rentspin/internal/domain/slot"
	"rentspin/internal/domain/symbol"
)

// Machine bundles the collaborators every transition needs. It holds no
// per-game state and may be shared between games.
type Machine struct {
	Catalog symbol.Catalog
	Rules   slot.RuleSet
	Tuning  Tuning
	RNG     slot.RandomSource
	NewID   func() string
}

func NewMachine(catalog symbol.Catalog, rules slot.RuleSet, tuning Tuning, src slot.RandomSource) Machine {
	return Machine{Catalog: catalog, Rules: rules, Tuning: tuning, RNG: src}
}

func (m Machine) source() slot.RandomSource {
	if m.RNG == nil {
		return slot.DefaultSource()
	}
	return m.RNG
}

func (m Machine) sampler() slot.Sampler {
	return slot.Sampler{Catalog: m.Catalog, Rows: m.Tuning.Rows, Cols: m.Tuning.Cols, RNG: m.source(), NewID: m.NewID}
}

// NewGame returns a fresh run in the idle phase.
func (m Machine) NewGame(id string, now time.Time) (Game, []DomainEvent, error) {
	if err := m.Catalog.Require(m.Tuning.StartingDeck...); err != nil {
		return Game{}, nil, fmt.Errorf("starting deck: %w", err)
	}
	g := Game{ID: id}
	m.reset(&g, now)
	return g, []DomainEvent{event(EventGameStarted, now, map[string]any{
		"coins":            g.Coins,
		"rent":             g.Rent,
		"spins_until_rent": g.SpinsUntilRent,
		"deck_size":        len(g.Deck),
	})}, nil
}

func (m Machine) reset(g *Game, now time.Time) {
	rows, cols := m.Tuning.Rows, m.Tuning.Cols
	if rows <= 0 {
		rows = slot.DefaultRows
	}
	if cols <= 0 {
		cols = slot.DefaultCols
	}
	g.Phase = PhaseIdle
	g.Coins = m.Tuning.StartingCoins
	g.Rent = m.Tuning.StartingRent
	g.SpinsUntilRent = m.Tuning.SpinsPerCycle
	g.Deck = slot.Deck(append([]string(nil), m.Tuning.StartingDeck...))
	g.Grid = slot.NewGrid(rows, cols)
	g.LastOutcome = slot.Outcome{Consumed: []slot.Consumption{}}
	g.Offers = nil
	g.UpdatedAt = now
}

func event(typ string, now time.Time, payload map[string]any) DomainEvent {
	return DomainEvent{Type: typ, OccurredAt: now, Payload: payload}
}
