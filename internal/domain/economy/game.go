package economy

import (
	"fmt"
	"time"

	"rentspin/internal/domain/slot"
	"rentspin/internal/domain/symbol"
)

// Every transition below is gated on the current phase. Calling one from the
// wrong phase leaves the game untouched and returns no events.

// Restart resets the run from any phase. SpinSeq keeps increasing so that
// delayed transitions scheduled for the previous run are recognised as stale.
func (g *Game) Restart(m Machine, now time.Time) []DomainEvent {
	m.reset(g, now)
	g.SpinSeq++
	return []DomainEvent{event(EventGameRestarted, now, map[string]any{
		"spin_seq": g.SpinSeq,
	})}
}

// Spin samples a new grid from the deck. Idle only.
func (g *Game) Spin(m Machine, now time.Time) ([]DomainEvent, error) {
	if g.Phase != PhaseIdle {
		return nil, nil
	}
	grid, err := m.sampler().Sample(g.Deck)
	if err != nil {
		return nil, err
	}
	g.Grid = grid
	g.LastOutcome = slot.Outcome{Consumed: []slot.Consumption{}}
	g.Offers = nil
	g.SpinSeq++
	g.Phase = PhaseSpinning
	g.UpdatedAt = now
	return []DomainEvent{event(EventSpinStarted, now, map[string]any{
		"spin_seq": g.SpinSeq,
		"occupied": len(grid.Occupied()),
	})}, nil
}

// Resolve scores the grid and removes one deck copy per consumed instance.
func (g *Game) Resolve(m Machine, now time.Time) []DomainEvent {
	if g.Phase != PhaseSpinning {
		return nil
	}
	out := slot.NewResolver(m.Rules, m.source()).Resolve(&g.Grid)
	for _, c := range out.Consumed {
		g.Deck.RemoveFirst(c.SymbolID)
	}
	g.LastOutcome = out
	g.Phase = PhaseInteraction
	g.UpdatedAt = now
	return []DomainEvent{event(EventSpinResolved, now, map[string]any{
		"spin_seq": g.SpinSeq,
		"payout":   out.Payout,
		"consumed": consumedSymbols(out),
	})}
}

func (g *Game) Reveal(now time.Time) []DomainEvent {
	if g.Phase != PhaseInteraction {
		return nil
	}
	g.Phase = PhaseScoring
	g.UpdatedAt = now
	return []DomainEvent{event(EventSpinRevealed, now, map[string]any{"spin_seq": g.SpinSeq})}
}

// Score banks the payout, ticks the rent counter and rolls draft offers.
func (g *Game) Score(m Machine, now time.Time) []DomainEvent {
	if g.Phase != PhaseScoring {
		return nil
	}
	g.Coins += g.LastOutcome.Payout
	g.SpinsUntilRent--
	g.Offers = m.RollOffers()
	g.Phase = PhaseDrafting
	g.UpdatedAt = now
	return []DomainEvent{event(EventSpinScored, now, map[string]any{
		"spin_seq":         g.SpinSeq,
		"payout":           g.LastOutcome.Payout,
		"coins":            g.Coins,
		"spins_until_rent": g.SpinsUntilRent,
		"consumed":         len(g.LastOutcome.Consumed),
		"offers":           append([]string(nil), g.Offers...),
	})}
}

// Draft adds id to the deck (or nothing for symbol.SkipID) and then settles
// rent if the cycle is over. Drafting only. An id missing from the catalog
// is rejected and the game is left unchanged.
func (g *Game) Draft(m Machine, id string, now time.Time) ([]DomainEvent, error) {
	if g.Phase != PhaseDrafting {
		return nil, nil
	}
	var events []DomainEvent
	if id == symbol.SkipID {
		events = append(events, event(EventDraftSkipped, now, map[string]any{"spin_seq": g.SpinSeq}))
	} else {
		if _, err := m.Catalog.Lookup(id); err != nil {
			return nil, fmt.Errorf("draft: %w", err)
		}
		g.Deck.Append(id)
		events = append(events, event(EventSymbolDrafted, now, map[string]any{
			"spin_seq":  g.SpinSeq,
			"symbol_id": id,
			"deck_size": len(g.Deck),
		}))
	}
	g.Offers = nil
	g.UpdatedAt = now

	if g.SpinsUntilRent > 0 {
		g.Phase = PhaseIdle
		return events, nil
	}
	if g.Coins < g.Rent {
		g.Phase = PhaseGameOver
		return append(events, event(EventGameOver, now, map[string]any{
			"spin_seq": g.SpinSeq,
			"coins":    g.Coins,
			"rent":     g.Rent,
		})), nil
	}
	paid := g.Rent
	g.Coins -= paid
	g.Rent += m.Tuning.RentIncrement
	g.SpinsUntilRent = m.Tuning.SpinsPerCycle
	g.Phase = PhaseIdle
	return append(events, event(EventRentPaid, now, map[string]any{
		"spin_seq":         g.SpinSeq,
		"paid":             paid,
		"coins":            g.Coins,
		"next_rent":        g.Rent,
		"spins_until_rent": g.SpinsUntilRent,
	})), nil
}

func consumedSymbols(out slot.Outcome) []string {
	ids := make([]string, 0, len(out.Consumed))
	for _, c := range out.Consumed {
		ids = append(ids, c.SymbolID)
	}
	return ids
}
