package config

import (
	"fmt"
	"strings"

	"rentspin/internal/domain/economy"
	"rentspin/internal/domain/symbol"
)

// ValidateRaw checks the fields a tuning file sets, before merging.
func ValidateRaw(raw RawTuning) error {
	var errs []string

	if raw.Grid.Rows != nil && *raw.Grid.Rows <= 0 {
		errs = append(errs, "grid.rows must be >= 1")
	}
	if raw.Grid.Cols != nil && *raw.Grid.Cols <= 0 {
		errs = append(errs, "grid.cols must be >= 1")
	}
	if raw.Economy.StartingCoins != nil && *raw.Economy.StartingCoins < 0 {
		errs = append(errs, "economy.starting_coins must be >= 0")
	}
	if raw.Economy.StartingRent != nil && *raw.Economy.StartingRent < 0 {
		errs = append(errs, "economy.starting_rent must be >= 0")
	}
	if raw.Economy.RentIncrement != nil && *raw.Economy.RentIncrement < 0 {
		errs = append(errs, "economy.rent_increment must be >= 0")
	}
	if raw.Economy.SpinsPerCycle != nil && *raw.Economy.SpinsPerCycle <= 0 {
		errs = append(errs, "economy.spins_per_cycle must be >= 1")
	}
	delays := []struct {
		name string
		v    *int
	}{
		{"delays.settle_ms", raw.Delays.SettleMS},
		{"delays.reveal_ms", raw.Delays.RevealMS},
		{"delays.flight_ms", raw.Delays.FlightMS},
	}
	for _, d := range delays {
		if d.v != nil && *d.v < 0 {
			errs = append(errs, d.name+" must be >= 0")
		}
	}
	if raw.Draft.OfferCount != nil && *raw.Draft.OfferCount < 0 {
		errs = append(errs, "draft.offer_count must be >= 0")
	}
	for r, w := range raw.Draft.Weights {
		if !r.Valid() {
			errs = append(errs, fmt.Sprintf("draft.weights has unknown rarity %q", r))
		}
		if w < 0 {
			errs = append(errs, fmt.Sprintf("draft.weights.%s must be >= 0", r))
		}
	}

	return joinErrs(errs)
}

// ValidateTuning checks the merged tuning against the catalog in use.
func ValidateTuning(t economy.Tuning, catalog symbol.Catalog) error {
	var errs []string
	if len(t.StartingDeck) == 0 {
		errs = append(errs, "starting_deck must not be empty")
	}
	for _, id := range t.StartingDeck {
		if !catalog.Has(id) {
			errs = append(errs, fmt.Sprintf("starting_deck references unknown symbol %q", id))
		}
	}
	if t.OfferCount > 0 {
		total := 0
		for _, w := range t.OfferWeights {
			total += w
		}
		if total == 0 {
			errs = append(errs, "draft.weights must have a positive weight when offers are enabled")
		}
	}
	return joinErrs(errs)
}

func ValidateCatalog(raw RawCatalog) error {
	var errs []string
	if len(raw.Symbols) == 0 {
		errs = append(errs, "symbols must not be empty")
	}
	seen := map[string]bool{}
	for i, d := range raw.Symbols {
		id := strings.TrimSpace(d.ID)
		switch {
		case id == "":
			errs = append(errs, fmt.Sprintf("symbols[%d].id is required", i))
		case id != d.ID:
			errs = append(errs, fmt.Sprintf("symbols[%d].id %q has surrounding whitespace", i, d.ID))
		case id == symbol.SkipID:
			errs = append(errs, fmt.Sprintf("symbols[%d].id %q is reserved", i, id))
		case seen[id]:
			errs = append(errs, fmt.Sprintf("symbols[%d].id %q is duplicated", i, id))
		}
		seen[id] = true
		if !d.Rarity.Valid() {
			errs = append(errs, fmt.Sprintf("symbols[%d].rarity %q is invalid", i, d.Rarity))
		}
		if d.BaseValue < 0 {
			errs = append(errs, fmt.Sprintf("symbols[%d].value must be >= 0", i))
		}
	}
	return joinErrs(errs)
}

func joinErrs(errs []string) error {
	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
