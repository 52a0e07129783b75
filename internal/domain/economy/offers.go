package economy

import (
	"rentspin/internal/domain/slot"
	"rentspin/internal/domain/symbol"
)

var rarityOrder = []symbol.Rarity{
	symbol.RarityCommon,
	symbol.RarityUncommon,
	symbol.RarityRare,
	symbol.RarityLegendary,
}

// RollOffers draws up to Tuning.OfferCount distinct catalog ids. A rarity
// tier is picked by weight first, then an id uniformly inside the tier.
// Tiers with no positive weight are never offered.
func (m Machine) RollOffers() []string {
	src := m.source()
	pools := map[symbol.Rarity][]string{}
	for _, d := range m.Catalog.Definitions() {
		pools[d.Rarity] = append(pools[d.Rarity], d.ID)
	}

	offers := make([]string, 0, m.Tuning.OfferCount)
	for len(offers) < m.Tuning.OfferCount {
		tier, ok := m.pickTier(pools, src)
		if !ok {
			break
		}
		pool := pools[tier]
		i := slot.IntN(src, len(pool))
		offers = append(offers, pool[i])
		pools[tier] = append(pool[:i:i], pool[i+1:]...)
	}
	return offers
}

func (m Machine) pickTier(pools map[symbol.Rarity][]string, src slot.RandomSource) (symbol.Rarity, bool) {
	total := 0
	for _, r := range rarityOrder {
		if len(pools[r]) > 0 {
			total += m.weight(r)
		}
	}
	if total == 0 {
		return "", false
	}
	roll := slot.IntN(src, total)
	for _, r := range rarityOrder {
		if len(pools[r]) == 0 {
			continue
		}
		roll -= m.weight(r)
		if roll < 0 {
			return r, true
		}
	}
	return "", false
}

func (m Machine) weight(r symbol.Rarity) int {
	if w := m.Tuning.OfferWeights[r]; w > 0 {
		return w
	}
	return 0
}
