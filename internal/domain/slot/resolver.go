package slot

// Consumption records one instance absorbed by a neighbour.
type Consumption struct {
	ConsumerID string `json:"consumer_instance_id"`
	InstanceID string `json:"instance_id"`
	SymbolID   string `json:"symbol_id"`
	Bonus      int    `json:"bonus"`
	Rule       string `json:"rule"`
}

type Outcome struct {
	Payout   int           `json:"payout"`
	Consumed []Consumption `json:"consumed"`
}

// ConsumedIDs returns consumed instance ids in consumption order.
func (o Outcome) ConsumedIDs() []string {
	out := make([]string, 0, len(o.Consumed))
	for _, c := range o.Consumed {
		out = append(out, c.InstanceID)
	}
	return out
}

type Resolver struct {
	Rules RuleSet
	RNG   RandomSource
}

func NewResolver(rules RuleSet, src RandomSource) Resolver {
	return Resolver{Rules: rules, RNG: src}
}

// Resolve scores g in a single row-major pass, mutating cell values and
// eaten/modified flags in place.
func (r Resolver) Resolve(g *Grid) Outcome {
	src := r.RNG
	if src == nil {
		src = DefaultSource()
	}
	out := Outcome{Consumed: []Consumption{}}
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			inst := g.Cells[row][col]
			if inst == nil || inst.Eaten {
				continue
			}
			neighbors := g.Neighbors(row, col)
			consumed := r.scoreCell(g, inst, neighbors, src)
			out.Consumed = append(out.Consumed, consumed...)
		}
	}
	out.Payout = g.Payout()
	return out
}

func (r Resolver) scoreCell(g *Grid, inst *Instance, neighbors []*Instance, src RandomSource) []Consumption {
	additive := 0
	for _, rule := range r.Rules.Additive {
		additive += rule.Amount * rule.applications(inst.Definition, neighbors)
	}

	multiplier := 1
	for _, rule := range r.Rules.Multiplicative {
		for n := rule.applications(inst.Definition, neighbors); n > 0; n-- {
			multiplier *= rule.Amount
		}
	}

	var consumed []Consumption
	if rules := r.Rules.consumersFor(inst.ID); len(rules) > 0 {
		if c, ok := consumeFirst(inst, neighbors, rules); ok {
			additive += c.Bonus
			consumed = append(consumed, c)
		}
	}

	override, hasOverride := 0, false
	for _, sp := range r.Rules.specialsFor(inst.ID) {
		switch sp.Kind {
		case SpecialBoardTagCount:
			additive += distinctTags(g) * sp.Weight
		case SpecialNeighborEcho:
			if candidates := uneaten(neighbors); len(candidates) > 0 {
				additive += candidates[IntN(src, len(candidates))].BaseValue
			}
		case SpecialRandomPayout:
			override, hasOverride = sp.Min+IntN(src, sp.Max-sp.Min+1), true
		case SpecialShatter:
			for _, nb := range neighbors {
				if sp.Hazard != nil && sp.Hazard(nb.Definition) {
					override, hasOverride = 0, true
					break
				}
			}
		}
	}

	value := (inst.BaseValue + additive) * multiplier
	if hasOverride {
		value = override
	}
	inst.Value = value
	inst.Modified = value != inst.BaseValue
	return consumed
}

// consumeFirst eats the first un-eaten neighbour, in neighbour order, that
// any of the consumer's rules accepts.
func consumeFirst(inst *Instance, neighbors []*Instance, rules []ConsumeRule) (Consumption, bool) {
	for _, nb := range neighbors {
		if nb.Eaten || nb == inst {
			continue
		}
		for _, rule := range rules {
			if rule.Target == nil || !rule.Target(nb.Definition) {
				continue
			}
			nb.Eaten = true
			return Consumption{
				ConsumerID: inst.InstanceID,
				InstanceID: nb.InstanceID,
				SymbolID:   nb.ID,
				Bonus:      rule.Bonus(nb.Definition),
				Rule:       rule.Name,
			}, true
		}
	}
	return Consumption{}, false
}

func uneaten(neighbors []*Instance) []*Instance {
	out := make([]*Instance, 0, len(neighbors))
	for _, nb := range neighbors {
		if !nb.Eaten {
			out = append(out, nb)
		}
	}
	return out
}

func distinctTags(g *Grid) int {
	seen := map[string]struct{}{}
	for _, inst := range g.Occupied() {
		for _, t := range inst.Tags {
			seen[t] = struct{}{}
		}
	}
	return len(seen)
}
