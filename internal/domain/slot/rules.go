package slot

import "rentspin/internal/domain/symbol"

// Predicate matches a symbol definition.
type Predicate func(symbol.Definition) bool

func IDIs(ids ...string) Predicate {
	return func(d symbol.Definition) bool {
		for _, id := range ids {
			if d.ID == id {
				return true
			}
		}
		return false
	}
}

func TagIs(tag string) Predicate {
	return func(d symbol.Definition) bool {
		return d.HasTag(tag)
	}
}

func AnySymbol(symbol.Definition) bool { return true }

// BuffRule adds Amount (or multiplies by it) for every neighbour matching
// Neighbor when Self matches. Once caps it to a single application.
type BuffRule struct {
	Name     string
	Self     Predicate
	Neighbor Predicate
	Amount   int
	Once     bool
}

func (r BuffRule) applications(self symbol.Definition, neighbors []*Instance) int {
	if r.Self == nil || r.Neighbor == nil || !r.Self(self) {
		return 0
	}
	n := 0
	for _, nb := range neighbors {
		if r.Neighbor(nb.Definition) {
			n++
			if r.Once {
				return 1
			}
		}
	}
	return n
}

// ConsumeRule lets Consumer eat one matching neighbour. The bonus is
// target.BaseValue*Multiplier when Multiplier > 0, else Flat.
type ConsumeRule struct {
	Name       string
	Consumer   string
	Target     Predicate
	Flat       int
	Multiplier int
}

func (r ConsumeRule) Bonus(target symbol.Definition) int {
	if r.Multiplier > 0 {
		return target.BaseValue * r.Multiplier
	}
	return r.Flat
}

type SpecialKind string

const (
	// SpecialShatter zeroes the value when a Hazard neighbour is present.
	SpecialShatter SpecialKind = "shatter"
	// SpecialRandomPayout replaces the value with a uniform integer in [Min, Max].
	SpecialRandomPayout SpecialKind = "random_payout"
	// SpecialBoardTagCount adds Weight per distinct tag on the whole grid.
	SpecialBoardTagCount SpecialKind = "board_tag_count"
	// SpecialNeighborEcho adds the base value of one random un-eaten neighbour.
	SpecialNeighborEcho SpecialKind = "neighbor_echo"
)

type SpecialRule struct {
	Name   string
	Symbol string
	Kind   SpecialKind
	Hazard Predicate
	Min    int
	Max    int
	Weight int
}

// RuleSet is the declarative interaction table consulted by the resolver.
type RuleSet struct {
	Additive       []BuffRule
	Multiplicative []BuffRule
	Consumers      []ConsumeRule
	Specials       []SpecialRule
}

func (rs RuleSet) consumersFor(id string) []ConsumeRule {
	var out []ConsumeRule
	for _, r := range rs.Consumers {
		if r.Consumer == id {
			out = append(out, r)
		}
	}
	return out
}

func (rs RuleSet) specialsFor(id string) []SpecialRule {
	var out []SpecialRule
	for _, r := range rs.Specials {
		if r.Symbol == id {
			out = append(out, r)
		}
	}
	return out
}

// Names lists every rule name, for diagnostics and tests.
func (rs RuleSet) Names() []string {
	out := make([]string, 0, len(rs.Additive)+len(rs.Multiplicative)+len(rs.Consumers)+len(rs.Specials))
	for _, r := range rs.Additive {
		out = append(out, r.Name)
	}
	for _, r := range rs.Multiplicative {
		out = append(out, r.Name)
	}
	for _, r := range rs.Consumers {
		out = append(out, r.Name)
	}
	for _, r := range rs.Specials {
		out = append(out, r.Name)
	}
	return out
}
