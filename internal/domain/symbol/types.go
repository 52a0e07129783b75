package symbol

import (
	"errors"
	"sort"
)

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
)

func (r Rarity) Valid() bool {
	switch r {
	case RarityCommon, RarityUncommon, RarityRare, RarityLegendary:
		return true
	default:
		return false
	}
}

// SkipID is the draft sentinel meaning "take nothing".
const SkipID = "skip"

var ErrUnknownSymbol = errors.New("unknown symbol")

// UnknownSymbolError carries the id that the catalog could not resolve.
type UnknownSymbolError struct {
	ID string
}

func (e *UnknownSymbolError) Error() string {
	return ErrUnknownSymbol.Error() + ": " + e.ID
}

func (e *UnknownSymbolError) Unwrap() error {
	return ErrUnknownSymbol
}

type Definition struct {
	ID        string   `json:"id" yaml:"id"`
	Name      string   `json:"name" yaml:"name"`
	Icon      string   `json:"icon" yaml:"icon"`
	Rarity    Rarity   `json:"rarity" yaml:"rarity"`
	BaseValue int      `json:"base_value" yaml:"value"`
	Tags      []string `json:"tags" yaml:"tags"`
	Effect    string   `json:"effect" yaml:"effect"`
}

func (d Definition) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Catalog is the read-only id -> definition table.
type Catalog struct {
	defs map[string]Definition
	ids  []string
}

func NewCatalog(defs []Definition) Catalog {
	c := Catalog{defs: make(map[string]Definition, len(defs))}
	for _, d := range defs {
		if _, dup := c.defs[d.ID]; !dup {
			c.ids = append(c.ids, d.ID)
		}
		d.Tags = append([]string(nil), d.Tags...)
		c.defs[d.ID] = d
	}
	sort.Strings(c.ids)
	return c
}

func (c Catalog) Lookup(id string) (Definition, error) {
	d, ok := c.defs[id]
	if !ok {
		return Definition{}, &UnknownSymbolError{ID: id}
	}
	return d, nil
}

func (c Catalog) Has(id string) bool {
	_, ok := c.defs[id]
	return ok
}

// IDs returns every id in lexical order.
func (c Catalog) IDs() []string {
	return append([]string(nil), c.ids...)
}

func (c Catalog) Definitions() []Definition {
	out := make([]Definition, 0, len(c.ids))
	for _, id := range c.ids {
		out = append(out, c.defs[id])
	}
	return out
}

func (c Catalog) Len() int {
	return len(c.ids)
}

// Require checks that every id resolves; the first miss is returned.
func (c Catalog) Require(ids ...string) error {
	for _, id := range ids {
		if !c.Has(id) {
			return &UnknownSymbolError{ID: id}
		}
	}
	return nil
}
