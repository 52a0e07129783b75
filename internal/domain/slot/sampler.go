package slot

import (
	"fmt"

	"rentspin/internal/domain/symbol"

	"github.com/google/uuid"
)

type Sampler struct {
	Catalog symbol.Catalog
	Rows    int
	Cols    int
	RNG     RandomSource
	NewID   func() string
}

// Sample draws min(len(deck), rows*cols) symbols and scatters them over the grid.
func (s Sampler) Sample(deck Deck) (Grid, error) {
	rows, cols := s.Rows, s.Cols
	if rows <= 0 {
		rows = DefaultRows
	}
	if cols <= 0 {
		cols = DefaultCols
	}
	src := s.RNG
	if src == nil {
		src = DefaultSource()
	}
	newID := s.NewID
	if newID == nil {
		newID = uuid.NewString
	}

	capacity := rows * cols
	ids := deck.Sample(capacity, src)
	flat := make([]*Instance, capacity)
	for i, id := range ids {
		def, err := s.Catalog.Lookup(id)
		if err != nil {
			return Grid{}, fmt.Errorf("sample grid: %w", err)
		}
		flat[i] = NewInstance(def, newID())
	}
	Shuffle(src, len(flat), func(i, j int) {
		flat[i], flat[j] = flat[j], flat[i]
	})

	g := NewGrid(rows, cols)
	for i, inst := range flat {
		g.Cells[i/cols][i%cols] = inst
	}
	return g, nil
}
