package slot

import "rentspin/internal/domain/symbol"

const (
	DefaultRows = 4
	DefaultCols = 5
)

// Instance is one physical occurrence of a symbol during a single spin.
type Instance struct {
	symbol.Definition
	InstanceID string `json:"instance_id"`
	Value      int    `json:"value"`
	Eaten      bool   `json:"eaten"`
	Modified   bool   `json:"modified"`
}

func NewInstance(def symbol.Definition, instanceID string) *Instance {
	return &Instance{Definition: def, InstanceID: instanceID, Value: def.BaseValue}
}

// Grid is a rows x cols matrix; a nil cell is empty.
type Grid struct {
	Rows  int           `json:"rows"`
	Cols  int           `json:"cols"`
	Cells [][]*Instance `json:"cells"`
}

func NewGrid(rows, cols int) Grid {
	cells := make([][]*Instance, rows)
	for r := range cells {
		cells[r] = make([]*Instance, cols)
	}
	return Grid{Rows: rows, Cols: cols, Cells: cells}
}

func (g Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.Rows && c >= 0 && c < g.Cols
}

func (g Grid) At(r, c int) *Instance {
	if !g.InBounds(r, c) {
		return nil
	}
	return g.Cells[r][c]
}

// Neighbors returns the occupied Moore neighbourhood of (r, c), row-major.
func (g Grid) Neighbors(r, c int) []*Instance {
	out := make([]*Instance, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if inst := g.At(r+dr, c+dc); inst != nil {
				out = append(out, inst)
			}
		}
	}
	return out
}

func (g Grid) Occupied() []*Instance {
	out := make([]*Instance, 0, g.Rows*g.Cols)
	for _, row := range g.Cells {
		for _, inst := range row {
			if inst != nil {
				out = append(out, inst)
			}
		}
	}
	return out
}

// Payout sums the value of every occupied cell that was not eaten.
func (g Grid) Payout() int {
	total := 0
	for _, inst := range g.Occupied() {
		if !inst.Eaten {
			total += inst.Value
		}
	}
	return total
}

// Clone deep-copies cells so stored snapshots never alias a live grid.
func (g Grid) Clone() Grid {
	out := NewGrid(g.Rows, g.Cols)
	for r, row := range g.Cells {
		for c, inst := range row {
			if inst == nil {
				continue
			}
			cp := *inst
			cp.Tags = append([]string(nil), inst.Tags...)
			out.Cells[r][c] = &cp
		}
	}
	return out
}
