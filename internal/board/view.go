package board

// CellKind says what a player can see in a cell.
type CellKind int

const (
	// CellHidden is a cell the player has not revealed.
	CellHidden CellKind = iota
	// CellHazard is a revealed hazard.
	CellHazard
	// CellNumber is a revealed clear cell showing its neighbor count.
	CellNumber
)

// String returns a human-readable kind name.
func (k CellKind) String() string {
	switch k {
	case CellHidden:
		return "hidden"
	case CellHazard:
		return "hazard"
	case CellNumber:
		return "number"
	default:
		return "unknown"
	}
}

const (
	// HiddenRune is the default glyph for an unrevealed cell.
	HiddenRune = '.'
	// HazardRune is the default glyph for a revealed hazard.
	HazardRune = '*'
)

// Cell is the visible state of one grid cell.
type Cell struct {
	Kind  CellKind
	Count int // Only meaningful for CellNumber
}

// Rune returns the cell's default display character.
func (c Cell) Rune() rune {
	switch c.Kind {
	case CellHazard:
		return HazardRune
	case CellNumber:
		return rune('0' + c.Count)
	default:
		return HiddenRune
	}
}

// View is a read-only projection of a grid for renderers.
type View struct {
	Size  int
	Cells [][]Cell
}

// At returns the cell at (row, col).
func (v View) At(row, col int) Cell {
	return v.Cells[row][col]
}

// View projects the grid into what the player is allowed to see. It does not
// modify the grid.
func (g *Grid) View() View {
	cells := newLayer[Cell](g.size)
	for r := range cells {
		for c := range cells[r] {
			switch {
			case !g.exposed[r][c]:
				cells[r][c] = Cell{Kind: CellHidden}
			case g.hazard[r][c]:
				cells[r][c] = Cell{Kind: CellHazard}
			default:
				cells[r][c] = Cell{Kind: CellNumber, Count: g.counts[r][c]}
			}
		}
	}
	return View{Size: g.size, Cells: cells}
}
