package board

// Point is a (row, column) coordinate on the grid.
type Point struct {
	Row, Col int
}

// offsets of the 8-neighborhood, row-major, center excluded.
var offsets = [8]Point{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// In returns true if the point lies inside a square grid of the given side.
func (p Point) In(size int) bool {
	return p.Row >= 0 && p.Row < size && p.Col >= 0 && p.Col < size
}

// Neighbors returns the in-bounds points adjacent to p, including diagonals.
func (p Point) Neighbors(size int) []Point {
	out := make([]Point, 0, len(offsets))
	for _, d := range offsets {
		n := Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
		if n.In(size) {
			out = append(out, n)
		}
	}
	return out
}
