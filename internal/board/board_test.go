package board

import (
	"context"
	"testing"
)

// parse builds a hazard layer from rows of '*' and '.'.
func parse(rows ...string) [][]bool {
	hazard := make([][]bool, len(rows))
	for r, row := range rows {
		hazard[r] = make([]bool, len(row))
		for c, ch := range row {
			hazard[r][c] = ch == '*'
		}
	}
	return hazard
}

func TestGenerateReproducibility(t *testing.T) {
	ctx := context.Background()
	seed := int64(12345)

	g1 := Generate(ctx, DefaultSize, seed)
	g2 := Generate(ctx, DefaultSize, seed)

	if g1.HazardCount() != g2.HazardCount() {
		t.Fatalf("Hazard count mismatch: %d != %d", g1.HazardCount(), g2.HazardCount())
	}

	for r := 0; r < DefaultSize; r++ {
		for c := 0; c < DefaultSize; c++ {
			p := Point{Row: r, Col: c}
			if g1.IsHazard(p) != g2.IsHazard(p) {
				t.Errorf("Hazard mismatch at (%d,%d)", r, c)
			}
			if g1.Count(p) != g2.Count(p) {
				t.Errorf("Count mismatch at (%d,%d): %d != %d", r, c, g1.Count(p), g2.Count(p))
			}
		}
	}
}

func TestGenerateDifferentSeeds(t *testing.T) {
	ctx := context.Background()

	// 100 cells at 1-in-7 odds; two seeds agreeing everywhere is vanishingly unlikely
	identical := true
	g1 := Generate(ctx, DefaultSize, 1)
	g2 := Generate(ctx, DefaultSize, 2)
	for r := 0; r < DefaultSize && identical; r++ {
		for c := 0; c < DefaultSize; c++ {
			p := Point{Row: r, Col: c}
			if g1.IsHazard(p) != g2.IsHazard(p) {
				identical = false
				break
			}
		}
	}

	if identical {
		t.Error("Boards with different seeds should not be identical")
	}
}

func TestGenerateStartsHidden(t *testing.T) {
	g := Generate(context.Background(), DefaultSize, 7)

	if g.Size() != DefaultSize {
		t.Errorf("Size() = %d, want %d", g.Size(), DefaultSize)
	}
	if got := g.ExposedCount(); got != 0 {
		t.Errorf("ExposedCount() = %d, want 0", got)
	}
}

func TestComputeCounts(t *testing.T) {
	hazard := parse(
		"*..",
		"...",
		".**",
	)
	want := [][]int{
		{0, 1, 0},
		{2, 3, 2},
		{1, 1, 1},
	}

	got := ComputeCounts(hazard)
	for r := range want {
		for c := range want[r] {
			if got[r][c] != want[r][c] {
				t.Errorf("count(%d,%d) = %d, want %d", r, c, got[r][c], want[r][c])
			}
		}
	}
}

func TestComputeCountsExcludesSelf(t *testing.T) {
	// A lone hazard sees no hazards around it
	counts := ComputeCounts(parse(
		"...",
		".*.",
		"...",
	))

	if counts[1][1] != 0 {
		t.Errorf("count of isolated hazard = %d, want 0", counts[1][1])
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if (r != 1 || c != 1) && counts[r][c] != 1 {
				t.Errorf("count(%d,%d) = %d, want 1", r, c, counts[r][c])
			}
		}
	}
}

func TestComputeCountsMatchesNeighborhood(t *testing.T) {
	g := Generate(context.Background(), DefaultSize, 99)

	for r := 0; r < DefaultSize; r++ {
		for c := 0; c < DefaultSize; c++ {
			want := 0
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					n := Point{Row: r + dr, Col: c + dc}
					if (dr == 0 && dc == 0) || !n.In(DefaultSize) {
						continue
					}
					if g.IsHazard(n) {
						want++
					}
				}
			}
			if got := g.Count(Point{Row: r, Col: c}); got != want {
				t.Errorf("Count(%d,%d) = %d, want %d", r, c, got, want)
			}
		}
	}
}

func TestFromHazardsCopiesInput(t *testing.T) {
	hazard := parse(
		"..",
		"..",
	)
	g := FromHazards(hazard)
	hazard[0][0] = true

	if g.IsHazard(Point{0, 0}) {
		t.Error("FromHazards should copy the hazard layer")
	}
	if g.HazardCount() != 0 {
		t.Errorf("HazardCount() = %d, want 0", g.HazardCount())
	}
}

func TestPointNeighbors(t *testing.T) {
	tests := []struct {
		p    Point
		want int
	}{
		{Point{0, 0}, 3},
		{Point{0, 4}, 3},
		{Point{4, 4}, 3},
		{Point{0, 2}, 5},
		{Point{2, 0}, 5},
		{Point{2, 2}, 8},
	}

	for _, tt := range tests {
		if got := len(tt.p.Neighbors(5)); got != tt.want {
			t.Errorf("Point%v.Neighbors(5) returned %d points, want %d", tt.p, got, tt.want)
		}
	}
}

func TestGridInBounds(t *testing.T) {
	g := FromHazards(parse("...", "...", "..."))

	if !g.InBounds(0, 0) || !g.InBounds(2, 2) {
		t.Error("corners should be in bounds")
	}
	if g.InBounds(-1, 0) || g.InBounds(0, 3) || g.InBounds(3, 3) {
		t.Error("outside points should be out of bounds")
	}
}

func TestWon(t *testing.T) {
	g := FromHazards(parse(
		"...",
		".*.",
		"...",
	))

	// Every clear cell borders the hazard, so each reveal exposes one cell
	clear := []Point{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
	for i, p := range clear {
		if g.Won() {
			t.Fatalf("Won() true after %d of %d reveals", i, len(clear))
		}
		g.Reveal(p)
	}

	if !g.Won() {
		t.Error("Won() should be true once every clear cell is exposed")
	}
}

func TestRevealAll(t *testing.T) {
	g := FromHazards(parse(
		"*.",
		"..",
	))
	g.RevealAll()

	if got := g.ExposedCount(); got != 4 {
		t.Errorf("ExposedCount() after RevealAll = %d, want 4", got)
	}
}

func TestViewProjection(t *testing.T) {
	g := FromHazards(parse(
		"*.",
		"..",
	))
	g.Reveal(Point{0, 1})

	v := g.View()
	if v.Size != 2 {
		t.Fatalf("View().Size = %d, want 2", v.Size)
	}
	if got := v.At(0, 1); got.Kind != CellNumber || got.Count != 1 {
		t.Errorf("View().At(0,1) = %+v, want number 1", got)
	}
	if got := v.At(0, 0); got.Kind != CellHidden {
		t.Errorf("View().At(0,0) = %v, want hidden", got.Kind)
	}

	g.RevealAll()
	v = g.View()
	if got := v.At(0, 0); got.Kind != CellHazard {
		t.Errorf("View().At(0,0) after RevealAll = %v, want hazard", got.Kind)
	}
}

func TestCellRune(t *testing.T) {
	tests := []struct {
		cell Cell
		want rune
	}{
		{Cell{Kind: CellHidden}, '.'},
		{Cell{Kind: CellHazard}, '*'},
		{Cell{Kind: CellNumber, Count: 0}, '0'},
		{Cell{Kind: CellNumber, Count: 8}, '8'},
	}

	for _, tt := range tests {
		if got := tt.cell.Rune(); got != tt.want {
			t.Errorf("%+v.Rune() = %q, want %q", tt.cell, got, tt.want)
		}
	}
}

func TestCellKindString(t *testing.T) {
	tests := []struct {
		kind     CellKind
		expected string
	}{
		{CellHidden, "hidden"},
		{CellHazard, "hazard"},
		{CellNumber, "number"},
		{CellKind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("CellKind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}
