// Package board provides hazard placement, neighbor counting and the reveal
// cascade for a square Scat Scout grid.
package board

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/scatscout/internal/telemetry"
)

const (
	// DefaultSize is the side length of a standard board.
	DefaultSize = 10

	// hazardOdds is the die size rolled per cell; a roll of 0 places a hazard.
	hazardOdds = 7
)

// Grid holds the three parallel layers of a board: where the hazards are,
// which cells the player has seen, and how many hazards surround each cell.
type Grid struct {
	size    int
	hazard  [][]bool
	exposed [][]bool
	counts  [][]int
	hazards int
}

// Generate seeds a size x size grid with hazards. The same size and seed
// always yield the same layout.
func Generate(ctx context.Context, size int, seed int64) *Grid {
	tracer := telemetry.Tracer("board")
	_, span := tracer.Start(ctx, "board.generate")
	defer span.End()

	startTime := time.Now()

	rng := rand.New(rand.NewSource(seed))
	hazard := newLayer[bool](size)
	for r := range hazard {
		for c := range hazard[r] {
			hazard[r][c] = rng.Intn(hazardOdds) == 0
		}
	}

	g := FromHazards(hazard)

	span.SetAttributes(
		attribute.Int("board.size", size),
		attribute.Int64("board.seed", seed),
		attribute.Int("board.hazards", g.hazards),
		attribute.Int64("board.generation_us", time.Since(startTime).Microseconds()),
	)

	return g
}

// FromHazards builds a grid from a hand-made hazard layer. The layer must be
// square; it is copied, so later changes to it do not affect the grid.
func FromHazards(hazard [][]bool) *Grid {
	size := len(hazard)
	g := &Grid{
		size:    size,
		hazard:  newLayer[bool](size),
		exposed: newLayer[bool](size),
	}
	for r := range hazard {
		copy(g.hazard[r], hazard[r])
		for _, h := range hazard[r] {
			if h {
				g.hazards++
			}
		}
	}
	g.counts = ComputeCounts(g.hazard)
	return g
}

// Size returns the side length of the grid.
func (g *Grid) Size() int {
	return g.size
}

// InBounds returns true if (row, col) lies on the grid.
func (g *Grid) InBounds(row, col int) bool {
	return Point{Row: row, Col: col}.In(g.size)
}

// IsHazard returns true if the cell holds a hazard.
func (g *Grid) IsHazard(p Point) bool {
	return g.hazard[p.Row][p.Col]
}

// IsExposed returns true if the cell has been revealed.
func (g *Grid) IsExposed(p Point) bool {
	return g.exposed[p.Row][p.Col]
}

// Count returns the number of hazards adjacent to the cell.
func (g *Grid) Count(p Point) int {
	return g.counts[p.Row][p.Col]
}

// HazardCount returns the total number of hazards on the grid.
func (g *Grid) HazardCount() int {
	return g.hazards
}

// ExposedCount returns the number of revealed cells.
func (g *Grid) ExposedCount() int {
	n := 0
	for _, row := range g.exposed {
		for _, e := range row {
			if e {
				n++
			}
		}
	}
	return n
}

// Won returns true once every non-hazard cell has been exposed.
func (g *Grid) Won() bool {
	return g.ExposedCount()+g.hazards == g.size*g.size
}

// RevealAll exposes every cell, hazards included.
func (g *Grid) RevealAll() {
	for _, row := range g.exposed {
		for c := range row {
			row[c] = true
		}
	}
}

func newLayer[T any](size int) [][]T {
	layer := make([][]T, size)
	for r := range layer {
		layer[r] = make([]T, size)
	}
	return layer
}
