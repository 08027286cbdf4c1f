package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/scatscout/internal/board"
)

// gridFrom builds a grid from rows of '*' (hazard) and '.' (clear).
func gridFrom(rows ...string) *board.Grid {
	hazard := make([][]bool, len(rows))
	for r, row := range rows {
		hazard[r] = make([]bool, len(row))
		for c, ch := range row {
			hazard[r][c] = ch == '*'
		}
	}
	return board.FromHazards(hazard)
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		outcome  Outcome
		expected string
	}{
		{Continue, "continue"},
		{Win, "win"},
		{Loss, "loss"},
		{Outcome(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.outcome.String())
	}
}

func TestOutcomeTerminal(t *testing.T) {
	assert.False(t, Continue.Terminal())
	assert.True(t, Win.Terminal())
	assert.True(t, Loss.Terminal())
}

func TestNewGameDeterministic(t *testing.T) {
	ctx := context.Background()

	g1 := NewGame(ctx, board.DefaultSize, 17)
	g2 := NewGame(ctx, board.DefaultSize, 17)

	assert.NotEqual(t, g1.ID, g2.ID)
	assert.Equal(t, g1.HazardCount(), g2.HazardCount())

	g1.RevealAll()
	g2.RevealAll()
	assert.Equal(t, g1.RenderModel(), g2.RenderModel())
}

func TestNewGameStartsHidden(t *testing.T) {
	g := NewGame(context.Background(), board.DefaultSize, 3)

	assert.Equal(t, board.DefaultSize, g.Size())
	assert.Equal(t, int64(3), g.Seed())
	assert.Equal(t, Continue, g.Outcome())
	assert.False(t, g.Over())

	view := g.RenderModel()
	for r := range view.Cells {
		for c := range view.Cells[r] {
			assert.Equal(t, board.CellHidden, view.At(r, c).Kind)
		}
	}
}

func TestRevealWinNeedsEveryClearCell(t *testing.T) {
	// Every clear cell borders the single hazard, so each move exposes one cell
	g := NewGameFromGrid(gridFrom("...", ".*.", "..."), 0)
	ctx := context.Background()

	clear := []board.Point{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 0}, {Row: 1, Col: 2}, {Row: 2, Col: 0}, {Row: 2, Col: 1}}
	for _, p := range clear {
		require.Equal(t, Continue, g.Reveal(ctx, p.Row, p.Col), "after revealing %v", p)
	}

	assert.Equal(t, Win, g.Reveal(ctx, 2, 2))
	assert.True(t, g.Over())
	assert.Equal(t, 8, g.Moves())

	// The final board is fully shown
	assert.Equal(t, board.CellHazard, g.RenderModel().At(1, 1).Kind)
}

func TestRevealCascadeWinsInOneMove(t *testing.T) {
	g := NewGameFromGrid(gridFrom("*..", "...", "..."), 0)

	assert.Equal(t, Win, g.Reveal(context.Background(), 2, 2))
	assert.Equal(t, 1, g.Moves())
}

func TestRevealHazardLoses(t *testing.T) {
	g := NewGameFromGrid(gridFrom("*..", "...", "..."), 0)

	assert.Equal(t, Loss, g.Reveal(context.Background(), 0, 0))

	view := g.RenderModel()
	for r := range view.Cells {
		for c := range view.Cells[r] {
			assert.NotEqual(t, board.CellHidden, view.At(r, c).Kind, "cell (%d,%d) should be revealed after a loss", r, c)
		}
	}
	assert.Equal(t, board.CellHazard, view.At(0, 0).Kind)
	assert.Equal(t, board.Cell{Kind: board.CellNumber, Count: 1}, view.At(1, 1))
}

func TestRevealAfterGameOverIsIgnored(t *testing.T) {
	g := NewGameFromGrid(gridFrom("*..", "...", "..."), 0)
	ctx := context.Background()

	require.Equal(t, Loss, g.Reveal(ctx, 0, 0))
	assert.Equal(t, Loss, g.Reveal(ctx, 2, 2))
	assert.Equal(t, 1, g.Moves())
}

func TestRevealSameCellTwice(t *testing.T) {
	g := NewGameFromGrid(gridFrom("*...", "....", "....", "...*"), 0)
	ctx := context.Background()

	require.Equal(t, Continue, g.Reveal(ctx, 1, 1))
	before := g.RenderModel()

	assert.Equal(t, Continue, g.Reveal(ctx, 1, 1))
	assert.Equal(t, before, g.RenderModel())
}

func TestRenderModelDoesNotMutate(t *testing.T) {
	g := NewGameFromGrid(gridFrom("*..", "...", "..."), 0)

	first := g.RenderModel()
	first.Cells[0][0] = board.Cell{Kind: board.CellHazard}

	assert.Equal(t, board.CellHidden, g.RenderModel().At(0, 0).Kind)
}

func TestInBounds(t *testing.T) {
	g := NewGameFromGrid(gridFrom("..", ".."), 0)

	assert.True(t, g.InBounds(1, 1))
	assert.False(t, g.InBounds(2, 0))
	assert.False(t, g.InBounds(0, -1))
}
