package game

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/scatscout/internal/board"
	"github.com/samdwyer/scatscout/internal/logging"
	"github.com/samdwyer/scatscout/internal/telemetry"
)

// Game holds the state of a single game: one grid, owned exclusively, and
// the seed its hazards were generated from.
type Game struct {
	ID uuid.UUID

	grid    *board.Grid
	seed    int64
	moves   int
	outcome Outcome

	log logrus.FieldLogger
}

// Option customizes a new Game.
type Option func(*Game)

// WithLogger sets the logger the game reports moves to.
func WithLogger(log logrus.FieldLogger) Option {
	return func(g *Game) {
		g.log = log
	}
}

// NewGame generates a size x size board from seed.
func NewGame(ctx context.Context, size int, seed int64, opts ...Option) *Game {
	return NewGameFromGrid(board.Generate(ctx, size, seed), seed, opts...)
}

// NewGameFromGrid starts a game on an existing grid, such as one loaded from
// a layout file. seed is only recorded, not used.
func NewGameFromGrid(grid *board.Grid, seed int64, opts ...Option) *Game {
	g := &Game{
		ID:      uuid.New(),
		grid:    grid,
		seed:    seed,
		outcome: Continue,
		log:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.log = g.log.WithField("game_id", g.ID.String())

	g.log.WithFields(logrus.Fields{
		"size":    grid.Size(),
		"seed":    seed,
		"hazards": grid.HazardCount(),
	}).Info("game started")

	return g
}

// Reveal plays a move at (row, col), which must be on the board. Stepping on
// a hazard loses; exposing the last clear cell wins. Either way the whole
// board is revealed and later moves are ignored.
func (g *Game) Reveal(ctx context.Context, row, col int) Outcome {
	if g.outcome.Terminal() {
		return g.outcome
	}

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.reveal")
	defer span.End()

	g.moves++
	p := board.Point{Row: row, Col: col}
	log := g.log.WithFields(logrus.Fields{"row": row, "col": col, "move": g.moves})

	exposed := 0
	if g.grid.IsHazard(p) {
		g.finish(Loss)
	} else {
		exposed = g.grid.Reveal(p)
		if g.grid.Won() {
			g.finish(Win)
		}
	}

	log.WithFields(logrus.Fields{
		"exposed": exposed,
		"outcome": g.outcome.String(),
	}).Debug("reveal")

	span.SetAttributes(
		attribute.String("game.id", g.ID.String()),
		attribute.Int("reveal.row", row),
		attribute.Int("reveal.col", col),
		attribute.Int("reveal.exposed", exposed),
		attribute.String("reveal.outcome", g.outcome.String()),
	)

	return g.outcome
}

// RenderModel returns what the player can currently see.
func (g *Game) RenderModel() board.View {
	return g.grid.View()
}

// RevealAll exposes every cell for the final display.
func (g *Game) RevealAll() {
	g.grid.RevealAll()
}

// finish records a terminal outcome and uncovers the board.
func (g *Game) finish(outcome Outcome) {
	g.outcome = outcome
	g.RevealAll()

	g.log.WithFields(logrus.Fields{
		"outcome": outcome.String(),
		"moves":   g.moves,
	}).Info("game over")
	g.log.WithField("layout", g.grid.Layout(g.seed).Serialize()).Debug("final layout")
}

// Outcome returns the latest outcome; Continue until the game ends.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Over returns true once the game has been won or lost.
func (g *Game) Over() bool {
	return g.outcome.Terminal()
}

// Seed returns the seed the layout was generated from.
func (g *Game) Seed() int64 {
	return g.seed
}

// Size returns the board side length.
func (g *Game) Size() int {
	return g.grid.Size()
}

// InBounds returns true if (row, col) is a legal move target.
func (g *Game) InBounds(row, col int) bool {
	return g.grid.InBounds(row, col)
}

// Moves returns how many moves have been played.
func (g *Game) Moves() int {
	return g.moves
}

// HazardCount returns the total number of hazards on the board.
func (g *Game) HazardCount() int {
	return g.grid.HazardCount()
}
