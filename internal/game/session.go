package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/scatscout/internal/board"
	"github.com/samdwyer/scatscout/internal/telemetry"
)

// ErrQuit is returned by a Frontend when the player leaves.
var ErrQuit = errors.New("player quit")

// generationSeedRange bounds the per-game layout seeds drawn by a session.
const generationSeedRange = 50

// Move is a coordinate chosen by the player. Frontends only hand out moves
// that are on the board.
type Move struct {
	Row, Col int
}

// Frontend is the player-facing side of a session: it shows the board and
// collects moves.
type Frontend interface {
	// Render shows the board along with the latest outcome.
	Render(view board.View, outcome Outcome)
	// NextMove blocks until the player picks an on-board cell.
	NextMove(ctx context.Context) (Move, error)
	// PlayAgain asks whether to start another game once one has ended.
	PlayAgain(ctx context.Context) (bool, error)
	// Close releases the frontend's resources.
	Close() error
}

// Session runs games against a frontend. It owns the random source that
// picks each game's layout seed, so a fixed session seed replays the same
// sequence of boards.
type Session struct {
	frontend Frontend
	rng      *rand.Rand
	log      logrus.FieldLogger
	size     int
	layout   *board.Layout
	played   int
}

// NewSession creates a session. A seed of 0 picks a time-based seed.
func NewSession(frontend Frontend, seed int64, log logrus.FieldLogger) *Session {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.WithField("session_seed", seed).Debug("session created")

	return &Session{
		frontend: frontend,
		rng:      rand.New(rand.NewSource(seed)),
		log:      log,
		size:     board.DefaultSize,
	}
}

// UseLayout makes every game of the session start from layout instead of a
// generated board.
func (s *Session) UseLayout(layout *board.Layout) {
	s.layout = layout
}

// Played returns the number of games started so far.
func (s *Session) Played() int {
	return s.played
}

// Run plays games until the player quits, declines another game, or ctx is
// cancelled.
func (s *Session) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("session")
	ctx, span := tracer.Start(ctx, "session.run")
	defer func() {
		span.SetAttributes(attribute.Int("session.games", s.played))
		span.End()
	}()

	for {
		g, err := s.newGame(ctx)
		if err != nil {
			return err
		}

		if err := s.play(ctx, g); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}

		again, err := s.frontend.PlayAgain(ctx)
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("play again: %w", err)
		}
		if !again {
			return nil
		}
	}
}

func (s *Session) newGame(ctx context.Context) (*Game, error) {
	s.played++

	if s.layout != nil {
		grid, err := s.layout.Grid()
		if err != nil {
			return nil, err
		}
		return NewGameFromGrid(grid, s.layout.Seed, WithLogger(s.log)), nil
	}

	seed := s.rng.Int63n(generationSeedRange)
	return NewGame(ctx, s.size, seed, WithLogger(s.log)), nil
}

// play runs the move loop of a single game.
func (s *Session) play(ctx context.Context, g *Game) error {
	for {
		s.frontend.Render(g.RenderModel(), g.Outcome())
		if g.Over() {
			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		move, err := s.frontend.NextMove(ctx)
		if err != nil {
			return err
		}
		if !g.InBounds(move.Row, move.Col) {
			s.log.WithFields(logrus.Fields{"row": move.Row, "col": move.Col}).Warn("frontend sent off-board move")
			continue
		}

		g.Reveal(ctx, move.Row, move.Col)
	}
}
