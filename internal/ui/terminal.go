package ui

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/scatscout/internal/board"
	"github.com/samdwyer/scatscout/internal/game"
	"github.com/samdwyer/scatscout/internal/gamedata"
)

const (
	helpPlaying = "arrows/hjkl move, enter/space reveal, q quit"
	helpOver    = "n/enter new game, q quit"
)

// Terminal is a full-screen frontend. The player steers a cursor over the
// board, or clicks a cell, to reveal it.
type Terminal struct {
	screen   *Screen
	renderer *Renderer

	view    board.View
	outcome game.Outcome
	cursor  board.Point
}

// NewTerminal creates a full-screen frontend on an initialized screen.
func NewTerminal(screen *Screen, theme *gamedata.ThemeDef) *Terminal {
	return &Terminal{
		screen:   screen,
		renderer: NewRenderer(screen, theme),
	}
}

// Render shows the board and the status line for outcome.
func (t *Terminal) Render(view board.View, outcome game.Outcome) {
	if view.Size != t.view.Size {
		t.cursor = board.Point{Row: view.Size / 2, Col: view.Size / 2}
	}
	t.view = view
	t.outcome = outcome
	t.draw()
}

func (t *Terminal) draw() {
	t.renderer.Render(t.view, t.cursor, t.status())
}

func (t *Terminal) status() string {
	switch t.outcome {
	case game.Win:
		return "WELL DONE! YOU WIN!  " + helpOver
	case game.Loss:
		return "YOU STEPPED IN SCAT! YOU LOSE!  " + helpOver
	default:
		return helpPlaying
	}
}

// NextMove handles input events until the player reveals a cell or quits.
func (t *Terminal) NextMove(ctx context.Context) (game.Move, error) {
	for {
		if err := ctx.Err(); err != nil {
			return game.Move{}, err
		}

		switch ev := t.screen.PollEvent().(type) {
		case nil:
			// Screen was finalized
			return game.Move{}, game.ErrQuit

		case *tcell.EventResize:
			t.screen.Sync()
			t.draw()

		case *tcell.EventMouse:
			if ev.Buttons()&tcell.Button1 == 0 {
				continue
			}
			x, y := ev.Position()
			if p, ok := t.renderer.CellAt(x, y, t.view.Size); ok {
				t.cursor = p
				return game.Move{Row: p.Row, Col: p.Col}, nil
			}

		case *tcell.EventKey:
			if isQuit(ev) {
				return game.Move{}, game.ErrQuit
			}
			if ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && ev.Rune() == ' ') {
				return game.Move{Row: t.cursor.Row, Col: t.cursor.Col}, nil
			}
			if dr, dc, ok := direction(ev); ok {
				t.moveCursor(dr, dc)
				t.draw()
			}
		}
	}
}

// PlayAgain waits for the player to start a new game or quit.
func (t *Terminal) PlayAgain(ctx context.Context) (bool, error) {
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return false, nil
		case *tcell.EventResize:
			t.screen.Sync()
			t.draw()
		case *tcell.EventKey:
			if isQuit(ev) {
				return false, nil
			}
			if ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && (ev.Rune() == 'n' || ev.Rune() == 'N')) {
				return true, nil
			}
		}
	}
}

// Close restores the terminal.
func (t *Terminal) Close() error {
	t.screen.Close()
	return nil
}

// moveCursor shifts the cursor, clamped to the board.
func (t *Terminal) moveCursor(dr, dc int) {
	next := board.Point{Row: t.cursor.Row + dr, Col: t.cursor.Col + dc}
	if next.In(t.view.Size) {
		t.cursor = next
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// direction maps arrow keys and vi keys to a cursor step.
func direction(ev *tcell.EventKey) (dr, dc int, ok bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return -1, 0, true
	case tcell.KeyDown:
		return 1, 0, true
	case tcell.KeyLeft:
		return 0, -1, true
	case tcell.KeyRight:
		return 0, 1, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			return -1, 0, true
		case 'j':
			return 1, 0, true
		case 'h':
			return 0, -1, true
		case 'l':
			return 0, 1, true
		}
	}
	return 0, 0, false
}
