package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/scatscout/internal/board"
	"github.com/samdwyer/scatscout/internal/gamedata"
)

// Board placement on screen. Each cell takes cellStride columns so the grid
// reads as a square.
const (
	boardLeft  = 2
	boardTop   = 1
	cellStride = 2
)

// Renderer handles drawing the board to the screen.
type Renderer struct {
	screen *Screen
	theme  *gamedata.ThemeDef
}

// NewRenderer creates a renderer drawing with the given theme.
func NewRenderer(screen *Screen, theme *gamedata.ThemeDef) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// Render draws the board with row and column labels, highlights the cursor
// cell, and prints status below the board.
func (r *Renderer) Render(view board.View, cursor board.Point, status string) {
	r.screen.Clear()

	labelStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	for i := 0; i < view.Size; i++ {
		label := rune('0' + i%10)
		r.screen.SetContent(boardLeft+i*cellStride, 0, label, labelStyle)
		r.screen.SetContent(0, boardTop+i, label, labelStyle)
	}

	for row := range view.Cells {
		for col, cell := range view.Cells[row] {
			style := tcell.StyleDefault.Foreground(r.theme.Color(cell))
			if cell.Kind == board.CellHazard {
				style = style.Bold(true)
			}
			if cursor.Row == row && cursor.Col == col {
				style = style.Reverse(true)
			}
			x, y := cellPosition(row, col)
			r.screen.SetContent(x, y, r.theme.Glyph(cell), style)
		}
	}

	r.RenderMessage(status, boardTop+view.Size+1)

	r.screen.Show()
}

// RenderMessage displays a message on the given screen row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	r.screen.SetString(0, y, msg, style)
}

// CellAt maps a screen position back to a board cell.
func (r *Renderer) CellAt(x, y, size int) (board.Point, bool) {
	if x < boardLeft || (x-boardLeft)%cellStride != 0 {
		return board.Point{}, false
	}
	p := board.Point{Row: y - boardTop, Col: (x - boardLeft) / cellStride}
	return p, p.In(size)
}

func cellPosition(row, col int) (x, y int) {
	return boardLeft + col*cellStride, boardTop + row
}
