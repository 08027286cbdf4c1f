package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samdwyer/scatscout/internal/board"
	"github.com/samdwyer/scatscout/internal/game"
	"github.com/samdwyer/scatscout/internal/gamedata"
)

const prompt = "Enter two integers(row and column):"

// Console is a line-oriented frontend: it prints the board as text and reads
// whitespace-separated coordinates. It plays a single game.
type Console struct {
	in    *bufio.Scanner
	out   io.Writer
	theme *gamedata.ThemeDef
	size  int
}

// NewConsole creates a console frontend reading from in and writing to out.
func NewConsole(in io.Reader, out io.Writer, theme *gamedata.ThemeDef) *Console {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Console{
		in:    scanner,
		out:   out,
		theme: theme,
		size:  board.DefaultSize,
	}
}

// Render prints the outcome banner, if any, followed by the board.
func (c *Console) Render(view board.View, outcome game.Outcome) {
	c.size = view.Size

	switch outcome {
	case game.Win:
		fmt.Fprint(c.out, "WELL DONE!\nYOU WIN!\n")
	case game.Loss:
		fmt.Fprint(c.out, "YOU STEPPED IN SCAT!\nYOU LOSE!\n")
	}

	fmt.Fprint(c.out, c.format(view))

	if outcome == game.Continue {
		fmt.Fprint(c.out, "\n"+prompt)
	} else {
		fmt.Fprintln(c.out)
	}
}

// format draws the board with column digits above and below and row digits
// on both sides.
func (c *Console) format(view board.View) string {
	var b strings.Builder

	digits := func() {
		b.WriteByte(' ')
		for col := 0; col < view.Size; col++ {
			b.WriteByte(byte('0' + col%10))
		}
	}

	digits()
	b.WriteByte('\n')
	for r, row := range view.Cells {
		label := byte('0' + r%10)
		b.WriteByte(label)
		for _, cell := range row {
			b.WriteRune(c.theme.Glyph(cell))
		}
		b.WriteByte(label)
		b.WriteByte('\n')
	}
	digits()

	return b.String()
}

// NextMove reads tokens until it has a row and a column on the board. Any
// bad token discards the pair read so far and prints a hint. End of input
// or "q" quits.
func (c *Console) NextMove(ctx context.Context) (game.Move, error) {
	coords := make([]int, 0, 2)
	for len(coords) < 2 {
		if err := ctx.Err(); err != nil {
			return game.Move{}, err
		}
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return game.Move{}, fmt.Errorf("read move: %w", err)
			}
			return game.Move{}, game.ErrQuit
		}

		token := c.in.Text()
		if token == "q" || token == "quit" {
			return game.Move{}, game.ErrQuit
		}

		n, err := strconv.Atoi(token)
		if err != nil || n < 0 || n >= c.size {
			fmt.Fprintf(c.out, "Please enter two numbers between 0 and %d\n", c.size-1)
			coords = coords[:0]
			continue
		}
		coords = append(coords, n)
	}

	return game.Move{Row: coords[0], Col: coords[1]}, nil
}

// PlayAgain always declines; the console plays one game per run.
func (c *Console) PlayAgain(ctx context.Context) (bool, error) {
	return false, nil
}

// Close is a no-op; the console does not own its streams.
func (c *Console) Close() error {
	return nil
}
