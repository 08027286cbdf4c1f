package board

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

// ErrInvalidLayout is returned when a layout document cannot describe a grid.
var ErrInvalidLayout = errors.New("invalid layout")

const (
	layoutHazard = '*'
	layoutClear  = '.'
)

// Layout is a text form of a hazard layer, used to replay a fixed board and
// to log the board a game was played on.
type Layout struct {
	Seed  int64  `yaml:"seed"`
	Board string `yaml:"board"`
}

// ParseLayout reads a YAML layout document.
func ParseLayout(in string) (*Layout, error) {
	var layout Layout
	if err := yaml.Unmarshal([]byte(in), &layout); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	if _, err := layout.hazards(); err != nil {
		return nil, err
	}
	return &layout, nil
}

// Serialize returns the layout as a YAML document.
func (l *Layout) Serialize() string {
	out, err := yaml.Marshal(l)
	if err != nil {
		panic(err)
	}
	return string(out)
}

// Grid builds a fresh, fully hidden grid from the layout.
func (l *Layout) Grid() (*Grid, error) {
	hazard, err := l.hazards()
	if err != nil {
		return nil, err
	}
	return FromHazards(hazard), nil
}

func (l *Layout) hazards() ([][]bool, error) {
	rows := strings.Split(strings.TrimSpace(l.Board), "\n")
	if len(rows) == 0 || rows[0] == "" {
		return nil, fmt.Errorf("%w: empty board", ErrInvalidLayout)
	}

	size := len(rows)
	hazard := newLayer[bool](size)
	for r, row := range rows {
		row = strings.TrimSpace(row)
		if len(row) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidLayout, r, len(row), size)
		}
		for c, ch := range row {
			switch ch {
			case layoutHazard:
				hazard[r][c] = true
			case layoutClear:
			default:
				return nil, fmt.Errorf("%w: unexpected %q at (%d, %d)", ErrInvalidLayout, ch, r, c)
			}
		}
	}
	return hazard, nil
}

// Layout captures the grid's hazard layer, tagged with the seed it came from.
func (g *Grid) Layout(seed int64) *Layout {
	var b strings.Builder
	for r, row := range g.hazard {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, h := range row {
			if h {
				b.WriteByte(layoutHazard)
			} else {
				b.WriteByte(layoutClear)
			}
		}
	}
	return &Layout{Seed: seed, Board: b.String()}
}
