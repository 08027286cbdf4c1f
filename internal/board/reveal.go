package board

import "github.com/gammazero/deque"

// Reveal exposes p and cascades through the connected region of zero-count
// cells, also exposing the non-zero cells that border that region without
// cascading past them. It returns how many cells were newly exposed.
//
// p must be in bounds and must not hold a hazard; hazards are the caller's
// concern. Revealing an already exposed cell does nothing.
func (g *Grid) Reveal(p Point) int {
	if g.exposed[p.Row][p.Col] {
		return 0
	}

	exposed := 0

	// Work stack of zero-count cells still to expand.
	var stack deque.Deque
	stack.PushBack(p)

	for stack.Len() > 0 {
		cur := stack.PopBack().(Point)
		if g.exposed[cur.Row][cur.Col] {
			continue
		}
		g.exposed[cur.Row][cur.Col] = true
		exposed++

		if g.counts[cur.Row][cur.Col] > 0 {
			continue
		}

		for _, n := range cur.Neighbors(g.size) {
			if g.exposed[n.Row][n.Col] {
				continue
			}
			if g.counts[n.Row][n.Col] == 0 {
				stack.PushBack(n)
			} else {
				// Border cell: shown, but the cascade stops here.
				g.exposed[n.Row][n.Col] = true
				exposed++
			}
		}
	}

	return exposed
}
