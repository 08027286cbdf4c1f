// Package game provides the game state, its outcome rules and the session
// loop that drives a frontend.
package game

// Outcome is the result of a move.
type Outcome int

const (
	// Continue means the game goes on.
	Continue Outcome = iota
	// Win means every clear cell has been revealed.
	Win
	// Loss means the player revealed a hazard.
	Loss
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Win:
		return "win"
	case Loss:
		return "loss"
	default:
		return "unknown"
	}
}

// Terminal returns true if no further moves are accepted after o.
func (o Outcome) Terminal() bool {
	return o == Win || o == Loss
}
