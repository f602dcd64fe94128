// Package menace implements the matchbox learner: a per-state weighted-random
// move policy stored as bead multisets and trained by win/loss reinforcement
// after each finished game.
package menace

import (
	"menace/game"

	"github.com/pkg/errors"
)

// ErrInvalidMove reports a move outside the 3x3 board.
var ErrInvalidMove = errors.New("move out of bounds")

// Bead is one unit of selection weight for a single move. Beads are fungible
// except for the move they carry.
type Bead struct {
	move game.Move
}

// NewBead wraps a move in a bead, rejecting out-of-bounds moves.
func NewBead(move game.Move) (Bead, error) {
	if !move.InBounds() {
		return Bead{}, errors.Wrapf(ErrInvalidMove, "move %s", move)
	}
	return Bead{move: move}, nil
}

// Move returns the move this bead votes for.
func (b Bead) Move() game.Move {
	return b.move
}
