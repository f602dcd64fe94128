package menace

import (
	"menace/game"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

var (
	// ErrIllegalMove reports an attempt to add beads for an occupied square.
	ErrIllegalMove = errors.New("move is not legal in this board state")
	// ErrNoLegalMove reports a matchbox whose beads are exhausted.
	ErrNoLegalMove = errors.New("matchbox has no beads left")
)

// Matchbox holds the bead multiset for one board state. The legal-move set
// is fixed at construction to the squares that were empty in that state;
// occupied squares never gain beads. Sampling one bead uniformly from the
// whole multiset makes a move's probability proportional to its bead count.
type Matchbox struct {
	state game.BoardState
	beads []Bead
}

// NewMatchbox seeds a matchbox with initialCount beads for every empty
// square of state.
func NewMatchbox(state game.BoardState, initialCount int) *Matchbox {
	open := state.EmptyCells()
	box := &Matchbox{
		state: state,
		beads: make([]Bead, 0, initialCount*len(open)),
	}
	for _, move := range open {
		for i := 0; i < initialCount; i++ {
			box.beads = append(box.beads, Bead{move: move})
		}
	}
	return box
}

// State returns the board state this matchbox answers for.
func (m *Matchbox) State() game.BoardState {
	return m.state
}

// AddBeads appends count beads for move. The move must be an empty square in
// the matchbox's board state; there is no upper bound on the count.
func (m *Matchbox) AddBeads(move game.Move, count int) error {
	if !move.InBounds() || m.state.Cell(move.Row, move.Col) != game.Empty {
		return errors.Wrapf(ErrIllegalMove, "move %s", move)
	}
	for i := 0; i < count; i++ {
		m.beads = append(m.beads, Bead{move: move})
	}
	return nil
}

// RemoveBeads removes up to count beads carrying move. Removing more beads
// than exist clamps silently at zero; legality is not checked since removal
// only shrinks a move's weight.
func (m *Matchbox) RemoveBeads(move game.Move, count int) {
	kept := m.beads[:0]
	for _, b := range m.beads {
		if count > 0 && b.move == move {
			count--
			continue
		}
		kept = append(kept, b)
	}
	m.beads = kept
}

// BeadCount returns the number of beads carrying move. A zero count means
// the move is never sampled, though it stays known to the box.
func (m *Matchbox) BeadCount(move game.Move) int {
	n := 0
	for _, b := range m.beads {
		if b.move == move {
			n++
		}
	}
	return n
}

// TotalBeads returns the size of the whole multiset.
func (m *Matchbox) TotalBeads() int {
	return len(m.beads)
}

// sample draws one bead uniformly at random from the multiset.
func (m *Matchbox) sample(rng *rand.Rand) (Bead, error) {
	if len(m.beads) == 0 {
		return Bead{}, errors.Wrapf(ErrNoLegalMove, "state\n%s", m.state)
	}
	return m.beads[rng.Intn(len(m.beads))], nil
}
