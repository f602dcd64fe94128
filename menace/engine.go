package menace

import (
	"time"

	"menace/game"

	"golang.org/x/exp/rand"
)

// DefaultInitialBeads is the seed weight per legal move in a fresh matchbox.
const DefaultInitialBeads = 4

type Option func(e *Engine)

// WithInitialBeads sets the seed bead count for lazily created matchboxes.
func WithInitialBeads(count int) Option {
	return func(e *Engine) {
		if count >= 0 {
			e.initialBeads = count
		}
	}
}

// WithRand injects the sampling source, for deterministic play in tests.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// WithSeed seeds the default sampling source.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

type playedMove struct {
	box  *Matchbox
	move game.Move
}

// Engine is the learner. It owns the append-only board-state to matchbox
// mapping accumulated across games, and the move history of the game in
// progress. It is not safe for concurrent use; play games sequentially.
type Engine struct {
	initialBeads int
	rng          *rand.Rand
	boxes        map[game.BoardState]*Matchbox
	history      []playedMove
}

// New returns an empty learner.
func New(options ...Option) *Engine {
	e := &Engine{
		initialBeads: DefaultInitialBeads,
		rng:          rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		boxes:        make(map[game.BoardState]*Matchbox),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Matchbox returns the box for state, creating it on first visit. Boxes live
// for the engine's lifetime and are never dropped.
func (e *Engine) Matchbox(state game.BoardState) *Matchbox {
	box, ok := e.boxes[state]
	if !ok {
		box = NewMatchbox(state, e.initialBeads)
		e.boxes[state] = box
	}
	return box
}

// ChooseMove samples a move for state, weighted by bead count, and records
// it in the current game's history for the end-of-game update. Fails with
// ErrNoLegalMove when the state's matchbox is out of beads.
func (e *Engine) ChooseMove(state game.BoardState) (game.Move, error) {
	box := e.Matchbox(state)
	bead, err := box.sample(e.rng)
	if err != nil {
		return game.Move{}, err
	}
	e.history = append(e.history, playedMove{box: box, move: bead.Move()})
	return bead.Move(), nil
}

// Learn applies the reinforcement update for a finished game to every
// (matchbox, move) pair played, then clears the history unconditionally.
//
// A win adds one bead per played move. A loss removes one, unless the move
// is already down to its last bead: the pair played this game never reaches
// zero from this update. A draw changes nothing.
func (e *Engine) Learn(outcome Outcome) {
	for _, played := range e.history {
		switch outcome {
		case Win:
			// The move was legal when sampled, so AddBeads cannot fail.
			_ = played.box.AddBeads(played.move, 1)
		case Loss:
			if played.box.BeadCount(played.move) > 1 {
				played.box.RemoveBeads(played.move, 1)
			}
		}
	}
	e.history = nil
}

// Boxes returns the number of board states learned so far.
func (e *Engine) Boxes() int {
	return len(e.boxes)
}

// HistoryLen returns the number of moves recorded in the game in progress.
func (e *Engine) HistoryLen() int {
	return len(e.history)
}
