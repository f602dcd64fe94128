// Package engine drives single games between the matchbox learner and an
// opponent strategy, feeding each result back into the learner.
package engine

import (
	"menace/game"
	"menace/menace"
	"menace/player"

	"github.com/rs/zerolog/log"
)

// Engine alternates turns between the learner (Cross, moving first) and the
// opponent (Nought) on a fresh board per game. The learner instance persists
// across games; its matchbox table is the accumulated model.
type Engine struct {
	learner  *menace.Engine
	opponent player.Strategy
	observer func(b *game.Board)
}

type Option func(e *Engine)

// WithObserver registers a callback invoked after every applied move, e.g.
// to render the board. The board must not be mutated through it.
func WithObserver(fn func(b *game.Board)) Option {
	return func(e *Engine) {
		e.observer = fn
	}
}

// Local wires a learner against an opponent strategy.
func Local(learner *menace.Engine, opponent player.Strategy, options ...Option) *Engine {
	if learner == nil {
		panic("need a learner")
	}
	if opponent == nil {
		panic("need an opponent strategy")
	}
	e := &Engine{learner: learner, opponent: opponent}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run plays one full game and applies the learning update. It returns the
// terminal result and the number of moves played; a board can hold at most 9
// moves, so the loop always terminates.
func (e *Engine) Run() (game.Result, int, error) {
	board := game.NewBoard()
	learnerTurn := true

	moves := 0
	for {
		var move game.Move
		var mark game.Cell
		if learnerTurn {
			chosen, err := e.learner.ChooseMove(board.Snapshot())
			if err != nil {
				return game.Ongoing, moves, err
			}
			move, mark = chosen, game.Cross
		} else {
			move, mark = e.opponent(board), game.Nought
		}

		if err := board.SetCell(move.Row, move.Col, mark); err != nil {
			return game.Ongoing, moves, err
		}
		moves++
		log.Debug().Msgf("move %d: %s plays %s", moves, mark, move)
		if e.observer != nil {
			e.observer(board)
		}

		if result := game.Evaluate(board); result.Terminal() {
			e.learner.Learn(menace.OutcomeOf(result))
			log.Debug().Msgf("game over after %d moves: %s", moves, result)
			return result, moves, nil
		}
		learnerTurn = !learnerTurn
	}
}
