// Package player supplies opponent strategies for the game loop. A strategy
// is trusted to return a move whose square is empty; the loop does not
// validate it.
package player

import (
	"menace/game"

	"golang.org/x/exp/rand"
)

// Strategy picks the opponent's next move for the current board.
type Strategy func(b *game.Board) game.Move

// FirstEmpty marks the first open square in row-major order. Deterministic,
// mainly useful in tests.
func FirstEmpty() Strategy {
	return func(b *game.Board) game.Move {
		return b.Snapshot().EmptyCells()[0]
	}
}

// Random marks a uniformly random open square.
func Random(rng *rand.Rand) Strategy {
	return func(b *game.Board) game.Move {
		open := b.Snapshot().EmptyCells()
		return open[rng.Intn(len(open))]
	}
}

// Blocking completes its own line when it can, otherwise blocks an imminent
// learner win, otherwise plays randomly. A tougher trainer than Random.
func Blocking(rng *rand.Rand) Strategy {
	random := Random(rng)
	return func(b *game.Board) game.Move {
		if move, ok := winningSquare(b, game.Nought, game.OpponentWon); ok {
			return move
		}
		if move, ok := winningSquare(b, game.Cross, game.LearnerWon); ok {
			return move
		}
		return random(b)
	}
}

// winningSquare tries mark on each open square and reports the first one
// that yields want. The board is restored after each trial.
func winningSquare(b *game.Board, mark game.Cell, want game.Result) (game.Move, bool) {
	for _, move := range b.Snapshot().EmptyCells() {
		_ = b.SetCell(move.Row, move.Col, mark)
		result := game.Evaluate(b)
		_ = b.SetCell(move.Row, move.Col, game.Empty)
		if result == want {
			return move, true
		}
	}
	return game.Move{}, false
}
