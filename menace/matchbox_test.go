package menace

import (
	"testing"

	"menace/game"

	"github.com/stretchr/testify/require"
)

func mustState(t *testing.T, grid [][]game.Cell) game.BoardState {
	t.Helper()
	s, err := game.NewBoardState(grid)
	require.NoError(t, err)
	return s
}

func TestNewBead(t *testing.T) {
	t.Run("wrapping a legal move", func(t *testing.T) {
		b, err := NewBead(game.Move{Row: 2, Col: 0})

		require.NoError(t, err)
		require.Equal(t, game.Move{Row: 2, Col: 0}, b.Move())
	})

	t.Run("rejecting an out-of-bounds move", func(t *testing.T) {
		_, err := NewBead(game.Move{Row: 3, Col: 0})

		require.ErrorIs(t, err, ErrInvalidMove)
	})

	t.Run("rejecting a negative coordinate", func(t *testing.T) {
		_, err := NewBead(game.Move{Row: 0, Col: -1})

		require.ErrorIs(t, err, ErrInvalidMove)
	})
}

func TestNewMatchbox(t *testing.T) {
	t.Run("seeding beads only for empty squares", func(t *testing.T) {
		state := mustState(t, [][]game.Cell{
			{game.Cross, game.Empty, game.Empty},
			{game.Empty, game.Nought, game.Empty},
			{game.Empty, game.Empty, game.Empty},
		})

		box := NewMatchbox(state, 3)

		require.Equal(t, 3*7, box.TotalBeads(), "Total should be count x empty squares")
		require.Equal(t, 3, box.BeadCount(game.Move{Row: 0, Col: 1}), "Each empty square should get the seed count")
		require.Equal(t, 0, box.BeadCount(game.Move{Row: 0, Col: 0}), "Occupied squares should get no beads")
		require.Equal(t, 0, box.BeadCount(game.Move{Row: 1, Col: 1}), "Occupied squares should get no beads")
	})

	t.Run("seeding a full board yields an empty box", func(t *testing.T) {
		state := mustState(t, [][]game.Cell{
			{game.Cross, game.Nought, game.Cross},
			{game.Nought, game.Cross, game.Nought},
			{game.Nought, game.Cross, game.Nought},
		})

		box := NewMatchbox(state, 5)

		require.Zero(t, box.TotalBeads())
	})
}

func TestMatchboxAddBeads(t *testing.T) {
	t.Run("adding beads to an empty square", func(t *testing.T) {
		box := NewMatchbox(game.BoardState{}, 2)
		move := game.Move{Row: 1, Col: 1}

		err := box.AddBeads(move, 3)

		require.NoError(t, err)
		require.Equal(t, 5, box.BeadCount(move), "Count should grow by exactly the added amount")
	})

	t.Run("rejecting an occupied square", func(t *testing.T) {
		state := mustState(t, [][]game.Cell{
			{game.Cross, game.Empty, game.Empty},
			{game.Empty, game.Empty, game.Empty},
			{game.Empty, game.Empty, game.Empty},
		})
		box := NewMatchbox(state, 2)
		before := box.TotalBeads()

		err := box.AddBeads(game.Move{Row: 0, Col: 0}, 1)

		require.ErrorIs(t, err, ErrIllegalMove)
		require.Equal(t, before, box.TotalBeads(), "A rejected add should leave counts unchanged")
	})

	t.Run("rejecting an out-of-bounds move", func(t *testing.T) {
		box := NewMatchbox(game.BoardState{}, 1)

		err := box.AddBeads(game.Move{Row: -1, Col: 0}, 1)

		require.ErrorIs(t, err, ErrIllegalMove)
	})
}

func TestMatchboxRemoveBeads(t *testing.T) {
	t.Run("removing part of a move's beads", func(t *testing.T) {
		box := NewMatchbox(game.BoardState{}, 4)
		move := game.Move{Row: 0, Col: 2}

		box.RemoveBeads(move, 3)

		require.Equal(t, 1, box.BeadCount(move))
		require.Equal(t, 4*9-3, box.TotalBeads(), "Other moves should keep their beads")
	})

	t.Run("removing more beads than exist clamps at zero", func(t *testing.T) {
		box := NewMatchbox(game.BoardState{}, 2)
		move := game.Move{Row: 2, Col: 2}

		box.RemoveBeads(move, 10)

		require.Zero(t, box.BeadCount(move), "Clamp should drain the move without error")
		require.Equal(t, 2*8, box.TotalBeads())
	})

	t.Run("removing from a drained move is a no-op", func(t *testing.T) {
		box := NewMatchbox(game.BoardState{}, 1)
		move := game.Move{Row: 1, Col: 0}
		box.RemoveBeads(move, 1)

		box.RemoveBeads(move, 1)

		require.Zero(t, box.BeadCount(move))
	})
}
