package player

import (
	"testing"

	"menace/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func testBoard(t *testing.T, grid [][]game.Cell) *game.Board {
	t.Helper()
	b, err := game.NewBoardFromGrid(grid)
	require.NoError(t, err)
	return b
}

func TestFirstEmpty(t *testing.T) {
	t.Run("picking the first open square in row-major order", func(t *testing.T) {
		b := testBoard(t, [][]game.Cell{
			{game.Cross, game.Nought, game.Cross},
			{game.Nought, game.Empty, game.Empty},
			{game.Empty, game.Empty, game.Empty},
		})

		require.Equal(t, game.Move{Row: 1, Col: 1}, FirstEmpty()(b))
	})
}

func TestRandom(t *testing.T) {
	t.Run("always picking an open square", func(t *testing.T) {
		strategy := Random(rand.New(rand.NewSource(7)))
		b := testBoard(t, [][]game.Cell{
			{game.Cross, game.Nought, game.Cross},
			{game.Nought, game.Empty, game.Cross},
			{game.Empty, game.Cross, game.Nought},
		})

		for i := 0; i < 100; i++ {
			move := strategy(b)
			require.Equal(t, game.Empty, b.Cell(move.Row, move.Col), "Strategy must honor the legal-move contract")
		}
	})
}

func TestBlocking(t *testing.T) {
	t.Run("completing its own line first", func(t *testing.T) {
		// Nought can win at (0,2); Cross also threatens at (2,0).
		b := testBoard(t, [][]game.Cell{
			{game.Nought, game.Nought, game.Empty},
			{game.Cross, game.Cross, game.Empty},
			{game.Empty, game.Empty, game.Empty},
		})

		move := Blocking(rand.New(rand.NewSource(7)))(b)

		require.Equal(t, game.Move{Row: 0, Col: 2}, move, "Winning beats blocking")
		require.Equal(t, game.Empty, b.Cell(0, 2), "Trial moves must be undone")
	})

	t.Run("blocking an imminent learner win", func(t *testing.T) {
		b := testBoard(t, [][]game.Cell{
			{game.Cross, game.Cross, game.Empty},
			{game.Nought, game.Empty, game.Empty},
			{game.Empty, game.Empty, game.Empty},
		})

		move := Blocking(rand.New(rand.NewSource(7)))(b)

		require.Equal(t, game.Move{Row: 0, Col: 2}, move)
	})

	t.Run("falling back to a random open square", func(t *testing.T) {
		b := testBoard(t, [][]game.Cell{
			{game.Cross, game.Empty, game.Empty},
			{game.Empty, game.Nought, game.Empty},
			{game.Empty, game.Empty, game.Empty},
		})

		move := Blocking(rand.New(rand.NewSource(7)))(b)

		require.Equal(t, game.Empty, b.Cell(move.Row, move.Col))
	})
}
