package game

import (
	"strings"

	"github.com/pkg/errors"
)

// Size is the board's edge length.
const Size = 3

var (
	// ErrGridShape reports a grid that is not exactly 3x3.
	ErrGridShape = errors.New("grid must be 3x3")
	// ErrInvalidCell reports a value outside the Cell enumeration.
	ErrInvalidCell = errors.New("invalid cell value")
)

// Board is the mutable grid a single game is played out on. Lookups into the
// learner's memory always go through a frozen Snapshot, never the Board
// itself.
type Board struct {
	grid [Size][Size]Cell
}

// NewBoard returns an all-Empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewBoardFromGrid copies an explicit grid into a board. The grid must be
// exactly 3x3 and hold only defined Cell values.
func NewBoardFromGrid(grid [][]Cell) (*Board, error) {
	b := &Board{}
	if err := copyGrid(&b.grid, grid); err != nil {
		return nil, err
	}
	return b, nil
}

// Cell returns the marking at (row, col).
func (b *Board) Cell(row, col int) Cell {
	return b.grid[row][col]
}

// SetCell marks the square at (row, col).
func (b *Board) SetCell(row, col int, c Cell) error {
	if !c.Valid() {
		return errors.Wrapf(ErrInvalidCell, "cell value %d", c)
	}
	b.grid[row][col] = c
	return nil
}

// Snapshot freezes the current grid into a BoardState. The copy is deep:
// later board mutations do not affect the snapshot.
func (b *Board) Snapshot() BoardState {
	return BoardState{grid: b.grid}
}

// Full reports whether no Empty square remains.
func (b *Board) Full() bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.grid[r][c] == Empty {
				return false
			}
		}
	}
	return true
}

func (b *Board) String() string {
	return renderGrid(&b.grid)
}

func copyGrid(dst *[Size][Size]Cell, grid [][]Cell) error {
	if len(grid) != Size {
		return errors.Wrapf(ErrGridShape, "%d rows", len(grid))
	}
	for r, row := range grid {
		if len(row) != Size {
			return errors.Wrapf(ErrGridShape, "row %d has %d cells", r, len(row))
		}
		for c, cell := range row {
			if !cell.Valid() {
				return errors.Wrapf(ErrInvalidCell, "cell value %d at (%d,%d)", cell, r, c)
			}
			dst[r][c] = cell
		}
	}
	return nil
}

func renderGrid(grid *[Size][Size]Cell) string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		marks := make([]string, Size)
		for c := 0; c < Size; c++ {
			marks[c] = grid[r][c].String()
		}
		sb.WriteString(strings.Join(marks, " | "))
		if r < Size-1 {
			sb.WriteString("\n---------\n")
		}
	}
	return sb.String()
}
