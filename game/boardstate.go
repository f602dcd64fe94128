package game

// BoardState is an immutable snapshot of the grid. It is a comparable value
// type: two snapshots with the same cell values are interchangeable map keys
// regardless of how they were produced.
type BoardState struct {
	grid [Size][Size]Cell
}

// NewBoardState copies an explicit grid into a snapshot, with the same shape
// and value validation as NewBoardFromGrid.
func NewBoardState(grid [][]Cell) (BoardState, error) {
	var s BoardState
	if err := copyGrid(&s.grid, grid); err != nil {
		return BoardState{}, err
	}
	return s, nil
}

// Cell returns the marking at (row, col).
func (s BoardState) Cell(row, col int) Cell {
	return s.grid[row][col]
}

// EmptyCells lists the squares still open in this snapshot, in row-major
// order.
func (s BoardState) EmptyCells() []Move {
	var moves []Move
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if s.grid[r][c] == Empty {
				moves = append(moves, Move{Row: r, Col: c})
			}
		}
	}
	return moves
}

func (s BoardState) String() string {
	return renderGrid(&s.grid)
}
