package game

import "fmt"

// Move identifies one square by row and column, both in 0..2.
type Move struct {
	Row int
	Col int
}

// InBounds reports whether the move addresses a square on the 3x3 board.
func (m Move) InBounds() bool {
	return m.Row >= 0 && m.Row < Size && m.Col >= 0 && m.Col < Size
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}
