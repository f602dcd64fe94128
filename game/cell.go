package game

// Cell is the marking of one square on the board. The learner always plays
// Cross and the opponent always plays Nought.
type Cell uint8

const (
	Empty Cell = iota
	Nought
	Cross
)

// Valid reports whether c is one of the three defined markings.
func (c Cell) Valid() bool {
	return c <= Cross
}

func (c Cell) String() string {
	switch c {
	case Nought:
		return "O"
	case Cross:
		return "X"
	default:
		return " "
	}
}
