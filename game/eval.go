package game

// Result classifies a board from the learner's perspective.
type Result int

const (
	Ongoing Result = iota
	LearnerWon
	OpponentWon
	Draw
)

func (r Result) String() string {
	switch r {
	case LearnerWon:
		return "learner wins"
	case OpponentWon:
		return "opponent wins"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}

// Terminal reports whether the result ends the game.
func (r Result) Terminal() bool {
	return r != Ongoing
}

// lines enumerates the 3 rows, 3 columns and 2 diagonals as square triples.
var lines = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Evaluate classifies the board. A uniform Cross line wins for the learner,
// a uniform Nought line for the opponent. Wins are checked before draw, so a
// full board that contains a winning line reports the win.
func Evaluate(b *Board) Result {
	for _, line := range lines {
		first := b.Cell(line[0].Row, line[0].Col)
		if first == Empty {
			continue
		}
		if b.Cell(line[1].Row, line[1].Col) != first || b.Cell(line[2].Row, line[2].Col) != first {
			continue
		}
		if first == Cross {
			return LearnerWon
		}
		return OpponentWon
	}
	if b.Full() {
		return Draw
	}
	return Ongoing
}
