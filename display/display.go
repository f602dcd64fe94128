// Package display renders boards for the terminal. Purely presentational;
// nothing in the learner consumes it.
package display

import (
	"strings"

	"menace/game"

	"github.com/muesli/termenv"
)

// Render returns the board as three mark rows with dividers, coloring the
// learner's crosses red and the opponent's noughts blue when the terminal
// supports it.
func Render(b *game.Board) string {
	var sb strings.Builder
	for r := 0; r < game.Size; r++ {
		marks := make([]string, game.Size)
		for c := 0; c < game.Size; c++ {
			marks[c] = mark(b.Cell(r, c))
		}
		sb.WriteString(strings.Join(marks, " | "))
		if r < game.Size-1 {
			sb.WriteString("\n---------\n")
		}
	}
	return sb.String()
}

func mark(c game.Cell) string {
	switch c {
	case game.Cross:
		return termenv.String(c.String()).Foreground(termenv.ANSIRed).String()
	case game.Nought:
		return termenv.String(c.String()).Foreground(termenv.ANSIBlue).String()
	default:
		return c.String()
	}
}
