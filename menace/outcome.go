package menace

import "menace/game"

// Outcome is the learning signal for one finished game, from the learner's
// perspective. The numeric values are the bead-count deltas applied to every
// move played.
type Outcome int

const (
	Loss Outcome = -1
	Draw Outcome = 0
	Win  Outcome = 1
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Loss:
		return "loss"
	default:
		return "draw"
	}
}

// OutcomeOf translates a terminal game result into the learner's signal.
// Ongoing maps to Draw since it carries no signal.
func OutcomeOf(r game.Result) Outcome {
	switch r {
	case game.LearnerWon:
		return Win
	case game.OpponentWon:
		return Loss
	default:
		return Draw
	}
}
