// Package metrics records per-game training data and writes it out as CSV.
package metrics

import (
	"time"

	"menace/game"
)

// GameRecord captures one finished training game.
type GameRecord struct {
	Game     int // 1-based index within the run
	Result   game.Result
	Moves    int
	States   int // size of the learner's matchbox table after the game
	Duration time.Duration
}

// Summary tallies a whole training run.
type Summary struct {
	Games  int
	Wins   int
	Draws  int
	Losses int
	States int
}

// WinRate returns the fraction of games won.
func (s Summary) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

// Collector accumulates game records for one training run.
type Collector struct {
	records []GameRecord
}

func NewCollector() *Collector {
	return &Collector{}
}

// Add appends one game's record.
func (c *Collector) Add(record GameRecord) {
	c.records = append(c.records, record)
}

// Records returns everything collected so far, in game order.
func (c *Collector) Records() []GameRecord {
	return c.records
}

// Summarize tallies the collected records.
func (c *Collector) Summarize() Summary {
	s := Summary{Games: len(c.records)}
	for _, r := range c.records {
		switch r.Result {
		case game.LearnerWon:
			s.Wins++
		case game.OpponentWon:
			s.Losses++
		case game.Draw:
			s.Draws++
		}
		s.States = r.States
	}
	return s
}
