// Package experiments runs multi-game training sessions on one persistent
// learner and reports how its play develops.
package experiments

import (
	"fmt"
	"time"

	"menace/engine"
	"menace/experiments/metrics"
	"menace/menace"
	"menace/player"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// LogEvery is the tally logging interval, in games.
const LogEvery = 100

// Config describes one training run.
type Config struct {
	Games        int
	InitialBeads int
	Seed         uint64
	Opponent     string // "random", "first" or "blocking"
	RecordsDir   string // empty disables CSV output
}

func (c Config) opponent(rng *rand.Rand) (player.Strategy, error) {
	switch c.Opponent {
	case "", "random":
		return player.Random(rng), nil
	case "first":
		return player.FirstEmpty(), nil
	case "blocking":
		return player.Blocking(rng), nil
	default:
		return nil, fmt.Errorf("unknown opponent strategy %q", c.Opponent)
	}
}

// RunTraining plays cfg.Games consecutive games of a fresh learner against
// the configured opponent, returning the learner and the run summary. The
// learner keeps its matchbox table across games; that accumulation is the
// training.
func RunTraining(cfg Config) (*menace.Engine, metrics.Summary, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	learner := menace.New(
		menace.WithInitialBeads(cfg.InitialBeads),
		menace.WithRand(rng),
	)

	opponent, err := cfg.opponent(rng)
	if err != nil {
		return nil, metrics.Summary{}, err
	}

	loop := engine.Local(learner, opponent)
	collector := metrics.NewCollector()

	log.Info().Msgf("starting training run: %d games against %q opponent", cfg.Games, cfg.Opponent)

	for i := 1; i <= cfg.Games; i++ {
		start := time.Now()
		result, moves, err := loop.Run()
		if err != nil {
			return nil, metrics.Summary{}, fmt.Errorf("game %d failed: %w", i, err)
		}

		collector.Add(metrics.GameRecord{
			Game:     i,
			Result:   result,
			Moves:    moves,
			States:   learner.Boxes(),
			Duration: time.Since(start),
		})

		if i%LogEvery == 0 {
			tally := collector.Summarize()
			log.Info().Msgf("after %d games: %d wins, %d draws, %d losses, %d states learned",
				i, tally.Wins, tally.Draws, tally.Losses, tally.States)
		}
	}

	if cfg.RecordsDir != "" {
		writer, err := metrics.NewWriter(cfg.RecordsDir)
		if err != nil {
			return nil, metrics.Summary{}, err
		}
		if err := writer.WriteGameRecords(collector.Records()); err != nil {
			return nil, metrics.Summary{}, err
		}
		log.Info().Msgf("stored game records for run %s under %s", writer.RunID(), writer.Dir())
	}

	summary := collector.Summarize()
	log.Info().Msgf("finished training run: %d wins, %d draws, %d losses over %d games",
		summary.Wins, summary.Draws, summary.Losses, summary.Games)

	return learner, summary, nil
}
