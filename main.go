package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"menace/display"
	"menace/engine"
	"menace/experiments"
	"menace/game"
	"menace/menace"
	"menace/player"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

func main() {
	games := flag.Int("games", 1000, "Number of training games")
	beads := flag.Int("beads", menace.DefaultInitialBeads, "Initial beads per legal move in a fresh matchbox")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Random seed")
	opponent := flag.String("opponent", "random", "Opponent strategy: random, first or blocking")
	records := flag.String("records", "", "Directory for CSV game records (disabled when empty)")
	show := flag.Bool("show", false, "Render one demonstration game after training")
	debug := flag.Bool("debug", false, "Log every move")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	learner, summary, err := experiments.RunTraining(experiments.Config{
		Games:        *games,
		InitialBeads: *beads,
		Seed:         *seed,
		Opponent:     *opponent,
		RecordsDir:   *records,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("training failed")
	}

	fmt.Printf("trained on %d games: %d wins, %d draws, %d losses (win rate %.1f%%), %d states learned\n",
		summary.Games, summary.Wins, summary.Draws, summary.Losses,
		summary.WinRate()*100, summary.States)

	if *show {
		if err := runDemo(learner, *opponent, *seed); err != nil {
			log.Fatal().Err(err).Msg("demonstration game failed")
		}
	}
}

// runDemo plays one more game with the trained learner, rendering the board
// after every move.
func runDemo(learner *menace.Engine, opponent string, seed uint64) error {
	rng := rand.New(rand.NewSource(seed + 1))
	var strategy player.Strategy
	switch opponent {
	case "first":
		strategy = player.FirstEmpty()
	case "blocking":
		strategy = player.Blocking(rng)
	default:
		strategy = player.Random(rng)
	}

	fmt.Println("\ndemonstration game:")
	loop := engine.Local(learner, strategy, engine.WithObserver(func(b *game.Board) {
		fmt.Println(display.Render(b))
		fmt.Println()
	}))

	result, moves, err := loop.Run()
	if err != nil {
		return err
	}
	fmt.Printf("%s after %d moves\n", result, moves)
	return nil
}
