package main

import (
	"flag"
	"fmt"
	"io"
	"knucklebones/agent"
	"knucklebones/config"
	"knucklebones/engine"
	"knucklebones/experiments"
	"knucklebones/random"
	"knucklebones/render"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file (environment only when empty)")
	mode := flag.String("mode", "play", "play: one narrated game, selfplay: a batch of recorded games")
	seed := flag.Uint64("seed", 0, "Seed for dice and agents, overrides the config (0 keeps it)")
	games := flag.Int("games", 0, "Number of self-play games, overrides the config")
	workers := flag.Int("workers", 0, "Number of games played in parallel, overrides the config")
	moves := flag.Bool("moves", false, "Also record every move of the self-play games")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	applyFlags(conf, *seed, *games, *workers, *moves)
	initLogger(conf)

	if conf.Seed == 0 {
		if conf.Seed, err = random.NewSeed(); err != nil {
			log.Fatal().Err(err).Msg("failed to draw a seed")
		}
	}

	switch *mode {
	case "play":
		err = runPlay(os.Stdout, conf)
	case "selfplay":
		err = runSelfPlay(conf)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Error().Err(err).Msgf("%s failed", *mode)
		os.Exit(1)
	}
}

func applyFlags(conf *config.Config, seed uint64, games, workers int, moves bool) {
	if seed != 0 {
		conf.Seed = seed
	}
	if games > 0 {
		conf.SelfPlay.Games = games
	}
	if workers > 0 {
		conf.SelfPlay.Workers = workers
	}
	if moves {
		conf.SelfPlay.RecordMoves = true
	}
}

func initLogger(conf *config.Config) {
	level, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

// runPlay narrates a single random-vs-random game on w.
func runPlay(w io.Writer, conf *config.Config) error {
	log.Info().Msgf("playing one game with seed %d", conf.Seed)

	src := random.New(conf.Seed)
	agents := []agent.Agent{agent.NewRandomAgent(src), agent.NewRandomAgent(src)}

	var renderErr error
	narrate := func(u engine.Update) {
		fmt.Fprintf(w, "\n=== TURN %d ===\n", u.Turn)
		fmt.Fprintf(w, "Current Player: %d\n", u.Player)
		if u.Skipped {
			fmt.Fprintln(w, "No valid moves. Skipping turn.")
			return
		}
		fmt.Fprintf(w, "Rolled Die: %d\n", u.Die)
		fmt.Fprintf(w, "Chosen Column: %d\n", u.Column)
		if err := render.Board(w, u.State); err != nil && renderErr == nil {
			renderErr = err
		}
	}

	e := engine.LocalEngine(agents, src, engine.WithMaxTurns(conf.MaxTurns), engine.WithObserver(narrate))
	winner, _, _, err := e.Run()
	if err != nil {
		return err
	}
	if renderErr != nil {
		return fmt.Errorf("failed to render board: %w", renderErr)
	}

	fmt.Fprintln(w, "\n=== GAME OVER ===")
	if err := render.Board(w, e.Board); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}
	return render.Winner(w, winner)
}

func runSelfPlay(conf *config.Config) error {
	cfg := experiments.Config{
		Games:       conf.SelfPlay.Games,
		Goroutines:  conf.SelfPlay.Workers,
		Seed:        conf.Seed,
		MaxTurns:    conf.MaxTurns,
		RecordMoves: conf.SelfPlay.RecordMoves,
	}

	result, dir, err := experiments.RunAndStore(cfg, conf.SelfPlay.OutputDir)
	if err != nil {
		return err
	}

	s := result.Summary
	log.Info().
		Int("games", s.Games).
		Ints("wins", s.Wins[:]).
		Int("ties", s.Ties).
		Int("unfinished", s.Unfinished).
		Float64("meanScore0", s.MeanScores[0]).
		Float64("meanScore1", s.MeanScores[1]).
		Float64("meanMoves", s.MeanMoves).
		Int("captures", s.Captures).
		Str("dir", dir).
		Msg("self-play finished")
	return nil
}
