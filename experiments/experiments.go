package experiments

import (
	"fmt"
	"knucklebones/agent"
	"knucklebones/engine"
	"knucklebones/experiments/metrics"
	"knucklebones/meta"
	"knucklebones/random"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	Games       int    `json:"games"`
	Goroutines  int    `json:"goroutines"`
	Seed        uint64 `json:"seed"` // Game i is seeded with Seed+i
	MaxTurns    int    `json:"maxTurns"`
	RecordMoves bool   `json:"recordMoves"`
}

type Setup struct {
	Config
	StartTime time.Time     `json:"startTime"`
	EndTime   time.Time     `json:"endTime"`
	Duration  time.Duration `json:"duration"`
	Summary   Summary       `json:"summary"`
}

type Summary struct {
	Games      int        `json:"games"`
	Wins       [2]int     `json:"wins"` // Indexed by player
	Ties       int        `json:"ties"`
	Unfinished int        `json:"unfinished"`
	MeanScores [2]float64 `json:"meanScores"`
	MeanMoves  float64    `json:"meanMoves"`
	Skips      int        `json:"skips"`
	Captures   int        `json:"captures"`
}

type Result struct {
	Summary     Summary
	GameRecords []metrics.GameRecord
	MoveRecords []metrics.MoveRecord
}

// Run plays cfg.Games random-vs-random games, up to cfg.Goroutines at a time.
// Every game owns its board, dice and agents, so results only depend on the seed.
func Run(cfg Config) (Result, error) {
	if cfg.Games <= 0 {
		cfg.Games = meta.GAMES
	}
	if cfg.Goroutines <= 0 {
		cfg.Goroutines = meta.GO_ROUTINES
	}
	if cfg.MaxTurns <= 0 {
		cfg.MaxTurns = meta.MAX_TURNS
	}

	log.Info().Msgf("starting self-play of %d games on %d goroutines with seed %d...", cfg.Games, cfg.Goroutines, cfg.Seed)

	gameRecords := make([]metrics.GameRecord, cfg.Games)
	moveMetrics := make([][]metrics.MoveMetric, cfg.Games)

	var g errgroup.Group
	g.SetLimit(cfg.Goroutines)
	for i := 0; i < cfg.Games; i++ {
		i := i
		g.Go(func() error {
			seed := cfg.Seed + uint64(i)
			_, gameMetric, moves, err := runGame(seed, cfg.MaxTurns)
			if err != nil {
				return fmt.Errorf("game %d (seed %d): %w", i+1, seed, err)
			}
			gameRecords[i] = metrics.GameRecord{ID: i + 1, Seed: seed, GameMetric: gameMetric}
			if cfg.RecordMoves {
				moveMetrics[i] = moves
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	moveRecords := []metrics.MoveRecord{}
	for i, moves := range moveMetrics {
		for _, mm := range moves {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: i + 1, MoveMetric: mm})
		}
	}

	summary := Summarize(gameRecords)
	log.Info().Msgf("completed self-play: wins=%v ties=%d unfinished=%d mean scores=%.1f/%.1f mean moves=%.1f",
		summary.Wins, summary.Ties, summary.Unfinished, summary.MeanScores[0], summary.MeanScores[1], summary.MeanMoves)

	return Result{Summary: summary, GameRecords: gameRecords, MoveRecords: moveRecords}, nil
}

// RunAndStore runs the batch and writes setup.json, game_records.csv and,
// when moves are recorded, move_records.csv under <root>/selfplay/<timestamp>.
func RunAndStore(cfg Config, root string) (Result, string, error) {
	start := time.Now()
	result, err := Run(cfg)
	if err != nil {
		return Result{}, "", err
	}
	end := time.Now()

	writer, err := metrics.NewWriter(root, "selfplay")
	if err != nil {
		return result, "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	setup := Setup{Config: cfg, StartTime: start, EndTime: end, Duration: end.Sub(start), Summary: result.Summary}
	if err := writer.WriteSetup(setup); err != nil {
		return result, "", fmt.Errorf("failed to store setup: %w", err)
	}
	log.Info().Msg("stored setup")

	if err := writer.WriteGameRecords(result.GameRecords); err != nil {
		return result, "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if cfg.RecordMoves {
		if err := writer.WriteMoveRecords(result.MoveRecords); err != nil {
			return result, "", fmt.Errorf("failed to write move records: %w", err)
		}
		log.Info().Msg("stored move records")
	}

	return result, writer.Dir(), nil
}

// Summarize aggregates finished and unfinished games alike; ties and wins only
// count finished games.
func Summarize(records []metrics.GameRecord) Summary {
	s := Summary{Games: len(records)}
	if len(records) == 0 {
		return s
	}

	var scores [2]int
	moves := 0
	for _, r := range records {
		scores[0] += r.Scores[0]
		scores[1] += r.Scores[1]
		moves += r.TotalMoves
		s.Skips += r.Skips
		s.Captures += r.Captures

		switch {
		case !r.Finished:
			s.Unfinished++
		case r.Winner == 0 || r.Winner == 1:
			s.Wins[r.Winner]++
		default:
			s.Ties++
		}
	}

	n := float64(len(records))
	s.MeanScores = [2]float64{float64(scores[0]) / n, float64(scores[1]) / n}
	s.MeanMoves = float64(moves) / n
	return s
}

// runGame executes a single seeded game between two random agents
func runGame(seed uint64, maxTurns int) (int, metrics.GameMetric, []metrics.MoveMetric, error) {
	src := random.New(seed)
	agents := []agent.Agent{
		agent.NewRandomAgent(src),
		agent.NewRandomAgent(src),
	}
	e := engine.LocalEngine(agents, src, engine.WithMaxTurns(maxTurns), engine.WithMetrics())

	return e.Run()
}
