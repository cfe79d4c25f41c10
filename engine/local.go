package engine

import (
	"fmt"
	"knucklebones/agent"
	"knucklebones/experiments/metrics"
	"knucklebones/game"
	"knucklebones/meta"
	"knucklebones/random"
	"knucklebones/utils"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	Board  *game.Board
	Agents []agent.Agent // Indexed by player
	Dice   random.Source

	maxTurns  int
	metrics   metrics.Collector
	observers []Observer
}

// LocalEngine sets up a fresh board for two agents sharing one dice source.
func LocalEngine(agents []agent.Agent, dice random.Source, options ...Option) *Engine {
	if len(agents) != game.Players {
		panic("need exactly two agents")
	}
	if dice == nil {
		panic("need a dice source")
	}

	e := &Engine{
		Board:    game.NewBoard(),
		Agents:   agents,
		Dice:     dice,
		maxTurns: meta.MAX_TURNS,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the entire game loop until the board is done.
func (e *Engine) Run() (int, metrics.GameMetric, []metrics.MoveMetric, error) {
	e.metrics.Start(e.Board.CurrentPlayer)

	log.Debug().Msgf("%s is starting", e.Board.Player())

	turn := 1
	for !e.Board.Done && turn <= e.maxTurns {
		u, err := e.playTurn(turn)
		if err != nil {
			return game.Tie, metrics.GameMetric{}, nil, fmt.Errorf("turn %d: %w", turn, err)
		}

		scores := u.State.Scores()
		e.metrics.AddMove(metrics.MoveMetric{
			Step:     turn,
			Player:   u.Player,
			Die:      int(u.Die),
			Column:   u.Column,
			Captured: u.Captured,
			Skipped:  u.Skipped,
			Scores:   scores,
		})
		for _, observe := range e.observers {
			observe(u)
		}
		turn++
	}

	finished := e.Board.Done
	winner := e.Board.Winner()
	if finished {
		log.Debug().Msgf("game over after %d turns, winner: %s", turn-1, game.PlayerName(winner))
	} else {
		log.Warn().Msgf("stopped after %d turns (no winner yet)", e.maxTurns)
	}

	gameMetric := e.metrics.Complete(winner, finished, e.Board.Scores())
	return winner, gameMetric, e.metrics.Moves(), nil
}

// playTurn lets the current player roll and place a die, or skips them when
// their grid has no open column.
func (e *Engine) playTurn(turn int) (Update, error) {
	b := e.Board
	player := b.CurrentPlayer

	moves := b.ValidMoves(player)
	if len(moves) == 0 {
		log.Debug().Msgf("turn %d: %s has no valid moves, skipping turn", turn, b.Player())
		b.CurrentPlayer = b.NextPlayer()
		return Update{
			Turn:    turn,
			Player:  player,
			Column:  -1,
			Skipped: true,
			State:   b.Copy(),
			Hash:    b.Hash(),
		}, nil
	}

	rolled := e.Dice.RollDie()
	column, err := e.Agents[player].FindMove(b, rolled)
	if err != nil {
		return Update{}, fmt.Errorf("%s failed to find a move: %w", b.Player(), err)
	}
	if utils.FindIndex(moves, column) < 0 {
		return Update{}, fmt.Errorf("%w: %s chose column %d, legal columns %v", ErrIllegalMove, b.Player(), column, moves)
	}

	opponent := 1 - player
	before := b.Count(opponent, column, rolled)
	if err := b.ApplyMove(player, column, rolled); err != nil {
		return Update{}, err
	}
	captured := before - b.Count(opponent, column, rolled)

	log.Debug().Msgf("turn %d: %s rolled %d into column %d, captured %d", turn, b.Player(), rolled, column, captured)

	b.CurrentPlayer = b.NextPlayer()

	return Update{
		Turn:     turn,
		Player:   player,
		Die:      rolled,
		Column:   column,
		Captured: captured,
		State:    b.Copy(),
		Hash:     b.Hash(),
	}, nil
}
