package gamemaster

import (
	"errors"
	"fmt"
	"knucklebones/game"
	"knucklebones/random"

	"github.com/rs/zerolog/log"
)

var (
	ErrGameOver   = errors.New("game is over - no moves allowed")
	ErrNotStarted = errors.New("game is not started - call Init first")
)

// Engine runs a single game for an external agent, one placement at a time.
type Engine interface {
	Init() game.Observation
	Play(column int) (Step, error)
}

// Step is what the agent sees after a placement.
type Step struct {
	Observation game.Observation // From the point of view of the next player to act
	Reward      float64          // For the player who just placed
	Done        bool
	Player      int      // Next player to act
	Die         game.Die // Die the next player must place, Empty once done
}

type LocalEngine struct {
	board    *game.Board
	dice     random.Source
	pending  game.Die
	gameOver bool
}

func NewLocalEngine(dice random.Source) *LocalEngine {
	if dice == nil {
		panic("need a dice source")
	}
	return &LocalEngine{board: game.NewBoard(), dice: dice}
}

// Init resets the board and rolls the first die.
func (e *LocalEngine) Init() game.Observation {
	e.board.Reset()
	e.gameOver = false
	e.pending = e.dice.RollDie()
	return game.Encode(e.board, e.pending)
}

// Play places the pending die in column for the current player. A rejected
// column returns the rule error and keeps both the board and the pending die.
func (e *LocalEngine) Play(column int) (Step, error) {
	if e.gameOver {
		return Step{}, ErrGameOver
	}
	if e.pending == game.Empty {
		return Step{}, ErrNotStarted
	}

	actor := e.board.CurrentPlayer
	if err := e.board.ApplyMove(actor, column, e.pending); err != nil {
		return Step{}, fmt.Errorf("illegal move: %w", err)
	}

	e.advance()

	if e.board.Done {
		e.gameOver = true
		e.pending = game.Empty
		log.Debug().Msgf("game over, winner: %s", game.PlayerName(e.board.Winner()))
	} else {
		e.pending = e.dice.RollDie()
	}

	return Step{
		Observation: game.Encode(e.board, e.pending),
		Reward:      game.Reward(e.board, actor),
		Done:        e.board.Done,
		Player:      e.board.CurrentPlayer,
		Die:         e.pending,
	}, nil
}

// advance hands the turn over, skipping a player without open columns.
func (e *LocalEngine) advance() {
	for i := 0; i < game.Players; i++ {
		e.board.CurrentPlayer = e.board.NextPlayer()
		if e.board.Done || len(e.board.ValidMoves(e.board.CurrentPlayer)) > 0 {
			return
		}
		log.Debug().Msgf("%s has no valid moves, skipping turn", e.board.Player())
	}
}

// State returns a copy of the board.
func (e *LocalEngine) State() *game.Board {
	return e.board.Copy()
}

// Pending returns the die the current player must place.
func (e *LocalEngine) Pending() game.Die {
	return e.pending
}

// ValidMoves lists the columns the current player may choose.
func (e *LocalEngine) ValidMoves() []int {
	if e.gameOver {
		return []int{}
	}
	return e.board.ValidMoves(e.board.CurrentPlayer)
}
