package engine

import (
	"errors"
	"knucklebones/experiments/metrics"
	"knucklebones/game"
)

var ErrIllegalMove = errors.New("illegal move")

type Runner interface {
	// Run plays a game until a player fills their grid or the turn limit is reached
	Run() (winner int, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}

// Update describes one turn, after it was played.
type Update struct {
	Turn     int
	Player   int // The player who acted or skipped
	Die      game.Die
	Column   int // -1 when skipped
	Skipped  bool
	Captured int
	State    *game.Board // Copy of the board after the turn
	Hash     game.StateHash
}

// Observer is called after every turn, in turn order.
type Observer func(Update)

type Option func(e *Engine)

func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func WithMetrics() Option {
	return func(e *Engine) {
		e.metrics = metrics.NewCollector()
	}
}

func WithObserver(observer Observer) Option {
	return func(e *Engine) {
		if observer != nil {
			e.observers = append(e.observers, observer)
		}
	}
}
