package agent

import (
	"errors"
	"knucklebones/game"
)

var ErrNoLegalMoves = errors.New("no legal moves")

type Agent interface {
	// FindMove returns the column where the current player places the rolled die
	FindMove(board *game.Board, rolled game.Die) (int, error)
}
