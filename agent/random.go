package agent

import (
	"fmt"
	"knucklebones/game"
	"knucklebones/random"
)

type randomAgent struct {
	src random.Source
}

// NewRandomAgent returns the baseline agent: a uniformly random legal column,
// ignoring the rolled die.
func NewRandomAgent(src random.Source) Agent {
	return randomAgent{src: src}
}

func (a randomAgent) FindMove(board *game.Board, rolled game.Die) (int, error) {
	moves := board.ValidMoves(board.CurrentPlayer)
	if len(moves) == 0 {
		// The driver skips the turn before asking
		return 0, fmt.Errorf("%w for %s", ErrNoLegalMoves, board.Player())
	}
	return a.src.Pick(moves), nil
}
