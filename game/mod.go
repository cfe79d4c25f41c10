package game

// Board dimensions and die faces
const (
	Players = 2
	Columns = 3
	Rows    = 3

	MinFace = 1
	MaxFace = 6
)

// Tie is reported by Winner when both players have the same score
const Tie = -1

type StateHash uint64

// Rewards for a finished game, from the perspective of the rewarded player
const WIN = 1.0
const LOSS = -WIN // Negate from opponent perspective
const DRAW = 0.0
