package game

// ObservationSize is 18 cells + current player + rolled die
const ObservationSize = Players*Columns*Rows + 2

// Observation is the numeric view of a board handed to learning agents.
type Observation [ObservationSize]float32

// Encode flattens the board player-major, then column, then row, and appends
// the current player and the die that still has to be placed.
func Encode(b *Board, rolled Die) Observation {
	var obs Observation
	i := 0
	for p := 0; p < Players; p++ {
		for c := 0; c < Columns; c++ {
			for r := 0; r < Rows; r++ {
				obs[i] = float32(b.Cells[p][c][r])
				i++
			}
		}
	}
	obs[i] = float32(b.CurrentPlayer)
	obs[i+1] = float32(rolled)
	return obs
}

// Reward is sparse: zero until the game is done, then WIN, LOSS or DRAW for player.
func Reward(b *Board, player int) float64 {
	if !b.Done {
		return DRAW
	}

	switch b.Winner() {
	case player:
		return WIN
	case Tie:
		return DRAW
	default:
		return LOSS
	}
}
