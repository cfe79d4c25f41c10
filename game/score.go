package game

// ColumnScore sums value*count*count over each distinct face in the column.
func ColumnScore(column [Rows]Die) int {
	var tally [MaxFace + 1]int
	for _, d := range column {
		if d.Valid() {
			tally[d]++
		}
	}

	score := 0
	for face := MinFace; face <= MaxFace; face++ {
		k := tally[face]
		score += face * k * k
	}
	return score
}

// Score returns the player's total over their three columns.
func (b *Board) Score(player int) int {
	total := 0
	for c := 0; c < Columns; c++ {
		total += ColumnScore(b.Cells[player][c])
	}
	return total
}

// Scores returns both players' totals, indexed by player.
func (b *Board) Scores() [Players]int {
	return [Players]int{b.Score(0), b.Score(1)}
}

// Winner returns the player with the strictly higher score, or Tie. Only final
// once Done is set.
func (b *Board) Winner() int {
	s0, s1 := b.Score(0), b.Score(1)
	switch {
	case s0 > s1:
		return 0
	case s1 > s0:
		return 1
	default:
		return Tie
	}
}
