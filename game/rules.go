package game

import "fmt"

// ValidMoves returns, in ascending order, the columns where player still has an
// empty cell. An empty result means the player must skip the turn.
func (b *Board) ValidMoves(player int) []int {
	if !validPlayer(player) {
		return nil
	}
	moves := []int{}
	for c := 0; c < Columns; c++ {
		if b.emptyRow(player, c) >= 0 {
			moves = append(moves, c)
		}
	}
	return moves
}

// ApplyMove places value in the lowest empty row of the player's column, removes
// every die of the same value from the opponent's column, and ends the game if
// the player's grid is now full.
//
// Once the game is done ApplyMove does nothing and returns nil. An invalid
// player, column or die, or a full column, returns an error and leaves the
// board untouched.
func (b *Board) ApplyMove(player, column int, value Die) error {
	if b.Done {
		return nil
	}

	if !validPlayer(player) {
		return fmt.Errorf("%w: player %d", ErrInvalidPlayer, player)
	}
	if column < 0 || column >= Columns {
		return fmt.Errorf("%w: column %d", ErrInvalidColumn, column)
	}
	if !value.Valid() {
		return fmt.Errorf("%w: die %d", ErrInvalidDie, value)
	}
	row := b.emptyRow(player, column)
	if row < 0 {
		return fmt.Errorf("%w: player %d column %d", ErrColumnFull, player, column)
	}

	// Place the die
	b.Cells[player][column][row] = value

	// Remove matching dice from the opponent column
	opponent := 1 - player
	for r, d := range b.Cells[opponent][column] {
		if d == value {
			b.Cells[opponent][column][r] = Empty
		}
	}

	// Only the player who just moved can end the game
	if b.Filled(player) {
		b.Done = true
	}

	return nil
}

// Filled reports whether all nine cells of the player's grid hold a die.
func (b *Board) Filled(player int) bool {
	for c := 0; c < Columns; c++ {
		if b.emptyRow(player, c) >= 0 {
			return false
		}
	}
	return true
}

// Count returns how many dice of the given value sit in the player's column.
func (b *Board) Count(player, column int, value Die) int {
	count := 0
	for _, d := range b.Cells[player][column] {
		if d == value {
			count++
		}
	}
	return count
}

// emptyRow returns the first empty row scanning up from row 0, or -1.
func (b *Board) emptyRow(player, column int) int {
	for r, d := range b.Cells[player][column] {
		if d == Empty {
			return r
		}
	}
	return -1
}

func validPlayer(player int) bool {
	return player == 0 || player == 1
}
