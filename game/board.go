package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// Die is a face value 1-6, or Empty for a free cell.
type Die int

const Empty Die = 0

// Valid reports whether d is a rollable face.
func (d Die) Valid() bool {
	return d >= MinFace && d <= MaxFace
}

// Board represents the state of a game at any point: both grids, whose turn it
// is and whether the game has ended.
type Board struct {
	Cells         [Players][Columns][Rows]Die // Indexed by player, column, row (row 0 fills first)
	CurrentPlayer int                         // The player to act, 0 or 1
	Done          bool                        // Set once the player who just moved filled their grid
}

// NewBoard returns an empty board with player 0 to act.
func NewBoard() *Board {
	return &Board{}
}

// Reset empties every cell and starts a new game with player 0 to act.
func (b *Board) Reset() {
	b.Cells = [Players][Columns][Rows]Die{}
	b.CurrentPlayer = 0
	b.Done = false
}

func (b *Board) Cell(player, column, row int) Die {
	return b.Cells[player][column][row]
}

func (b *Board) Column(player, column int) [Rows]Die {
	return b.Cells[player][column]
}

// NextPlayer returns the opponent of the current player.
func (b *Board) NextPlayer() int {
	return 1 - b.CurrentPlayer
}

// Copy of the Board. Cells are an array so the copy shares nothing.
func (b Board) Copy() *Board {
	return &b
}

// Player returns the identifier of the current player.
func (b *Board) Player() string {
	return PlayerName(b.CurrentPlayer)
}

func (b *Board) Hash() StateHash {
	hasher := fnv.New64a()

	// Hash current player
	binary.Write(hasher, binary.LittleEndian, int64(b.CurrentPlayer))

	// Hash done flag
	binary.Write(hasher, binary.LittleEndian, b.Done)

	// Hash cells
	for p := range b.Cells {
		for c := range b.Cells[p] {
			for _, d := range b.Cells[p][c] {
				binary.Write(hasher, binary.LittleEndian, int8(d))
			}
		}
	}

	return StateHash(hasher.Sum64())
}

// PlayerName formats a player index, or Tie, for logs and records.
func PlayerName(player int) string {
	if player == Tie {
		return "tie"
	}
	return fmt.Sprintf("Player%d", player)
}
