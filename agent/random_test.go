package agent

import (
	"knucklebones/game"
	"knucklebones/random"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomAgentFindMove(t *testing.T) {
	t.Run("chooses only legal columns", func(t *testing.T) {
		board := game.NewBoard()
		board.Cells[0][0] = [game.Rows]game.Die{1, 2, 3}
		board.Cells[0][2] = [game.Rows]game.Die{4, 5, 6}
		a := NewRandomAgent(random.New(5))

		for i := 0; i < 20; i++ {
			column, err := a.FindMove(board, 3)
			require.NoError(t, err)
			require.Equal(t, 1, column, "Column 1 is the only open column")
		}
	})

	t.Run("plays for the current player", func(t *testing.T) {
		board := game.NewBoard()
		board.Cells[1][0] = [game.Rows]game.Die{1, 1, 1}
		board.Cells[1][1] = [game.Rows]game.Die{2, 2, 2}
		board.CurrentPlayer = 1
		a := NewRandomAgent(random.New(9))

		column, err := a.FindMove(board, 6)

		require.NoError(t, err)
		require.Equal(t, 2, column, "Player 1 has only column 2 left")
	})

	t.Run("covers every legal column", func(t *testing.T) {
		board := game.NewBoard()
		a := NewRandomAgent(random.New(11))
		seen := map[int]bool{}

		for i := 0; i < 100; i++ {
			column, err := a.FindMove(board, 1)
			require.NoError(t, err)
			seen[column] = true
		}

		require.Len(t, seen, game.Columns, "Uniform choice should reach all columns")
	})

	t.Run("same seed gives the same choices", func(t *testing.T) {
		board := game.NewBoard()
		a1 := NewRandomAgent(random.New(21))
		a2 := NewRandomAgent(random.New(21))

		for i := 0; i < 20; i++ {
			c1, err1 := a1.FindMove(board, 2)
			c2, err2 := a2.FindMove(board, 2)
			require.NoError(t, err1)
			require.NoError(t, err2)
			require.Equal(t, c1, c2)
		}
	})

	t.Run("full grid returns ErrNoLegalMoves", func(t *testing.T) {
		board := game.NewBoard()
		for c := 0; c < game.Columns; c++ {
			board.Cells[0][c] = [game.Rows]game.Die{6, 6, 6}
		}
		a := NewRandomAgent(random.New(1))

		_, err := a.FindMove(board, 4)

		require.ErrorIs(t, err, ErrNoLegalMoves)
	})
}
