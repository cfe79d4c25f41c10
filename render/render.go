// Package render prints boards for humans. It only reads game state.
package render

import (
	"fmt"
	"io"
	"knucklebones/game"
	"strings"
)

// Board writes each player's grid with the top row first, followed by both
// scores.
func Board(w io.Writer, b *game.Board) error {
	var sb strings.Builder
	for p := 0; p < game.Players; p++ {
		fmt.Fprintf(&sb, "\nPlayer %d board:\n", p)
		for r := game.Rows - 1; r >= 0; r-- {
			cells := make([]string, game.Columns)
			for c := 0; c < game.Columns; c++ {
				cells[c] = fmt.Sprint(int(b.Cell(p, c, r)))
			}
			fmt.Fprintf(&sb, "[%s]\n", strings.Join(cells, ", "))
		}
	}
	fmt.Fprintf(&sb, "\nScores -> P0: %d | P1: %d\n", b.Score(0), b.Score(1))

	_, err := io.WriteString(w, sb.String())
	return err
}

// Winner formats the final result line.
func Winner(w io.Writer, winner int) error {
	result := "None"
	if winner != game.Tie {
		result = fmt.Sprint(winner)
	}
	_, err := fmt.Fprintf(w, "Winner: %s\n", result)
	return err
}
