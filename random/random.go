// Package random supplies the seedable randomness a game needs: die rolls and
// uniform choices among legal columns.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"knucklebones/game"

	"golang.org/x/exp/rand"
)

// Source is the only nondeterministic input of a game. Games running in
// parallel must each own their Source.
type Source interface {
	// RollDie returns a face uniformly in 1..6
	RollDie() game.Die
	// Pick returns one of columns uniformly; columns must not be empty
	Pick(columns []int) int
}

type source struct {
	rng *rand.Rand
}

// New returns a Source that replays the same sequence for the same seed.
func New(seed uint64) Source {
	return &source{rng: rand.New(rand.NewSource(seed))}
}

func (s *source) RollDie() game.Die {
	return game.Die(s.rng.Intn(game.MaxFace) + game.MinFace)
}

func (s *source) Pick(columns []int) int {
	if len(columns) == 0 {
		panic("cannot pick from an empty set of columns")
	}
	return columns[s.rng.Intn(len(columns))]
}

// NewSeed draws a seed from crypto/rand for runs that should not repeat.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return binary.LittleEndian.Uint64(b[:]), nil
}
