package metrics

import (
	"sync/atomic"
	"time"
)

type MoveMetric struct {
	Step     int
	Player   int  // Player index
	Die      int  // 0 when the turn was skipped
	Column   int  // -1 when the turn was skipped
	Captured int  // Opponent dice removed by this move
	Skipped  bool // No legal column, no roll
	Scores   [2]int
}

type GameMetric struct {
	StartingPlayer int // Player index
	Winner         int // Player index, -1 for a tie
	Finished       bool
	Scores         [2]int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Skips          int
	Captures       int
}

type Collector interface {
	Start(startingPlayer int)
	AddMove(move MoveMetric)
	Moves() []MoveMetric
	Complete(winner int, finished bool, scores [2]int) GameMetric
}

type collector struct {
	startingPlayer int
	startTime      time.Time
	moves          []MoveMetric
	played         atomic.Int32
	skips          atomic.Int32
	captures       atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(startingPlayer int) {
	m.startTime = time.Now()
	m.startingPlayer = startingPlayer
}

func (m *collector) AddMove(move MoveMetric) {
	m.moves = append(m.moves, move)
	if move.Skipped {
		m.skips.Add(1)
		return
	}
	m.played.Add(1)
	m.captures.Add(int32(move.Captured))
}

func (m *collector) Moves() []MoveMetric {
	return m.moves
}

func (m *collector) Complete(winner int, finished bool, scores [2]int) GameMetric {
	end := time.Now()
	return GameMetric{
		StartingPlayer: m.startingPlayer,
		Winner:         winner,
		Finished:       finished,
		Scores:         scores,
		StartTime:      m.startTime,
		EndTime:        end,
		Duration:       end.Sub(m.startTime),
		TotalMoves:     int(m.played.Load()),
		Skips:          int(m.skips.Load()),
		Captures:       int(m.captures.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(startingPlayer int) {}
func (m *dummyCollector) AddMove(move MoveMetric) {}
func (m *dummyCollector) Moves() []MoveMetric     { return nil }
func (m *dummyCollector) Complete(winner int, finished bool, scores [2]int) GameMetric {
	return GameMetric{Winner: winner, Finished: finished, Scores: scores}
}
