package gamemaster

import (
	"knucklebones/game"
	"knucklebones/random"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalEngineInit(t *testing.T) {
	engine := NewLocalEngine(random.New(1))
	obs := engine.Init()

	gs := engine.State()
	require.Equal(t, 0, gs.CurrentPlayer, "Player 0 should start")
	require.False(t, gs.Done)

	require.True(t, engine.Pending().Valid(), "A die should be rolled for the first move")
	require.Equal(t, float32(engine.Pending()), obs[game.ObservationSize-1], "Observation should carry the pending die")
	require.Equal(t, []int{0, 1, 2}, engine.ValidMoves())
}

func TestLocalEnginePlay_BeforeInit(t *testing.T) {
	engine := NewLocalEngine(random.New(1))

	_, err := engine.Play(0)

	require.ErrorIs(t, err, ErrNotStarted)
}

func TestLocalEnginePlay_ValidMove(t *testing.T) {
	engine := NewLocalEngine(random.New(2))
	engine.Init()
	die := engine.Pending()

	step, err := engine.Play(1)

	require.NoError(t, err)
	gs := engine.State()
	require.Equal(t, [game.Rows]game.Die{die, 0, 0}, gs.Column(0, 1), "Pending die should be placed in row 0")
	require.Equal(t, 1, step.Player, "Turn should pass to player 1")
	require.Equal(t, 1, gs.CurrentPlayer)
	require.False(t, step.Done)
	require.Equal(t, game.DRAW, step.Reward, "No reward before the end")
	require.True(t, step.Die.Valid(), "Next player gets a fresh die")
	require.Equal(t, game.Encode(gs, step.Die), step.Observation)
}

func TestLocalEnginePlay_IllegalMove(t *testing.T) {
	engine := NewLocalEngine(random.New(3))
	engine.Init()
	die := engine.Pending()
	before := engine.State()

	_, err := engine.Play(3)

	require.ErrorIs(t, err, game.ErrInvalidColumn)
	require.Equal(t, before, engine.State(), "Board should be untouched")
	require.Equal(t, die, engine.Pending(), "Die should still be pending for a retry")
}

func TestLocalEnginePlay_GameOver(t *testing.T) {
	engine := NewLocalEngine(random.New(4))
	engine.Init()

	// Player 0 needs one more die to fill the grid
	for c := 0; c < game.Columns; c++ {
		engine.board.Cells[0][c] = [game.Rows]game.Die{6, 6, 6}
	}
	engine.board.Cells[0][2][2] = game.Empty
	engine.pending = 6

	step, err := engine.Play(2)

	require.NoError(t, err)
	require.True(t, step.Done, "Filling the grid ends the game")
	require.Equal(t, game.WIN, step.Reward, "Player 0 outscores an empty grid")
	require.Equal(t, game.Empty, step.Die, "No die after the end")
	require.Empty(t, engine.ValidMoves())

	// Now if we try to play another move, it should return "game is over"
	_, err = engine.Play(0)
	require.ErrorIs(t, err, ErrGameOver)
	require.Equal(t, "game is over - no moves allowed", err.Error())
}

func TestLocalEnginePlay_SkipsBlockedPlayer(t *testing.T) {
	engine := NewLocalEngine(random.New(5))
	engine.Init()

	// Player 1 has no open column but the game is not over
	for c := 0; c < game.Columns; c++ {
		engine.board.Cells[1][c] = [game.Rows]game.Die{1, 1, 1}
	}
	engine.pending = 2

	step, err := engine.Play(0)

	require.NoError(t, err)
	require.False(t, step.Done)
	require.Equal(t, 0, step.Player, "Player 1 should be skipped")
}

func TestLocalEngine_FullEpisode(t *testing.T) {
	engine := NewLocalEngine(random.New(6))
	engine.Init()
	picker := random.New(60)

	var step Step
	for turns := 0; !step.Done; turns++ {
		require.Less(t, turns, 300, "Episode should terminate")
		var err error
		step, err = engine.Play(picker.Pick(engine.ValidMoves()))
		require.NoError(t, err)
	}

	gs := engine.State()
	require.True(t, gs.Done)
	require.Contains(t, []float64{game.WIN, game.LOSS, game.DRAW}, step.Reward)
}

func TestLocalEngine_IdenticalInitStates(t *testing.T) {
	// Same seed, same first observation
	obs1 := NewLocalEngine(random.New(8)).Init()
	obs2 := NewLocalEngine(random.New(8)).Init()

	require.Equal(t, obs1, obs2, "expected the same initial observation")
}
