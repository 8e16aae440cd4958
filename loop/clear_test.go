package loop_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// engineWithI finds a seed whose first piece is the I tetromino.
func engineWithI(t *testing.T, board tetris.Board) *tetris.Engine {
	t.Helper()

	for seed := int64(1); seed < 1000; seed++ {
		e := tetris.New(tetris.WithSeed(seed), tetris.WithBoard(board))
		if e.State().Current.Kind == tetris.KindI {
			return e
		}
	}
	t.Fatal("no seed produced an I piece")
	return nil
}

func TestClearSystem(t *testing.T) {
	board, err := tetris.ParseBoard(`
JJJ....TTT
`)
	require.NoError(t, err)

	engine := engineWithI(t, board)
	scheduler := loop.NewScheduler(engine)
	scheduler.Register(&loop.ClearSystem{})

	engine.Start()
	engine.InstantDrop()
	require.Equal(t, tetris.Height-1, engine.State().Position.Y)

	scheduler.Register(loop.SystemFunc(func(frame *loop.UpdateFrame) {
		if frame.Engine.Phase() == tetris.PhasePlaying && frame.Engine.State().Position.Y == tetris.Height-1 {
			frame.Commands.Dispatch(tetris.Action{Type: tetris.ActionMoveDown})
		}
	}))

	scheduler.Once(100 * time.Millisecond)
	snap := engine.State()
	require.Equal(t, tetris.PhaseClearing, snap.Phase)
	assert.Equal(t, []int{tetris.Height - 1}, snap.ClearedLines)
	assert.Equal(t, tetris.DefaultClearDelay, snap.ClearRemaining, "a clear is not advanced by the frame that started it")

	scheduler.Once(300 * time.Millisecond)
	snap = engine.State()
	assert.Equal(t, tetris.PhaseClearing, snap.Phase)
	assert.Equal(t, 200*time.Millisecond, snap.ClearRemaining)
	assert.Zero(t, snap.Score)

	scheduler.Once(200 * time.Millisecond)
	snap = engine.State()
	assert.Equal(t, tetris.PhasePlaying, snap.Phase)
	assert.Equal(t, tetris.LinePoints, snap.Score)
	assert.True(t, snap.Board.Empty())
	assert.Empty(t, snap.ClearedLines)
}

func TestClearSystemIdle(t *testing.T) {
	engine := tetris.New(tetris.WithSeed(1))
	scheduler := loop.NewScheduler(engine)
	scheduler.Register(&loop.ClearSystem{})

	scheduler.Once(time.Second)

	assert.Equal(t, tetris.PhaseIdle, engine.Phase())
}
