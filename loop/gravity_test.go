package loop_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

func newGravity(t *testing.T) (*tetris.Engine, *loop.Scheduler, *loop.GravitySystem) {
	t.Helper()

	engine := tetris.New(tetris.WithSeed(1))
	scheduler := loop.NewScheduler(engine)
	gravity := &loop.GravitySystem{}
	scheduler.Register(gravity)
	return engine, scheduler, gravity
}

func TestGravityIdle(t *testing.T) {
	engine, scheduler, _ := newGravity(t)

	for range 10 {
		scheduler.Once(time.Second)
	}

	assert.Equal(t, tetris.SpawnPosition, engine.State().Position)
	assert.Zero(t, scheduler.GetStats().Actions)
}

func TestGravityCadence(t *testing.T) {
	engine, scheduler, gravity := newGravity(t)
	engine.Start()

	for range 5 {
		scheduler.Once(400 * time.Millisecond)
	}

	assert.Equal(t, 2, engine.State().Position.Y)
	assert.Equal(t, 0*time.Millisecond, gravity.Elapsed())

	scheduler.Once(999 * time.Millisecond)
	assert.Equal(t, 2, engine.State().Position.Y)

	scheduler.Once(time.Millisecond)
	assert.Equal(t, 3, engine.State().Position.Y)
}

func TestGravityLongFrameCatchesUp(t *testing.T) {
	engine, scheduler, _ := newGravity(t)
	engine.Start()
	engine.SetSpeed(tetris.SpeedInsane)

	scheduler.Once(time.Second)

	assert.Equal(t, 5, engine.State().Position.Y)
}

func TestGravitySpeedChangeResets(t *testing.T) {
	engine, scheduler, gravity := newGravity(t)
	engine.Start()

	scheduler.Once(800 * time.Millisecond)
	require.Equal(t, 800*time.Millisecond, gravity.Elapsed())

	engine.SetSpeed(tetris.SpeedFast)
	scheduler.Once(400 * time.Millisecond)
	assert.Equal(t, 0, engine.State().Position.Y, "accumulator restarted on speed change")
	assert.Equal(t, 400*time.Millisecond, gravity.Elapsed())

	scheduler.Once(100 * time.Millisecond)
	assert.Equal(t, 1, engine.State().Position.Y)
}

func TestGravityRestartStops(t *testing.T) {
	engine, scheduler, gravity := newGravity(t)
	engine.Start()

	scheduler.Once(900 * time.Millisecond)
	engine.Restart()
	scheduler.Once(900 * time.Millisecond)

	assert.Zero(t, gravity.Elapsed())
	assert.Equal(t, tetris.SpawnPosition, engine.State().Position)

	engine.Start()
	scheduler.Once(900 * time.Millisecond)
	assert.Equal(t, 0, engine.State().Position.Y, "a new game starts a fresh interval")
}
