package loop

import (
	"time"

	"github.com/plus3/blockfall/tetris"
)

// GravitySystem queues a MoveDown every GameSpeed while a game is running.
//
// There is a single accumulator. It restarts from zero whenever the speed, the
// playing flag or the game over flag changes, so a speed change never leaves a
// second cadence running.
type GravitySystem struct {
	elapsed time.Duration
	key     gravityKey
	primed  bool
}

type gravityKey struct {
	speed   time.Duration
	playing bool
	over    bool
}

func (s *GravitySystem) Execute(frame *UpdateFrame) {
	state := frame.Engine.State()
	key := gravityKey{
		speed:   state.GameSpeed,
		playing: state.IsPlaying,
		over:    state.GameOver,
	}

	if !s.primed || key != s.key {
		s.key = key
		s.primed = true
		s.elapsed = 0
	}

	if !key.playing || key.over || key.speed <= 0 {
		return
	}

	s.elapsed += frame.DeltaTime
	for s.elapsed >= key.speed {
		s.elapsed -= key.speed
		frame.Commands.Dispatch(tetris.Action{Type: tetris.ActionMoveDown})
	}
}

// Elapsed returns the time accumulated toward the next step.
func (s *GravitySystem) Elapsed() time.Duration {
	return s.elapsed
}

// ClearSystem advances the engine's line clear timer by the frame time. A clear
// that starts during this frame's flush is first advanced on the next frame.
type ClearSystem struct{}

func (s *ClearSystem) Execute(frame *UpdateFrame) {
	if frame.Engine.Phase() != tetris.PhaseClearing {
		return
	}

	dt := frame.DeltaTime
	frame.Commands.Defer(func() {
		frame.Engine.Advance(dt)
	})
}
