package loop

import (
	"time"

	"github.com/plus3/blockfall/tetris"
)

// UpdateFrame carries the frame time, the command buffer and the engine to every system.
type UpdateFrame struct {
	DeltaTime time.Duration
	Commands  *Commands
	Engine    *tetris.Engine
}

func newUpdateFrame(dt time.Duration, engine *tetris.Engine) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Engine:    engine,
	}
}

// Target routes recognized input into this frame's command buffer. It is
// active while the engine accepts input.
func (f *UpdateFrame) Target() Target {
	return Target{frame: f}
}

// Target satisfies input.Target for a single frame.
type Target struct {
	frame *UpdateFrame
}

func (t Target) Active() bool {
	return t.frame.Engine.Active()
}

func (t Target) Dispatch(a tetris.Action) {
	t.frame.Commands.Dispatch(a)
}
