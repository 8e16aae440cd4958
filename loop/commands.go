package loop

import "github.com/plus3/blockfall/tetris"

// Commands buffers engine actions and deferred functions for the end of a
// frame. Systems read a stable engine state while the frame runs.
type Commands struct {
	actions []tetris.Action
	defers  []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Dispatch queues an action.
func (c *Commands) Dispatch(a tetris.Action) {
	c.actions = append(c.actions, a)
}

// Defer queues a function execution operation.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued actions.
func (c *Commands) Len() int {
	return len(c.actions)
}

// Flush applies queued actions to the engine in order, then runs deferred
// functions, reseting the buffer state.
func (c *Commands) Flush(engine *tetris.Engine) {
	for _, a := range c.actions {
		engine.Dispatch(a)
	}

	for _, fn := range c.defers {
		fn()
	}

	c.actions = c.actions[:0]
	c.defers = c.defers[:0]
}
