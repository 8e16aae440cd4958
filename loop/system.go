// Package loop drives a tetris.Engine frame by frame.
//
// A Scheduler owns an ordered list of Systems. Each frame it hands every system
// an UpdateFrame; systems read the engine and queue actions on the frame's
// Commands, which are flushed into the engine after the last system ran. Input
// recognizers, gravity and the line clear timer are all systems, so the engine
// only ever changes at one point per frame.
package loop

// System is a unit of per-frame behavior. Systems may keep their own state
// between frames.
type System interface {
	Execute(frame *UpdateFrame)
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(frame *UpdateFrame)

func (f SystemFunc) Execute(frame *UpdateFrame) {
	f(frame)
}
