package tetris

import (
	"fmt"
	"time"
)

// ActionType enumerates the operations accepted by Engine.Dispatch.
type ActionType uint8

const (
	ActionStart ActionType = iota
	ActionRestart
	ActionSetSpeed
	ActionMoveLeft
	ActionMoveRight
	ActionMoveDown
	ActionRotate
	ActionInstantDrop
)

var actionNames = [...]string{
	ActionStart:       "start",
	ActionRestart:     "restart",
	ActionSetSpeed:    "set_speed",
	ActionMoveLeft:    "move_left",
	ActionMoveRight:   "move_right",
	ActionMoveDown:    "move_down",
	ActionRotate:      "rotate",
	ActionInstantDrop: "instant_drop",
}

func (t ActionType) String() string {
	if int(t) < len(actionNames) {
		return actionNames[t]
	}
	return fmt.Sprintf("action(%d)", uint8(t))
}

// Action is a message applied to the game state by Engine.Dispatch.
// Speed is only read for ActionSetSpeed.
type Action struct {
	Type  ActionType
	Speed time.Duration
}

func (a Action) String() string {
	if a.Type == ActionSetSpeed {
		return fmt.Sprintf("%s(%s)", a.Type, a.Speed)
	}
	return a.Type.String()
}

// Movement reports whether the action moves or turns the active piece.
func (a Action) Movement() bool {
	switch a.Type {
	case ActionMoveLeft, ActionMoveRight, ActionMoveDown, ActionRotate, ActionInstantDrop:
		return true
	}
	return false
}

// SpeedAction builds an ActionSetSpeed for d.
func SpeedAction(d time.Duration) Action {
	return Action{Type: ActionSetSpeed, Speed: d}
}

// Dispatcher accepts actions. Engine applies them immediately; the loop
// package buffers them until the end of a frame.
type Dispatcher interface {
	Dispatch(a Action)
}
