package input

import (
	"time"

	"github.com/plus3/blockfall/tetris"
)

// DoublePressWindow is the gap under which a second ArrowDown becomes an instant drop.
const DoublePressWindow = 200 * time.Millisecond

// Keyboard maps key presses to actions. ArrowDown is overloaded: a press that
// follows the previous ArrowDown within DoublePressWindow drops the piece.
type Keyboard struct {
	lastDown time.Time
}

// KeyDown handles one key press and reports whether the key is mapped, in which
// case the frontend should suppress its default behavior. Nothing happens while
// the target is inactive.
func (k *Keyboard) KeyDown(target Target, key Key, now time.Time) bool {
	if !target.Active() {
		return false
	}

	switch key {
	case KeyLeft:
		target.Dispatch(tetris.Action{Type: tetris.ActionMoveLeft})
	case KeyRight:
		target.Dispatch(tetris.Action{Type: tetris.ActionMoveRight})
	case KeyUp:
		target.Dispatch(tetris.Action{Type: tetris.ActionRotate})
	case KeySpace:
		target.Dispatch(tetris.Action{Type: tetris.ActionInstantDrop})
	case KeyDown:
		if !k.lastDown.IsZero() && now.Sub(k.lastDown) < DoublePressWindow {
			target.Dispatch(tetris.Action{Type: tetris.ActionInstantDrop})
		} else {
			target.Dispatch(tetris.Action{Type: tetris.ActionMoveDown})
		}
		k.lastDown = now
	default:
		return false
	}

	return true
}

// Reset forgets the previous ArrowDown.
func (k *Keyboard) Reset() {
	k.lastDown = time.Time{}
}
