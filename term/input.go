package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// Terminal cells are scaled to touch units so the swipe thresholds match a
// pointer on a board cell of roughly ten units.
const (
	TouchScaleX = 5
	TouchScaleY = 10
)

// InputSystem drains tcell events once per frame. Arrow keys and space go
// through the keyboard recognizer, button-1 drags through the touch
// recognizer, and the letter keys drive the lifecycle.
type InputSystem struct {
	Events <-chan tcell.Event

	// Quit is set once a quit key has been pressed.
	Quit bool
	// OnResize is called for terminal resize events.
	OnResize func()

	keyboard input.Keyboard
	touch    input.Touch
	pressed  bool
}

func NewInputSystem(events <-chan tcell.Event) *InputSystem {
	return &InputSystem{Events: events}
}

func (s *InputSystem) Execute(frame *loop.UpdateFrame) {
	target := frame.Target()
	for {
		select {
		case ev, ok := <-s.Events:
			if !ok || ev == nil {
				s.Quit = true
				return
			}
			s.handle(frame, target, ev)
		default:
			return
		}
	}
}

func (s *InputSystem) handle(frame *loop.UpdateFrame, target loop.Target, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		s.handleKey(frame, target, ev)
	case *tcell.EventMouse:
		s.handleMouse(target, ev)
	case *tcell.EventResize:
		if s.OnResize != nil {
			s.OnResize()
		}
	}
}

func (s *InputSystem) handleKey(frame *loop.UpdateFrame, target loop.Target, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		s.Quit = true
		return
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			s.Quit = true
			return
		case 's', 'S':
			frame.Commands.Dispatch(tetris.Action{Type: tetris.ActionStart})
			return
		case 'r', 'R':
			s.keyboard.Reset()
			frame.Commands.Dispatch(tetris.Action{Type: tetris.ActionRestart})
			return
		case '1', '2', '3':
			preset := tetris.Speeds[ev.Rune()-'1']
			frame.Commands.Dispatch(tetris.SpeedAction(preset.Speed))
			return
		}
	}

	s.keyboard.KeyDown(target, translateKey(ev), ev.When())
}

func translateKey(ev *tcell.EventKey) input.Key {
	switch ev.Key() {
	case tcell.KeyLeft:
		return input.KeyLeft
	case tcell.KeyRight:
		return input.KeyRight
	case tcell.KeyUp:
		return input.KeyUp
	case tcell.KeyDown:
		return input.KeyDown
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return input.KeySpace
		}
	}
	return input.KeyUnknown
}

func (s *InputSystem) handleMouse(target loop.Target, ev *tcell.EventMouse) {
	x, y := ev.Position()
	p := input.Point{X: float64(x * TouchScaleX), Y: float64(y * TouchScaleY)}
	down := ev.Buttons()&tcell.Button1 != 0

	switch {
	case down && !s.pressed:
		s.pressed = true
		s.touch.Start(p, ev.When())
	case down:
		s.touch.Move(target, p, ev.When())
	case s.pressed:
		s.pressed = false
		s.touch.End(target, p, ev.When())
	}
}
