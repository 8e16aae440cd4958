package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/kamstrup/intmap"

	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/render"
	"github.com/plus3/blockfall/tetris"
)

// arrowKeys auto-repeat while held.
var arrowKeys = []struct {
	key   ebiten.Key
	input input.Key
}{
	{ebiten.KeyArrowLeft, input.KeyLeft},
	{ebiten.KeyArrowRight, input.KeyRight},
	{ebiten.KeyArrowUp, input.KeyUp},
	{ebiten.KeyArrowDown, input.KeyDown},
}

var speedKeys = map[ebiten.Key]time.Duration{
	ebiten.KeyDigit1: tetris.SpeedNormal,
	ebiten.KeyDigit2: tetris.SpeedFast,
	ebiten.KeyDigit3: tetris.SpeedInsane,
}

// KeyboardSystem feeds key presses to the keyboard recognizer and handles the
// lifecycle keys.
type KeyboardSystem struct {
	Overlay Overlay
	Quit    bool

	keyboard input.Keyboard
	keys     []ebiten.Key
}

func (s *KeyboardSystem) Execute(frame *loop.UpdateFrame) {
	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		s.Overlay.Toggle()
	}
	if s.Overlay.WantsKeyboard() {
		return
	}

	now := time.Now()
	target := frame.Target()
	tick := time.Second / time.Duration(ebiten.TPS())

	for _, a := range arrowKeys {
		ticks := inpututil.KeyPressDuration(a.key)
		if ticks == 0 {
			continue
		}
		if ticks == 1 || input.Repeat(time.Duration(ticks-1)*tick, tick) {
			s.keyboard.KeyDown(target, a.input, now)
		}
	}

	for _, key := range s.keys {
		if d, ok := speedKeys[key]; ok {
			frame.Commands.Dispatch(tetris.SpeedAction(d))
			continue
		}

		switch key {
		case ebiten.KeySpace:
			s.keyboard.KeyDown(target, input.KeySpace, now)
		case ebiten.KeyEnter:
			frame.Commands.Dispatch(tetris.Action{Type: tetris.ActionStart})
		case ebiten.KeyR:
			s.keyboard.Reset()
			frame.Commands.Dispatch(tetris.Action{Type: tetris.ActionRestart})
		case ebiten.KeyEscape:
			s.Quit = true
		}
	}
}

// mouseID stands in for the mouse in the pointer table. Real touch IDs are
// non-negative.
const mouseID ebiten.TouchID = -1

type pointer struct {
	// board marks the pointer that drives the gesture recognizer.
	board bool
}

// PointerSystem handles touches and the left mouse button. The first pointer
// that lands on the board drives the gesture recognizer until it lifts; a
// pointer landing on a button presses it.
type PointerSystem struct {
	renderer *render.Renderer
	overlay  Overlay

	touch    input.Touch
	// last is the most recent board pointer position. Only changes reach the
	// recognizer, like browser touchmove events.
	last     input.Point
	pointers *intmap.Map[ebiten.TouchID, pointer]
	pressed  []ebiten.TouchID
}

func NewPointerSystem(renderer *render.Renderer, overlay Overlay) *PointerSystem {
	return &PointerSystem{
		renderer: renderer,
		overlay:  overlay,
		pointers: intmap.New[ebiten.TouchID, pointer](8),
	}
}

func (s *PointerSystem) Execute(frame *loop.UpdateFrame) {
	if s.overlay.WantsMouse() {
		if s.touch.Tracking() {
			s.touch.Cancel()
		}
		s.pointers.Clear()
		return
	}

	now := time.Now()
	target := frame.Target()

	s.pressed = inpututil.AppendJustPressedTouchIDs(s.pressed[:0])
	for _, id := range s.pressed {
		x, y := ebiten.TouchPosition(id)
		s.down(frame, id, x, y, now)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		s.down(frame, mouseID, x, y, now)
	}

	s.moveBoardPointer(target, now)

	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		s.up(target, id, x, y, now)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		s.up(target, mouseID, x, y, now)
	}
}

func (s *PointerSystem) down(frame *loop.UpdateFrame, id ebiten.TouchID, x, y int, now time.Time) {
	layout := s.renderer.Layout()
	snap := frame.Engine.State()

	if btn, ok := render.HitTest(render.Buttons(layout, &snap), x, y); ok {
		frame.Commands.Dispatch(btn.Action)
		s.pointers.Put(id, pointer{})
		return
	}

	p := pointer{board: !s.touch.Tracking() && layout.InBoard(x, y)}
	if p.board {
		s.last = point(x, y)
		s.touch.Start(s.last, now)
	}
	s.pointers.Put(id, p)
}

func (s *PointerSystem) moveBoardPointer(target loop.Target, now time.Time) {
	if !s.touch.Tracking() {
		return
	}

	if p, ok := s.pointers.Get(mouseID); ok && p.board && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		s.moveTo(target, point(x, y), now)
		return
	}

	for _, id := range ebiten.AppendTouchIDs(nil) {
		if p, ok := s.pointers.Get(id); ok && p.board {
			x, y := ebiten.TouchPosition(id)
			s.moveTo(target, point(x, y), now)
			return
		}
	}
}

func (s *PointerSystem) moveTo(target loop.Target, p input.Point, now time.Time) {
	if p == s.last {
		return
	}
	s.last = p
	s.touch.Move(target, p, now)
}

func (s *PointerSystem) up(target loop.Target, id ebiten.TouchID, x, y int, now time.Time) {
	p, ok := s.pointers.Get(id)
	if !ok {
		return
	}
	s.pointers.Del(id)

	if p.board {
		s.touch.End(target, point(x, y), now)
	}
}

func point(x, y int) input.Point {
	return input.Point{X: float64(x), Y: float64(y)}
}
