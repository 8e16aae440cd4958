package input_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/tetris"
)

type recorder struct {
	active  bool
	actions []tetris.ActionType
}

func (r *recorder) Active() bool { return r.active }

func (r *recorder) Dispatch(a tetris.Action) {
	r.actions = append(r.actions, a.Type)
}

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return t0.Add(time.Duration(ms) * time.Millisecond)
}

func TestKeyboardMapping(t *testing.T) {
	tests := []struct {
		key  input.Key
		want tetris.ActionType
	}{
		{input.KeyLeft, tetris.ActionMoveLeft},
		{input.KeyRight, tetris.ActionMoveRight},
		{input.KeyUp, tetris.ActionRotate},
		{input.KeyDown, tetris.ActionMoveDown},
		{input.KeySpace, tetris.ActionInstantDrop},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			var kb input.Keyboard
			r := &recorder{active: true}

			handled := kb.KeyDown(r, tt.key, t0)

			assert.True(t, handled)
			assert.Equal(t, []tetris.ActionType{tt.want}, r.actions)
		})
	}
}

func TestKeyboardUnmappedKey(t *testing.T) {
	var kb input.Keyboard
	r := &recorder{active: true}

	assert.False(t, kb.KeyDown(r, input.KeyUnknown, t0))
	assert.Empty(t, r.actions)
}

func TestKeyboardDoubleArrowDown(t *testing.T) {
	var kb input.Keyboard
	r := &recorder{active: true}

	kb.KeyDown(r, input.KeyDown, at(0))
	kb.KeyDown(r, input.KeyDown, at(150))
	kb.KeyDown(r, input.KeyDown, at(400))
	kb.KeyDown(r, input.KeyDown, at(599))
	kb.KeyDown(r, input.KeyDown, at(799))

	assert.Equal(t, []tetris.ActionType{
		tetris.ActionMoveDown,
		tetris.ActionInstantDrop,
		tetris.ActionMoveDown,
		tetris.ActionInstantDrop,
		tetris.ActionMoveDown,
	}, r.actions)
}

func TestKeyboardDoublePressIgnoresOtherKeys(t *testing.T) {
	var kb input.Keyboard
	r := &recorder{active: true}

	kb.KeyDown(r, input.KeyDown, at(0))
	kb.KeyDown(r, input.KeyLeft, at(50))
	kb.KeyDown(r, input.KeyDown, at(100))

	assert.Equal(t, []tetris.ActionType{
		tetris.ActionMoveDown,
		tetris.ActionMoveLeft,
		tetris.ActionInstantDrop,
	}, r.actions)
}

func TestKeyboardInactive(t *testing.T) {
	var kb input.Keyboard
	r := &recorder{active: false}

	for _, k := range []input.Key{input.KeyLeft, input.KeyRight, input.KeyUp, input.KeyDown, input.KeySpace} {
		assert.False(t, kb.KeyDown(r, k, t0))
	}
	assert.Empty(t, r.actions)

	r.active = true
	kb.KeyDown(r, input.KeyDown, at(100))
	assert.Equal(t, []tetris.ActionType{tetris.ActionMoveDown}, r.actions, "ignored presses do not arm the double press")
}

func TestTouchTap(t *testing.T) {
	var touch input.Touch
	r := &recorder{active: true}

	touch.Start(input.Point{X: 100, Y: 100}, at(0))
	touch.Move(r, input.Point{X: 103, Y: 102}, at(50))
	touch.End(r, input.Point{X: 104, Y: 103}, at(120))

	assert.Equal(t, []tetris.ActionType{tetris.ActionRotate}, r.actions)
	assert.False(t, touch.Tracking())
}

func TestTouchSlowTapIsIgnored(t *testing.T) {
	var touch input.Touch
	r := &recorder{active: true}

	touch.Start(input.Point{X: 100, Y: 100}, at(0))
	touch.End(r, input.Point{X: 100, Y: 100}, at(200))

	assert.Empty(t, r.actions)
}

func TestTouchSwipeHorizontal(t *testing.T) {
	var touch input.Touch
	r := &recorder{active: true}

	touch.Start(input.Point{X: 0, Y: 0}, at(0))
	touch.Move(r, input.Point{X: 12, Y: 0}, at(10))
	assert.True(t, touch.Swiping())
	assert.Empty(t, r.actions, "past the swipe threshold but not a full step")

	touch.Move(r, input.Point{X: 35, Y: 0}, at(20))
	touch.Move(r, input.Point{X: 60, Y: 3}, at(30))
	touch.Move(r, input.Point{X: 62, Y: 3}, at(40))
	touch.Move(r, input.Point{X: 40, Y: 3}, at(50))

	assert.Equal(t, []tetris.ActionType{
		tetris.ActionMoveRight,
		tetris.ActionMoveRight,
		tetris.ActionMoveLeft,
	}, r.actions)

	touch.End(r, input.Point{X: 40, Y: 3}, at(60))
	assert.Len(t, r.actions, 3, "a swipe never ends in a tap")
}

func TestTouchEverySwipeSampleMovesReference(t *testing.T) {
	t.Run("flick measured from the previous sample", func(t *testing.T) {
		var touch input.Touch
		r := &recorder{active: true}

		touch.Start(input.Point{X: 0, Y: 0}, at(0))
		touch.Move(r, input.Point{X: 0, Y: 15}, at(150))
		touch.Move(r, input.Point{X: 0, Y: 40}, at(250))

		assert.Equal(t, []tetris.ActionType{tetris.ActionInstantDrop}, r.actions)
	})

	t.Run("small steps never add up", func(t *testing.T) {
		var touch input.Touch
		r := &recorder{active: true}

		touch.Start(input.Point{X: 0, Y: 0}, at(0))
		touch.Move(r, input.Point{X: 12, Y: 0}, at(10))
		touch.Move(r, input.Point{X: 25, Y: 0}, at(20))
		touch.Move(r, input.Point{X: 38, Y: 0}, at(30))

		assert.Empty(t, r.actions)
	})
}

func TestTouchSwipeDown(t *testing.T) {
	var touch input.Touch
	r := &recorder{active: true}

	touch.Start(input.Point{X: 0, Y: 0}, at(0))
	touch.Move(r, input.Point{X: 0, Y: 30}, at(100))
	touch.Move(r, input.Point{X: 2, Y: 55}, at(400))

	assert.Equal(t, []tetris.ActionType{
		tetris.ActionInstantDrop,
		tetris.ActionMoveDown,
	}, r.actions)
}

func TestTouchSwipeUpDoesNothing(t *testing.T) {
	var touch input.Touch
	r := &recorder{active: true}

	touch.Start(input.Point{X: 0, Y: 100}, at(0))
	touch.Move(r, input.Point{X: 0, Y: 40}, at(300))
	touch.End(r, input.Point{X: 0, Y: 40}, at(350))

	assert.Empty(t, r.actions)
}

func TestTouchStaysSwipeAfterReturning(t *testing.T) {
	var touch input.Touch
	r := &recorder{active: true}

	touch.Start(input.Point{X: 0, Y: 0}, at(0))
	touch.Move(r, input.Point{X: 8, Y: 8}, at(10))
	touch.Move(r, input.Point{X: 0, Y: 0}, at(20))
	touch.End(r, input.Point{X: 0, Y: 0}, at(30))

	assert.Empty(t, r.actions)
}

func TestTouchInactive(t *testing.T) {
	var touch input.Touch
	r := &recorder{active: false}

	touch.Start(input.Point{X: 0, Y: 0}, at(0))
	touch.Move(r, input.Point{X: 50, Y: 0}, at(300))
	touch.End(r, input.Point{X: 0, Y: 0}, at(350))

	touch.Start(input.Point{X: 0, Y: 0}, at(400))
	touch.End(r, input.Point{X: 0, Y: 0}, at(450))

	assert.Empty(t, r.actions)
}

func TestTouchMoveWithoutStart(t *testing.T) {
	var touch input.Touch
	r := &recorder{active: true}

	touch.Move(r, input.Point{X: 100, Y: 0}, at(0))
	touch.End(r, input.Point{X: 0, Y: 0}, at(10))

	assert.Empty(t, r.actions)
}
