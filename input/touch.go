package input

import (
	"time"

	"github.com/plus3/blockfall/tetris"
)

const (
	// SwipeThreshold is the |dx|+|dy| travel after which a touch becomes a swipe.
	SwipeThreshold = 10
	// StepThreshold is the travel along the dominant axis that triggers one move.
	StepThreshold = 20
	// QuickWindow separates a fast downward flick (instant drop) from a slow
	// one (single step), and bounds the duration of a tap.
	QuickWindow = 200 * time.Millisecond
)

// Touch recognizes swipes and taps from a single pointer.
//
// Once the pointer travels past SwipeThreshold the gesture is a swipe for the
// rest of its life. From then on every sample becomes the new reference point,
// so step thresholds and the quick window apply to the travel since the
// previous sample. A short, still touch is a tap and rotates the piece.
type Touch struct {
	ref      Point
	refAt    time.Time
	tracking bool
	swiping  bool
}

// Start records the beginning of a gesture.
func (t *Touch) Start(p Point, now time.Time) {
	t.ref = p
	t.refAt = now
	t.tracking = true
	t.swiping = false
}

// Move feeds an intermediate sample.
func (t *Touch) Move(target Target, p Point, now time.Time) {
	if !t.tracking || !target.Active() {
		return
	}

	d := p.Sub(t.ref)
	if !t.swiping && d.Manhattan() > SwipeThreshold {
		t.swiping = true
	}
	if !t.swiping {
		return
	}

	switch {
	case abs(d.X) > abs(d.Y) && d.X > StepThreshold:
		target.Dispatch(tetris.Action{Type: tetris.ActionMoveRight})
	case abs(d.X) > abs(d.Y) && d.X < -StepThreshold:
		target.Dispatch(tetris.Action{Type: tetris.ActionMoveLeft})
	case abs(d.X) <= abs(d.Y) && d.Y > StepThreshold:
		if now.Sub(t.refAt) < QuickWindow {
			target.Dispatch(tetris.Action{Type: tetris.ActionInstantDrop})
		} else {
			target.Dispatch(tetris.Action{Type: tetris.ActionMoveDown})
		}
	}

	t.ref = p
	t.refAt = now
}

// End finishes the gesture, rotating the piece if it was a tap.
func (t *Touch) End(target Target, p Point, now time.Time) {
	wasTap := t.tracking && !t.swiping &&
		now.Sub(t.refAt) < QuickWindow &&
		p.Sub(t.ref).Manhattan() < SwipeThreshold

	t.tracking = false
	t.swiping = false

	if wasTap && target.Active() {
		target.Dispatch(tetris.Action{Type: tetris.ActionRotate})
	}
}

// Cancel drops the gesture without firing anything.
func (t *Touch) Cancel() {
	t.tracking = false
	t.swiping = false
}

// Tracking reports whether a gesture is in progress.
func (t *Touch) Tracking() bool {
	return t.tracking
}

// Swiping reports whether the gesture in progress has become a swipe.
func (t *Touch) Swiping() bool {
	return t.swiping
}
