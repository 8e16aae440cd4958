package render

import (
	"image"

	"github.com/plus3/blockfall/tetris"
)

// Button is an on-screen control that dispatches an action when tapped.
type Button struct {
	Label    string
	Action   tetris.Action
	Rect     image.Rectangle
	Selected bool
}

// Buttons lists the controls visible for a snapshot. Start is offered while
// idle and Restart otherwise. The speed presets are always available and the
// active one is marked selected.
func Buttons(l Layout, snap *tetris.Snapshot) []Button {
	x0, x1 := l.Panel.Min.X, l.Panel.Max.X
	y := l.buttonsTop()

	next := func() image.Rectangle {
		r := image.Rect(x0, y, x1, y+buttonHeight)
		y += buttonHeight + buttonGap
		return r
	}

	buttons := make([]Button, 0, 1+len(tetris.Speeds))
	if snap.Phase == tetris.PhaseIdle {
		buttons = append(buttons, Button{
			Label:  "Start",
			Action: tetris.Action{Type: tetris.ActionStart},
			Rect:   next(),
		})
	} else {
		buttons = append(buttons, Button{
			Label:  "Restart",
			Action: tetris.Action{Type: tetris.ActionRestart},
			Rect:   next(),
		})
	}

	y += buttonGap
	for _, p := range tetris.Speeds {
		buttons = append(buttons, Button{
			Label:    p.Name,
			Action:   tetris.SpeedAction(p.Speed),
			Rect:     next(),
			Selected: snap.GameSpeed == p.Speed,
		})
	}

	return buttons
}

// HitTest returns the button under a screen point.
func HitTest(buttons []Button, x, y int) (Button, bool) {
	p := image.Pt(x, y)
	for _, b := range buttons {
		if p.In(b.Rect) {
			return b, true
		}
	}
	return Button{}, false
}
