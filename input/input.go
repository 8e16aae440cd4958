// Package input turns device events into game actions.
//
// The recognizers are frontend neutral: callers translate their key codes and
// pointer coordinates into Key and Point values and pass explicit timestamps,
// so gesture timing can be tested without a clock.
package input

import "github.com/plus3/blockfall/tetris"

// Target receives recognized actions. Recognizers stay silent while Active
// reports false.
type Target interface {
	tetris.Dispatcher
	Active() bool
}

// Key is a frontend neutral key identifier.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeySpace
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "ArrowLeft"
	case KeyRight:
		return "ArrowRight"
	case KeyUp:
		return "ArrowUp"
	case KeyDown:
		return "ArrowDown"
	case KeySpace:
		return "Space"
	default:
		return "Unknown"
	}
}

// Point is a pointer position in frontend units (pixels, or scaled terminal cells).
type Point struct {
	X, Y float64
}

func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Manhattan is |X|+|Y|.
func (p Point) Manhattan() float64 {
	return abs(p.X) + abs(p.Y)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
