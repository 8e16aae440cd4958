// Package render draws a tetris.Snapshot with ebiten and lays out the
// on-screen controls.
package render

import (
	"image"

	"github.com/plus3/blockfall/tetris"
)

const (
	margin       = 16
	panelCells   = 6
	minCellSize  = 8
	buttonHeight = 28
	buttonGap    = 6
	lineHeight   = 16
)

// Layout positions the board and the side panel inside a screen.
type Layout struct {
	CellSize int
	Board    image.Rectangle
	Panel    image.Rectangle
}

// NewLayout fits the board and panel into a w×h screen, centered.
func NewLayout(w, h int) Layout {
	cell := min((h-2*margin)/tetris.Height, (w-3*margin)/(tetris.Width+panelCells))
	cell = max(cell, minCellSize)

	boardW := tetris.Width * cell
	boardH := tetris.Height * cell
	panelW := panelCells * cell

	x := max((w-(boardW+margin+panelW))/2, 0)
	y := max((h-boardH)/2, 0)

	return Layout{
		CellSize: cell,
		Board:    image.Rect(x, y, x+boardW, y+boardH),
		Panel:    image.Rect(x+boardW+margin, y, x+boardW+margin+panelW, y+boardH),
	}
}

// Cell returns the screen rectangle of board cell (x, y).
func (l Layout) Cell(x, y int) image.Rectangle {
	origin := l.Board.Min.Add(image.Pt(x*l.CellSize, y*l.CellSize))
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(l.CellSize, l.CellSize))}
}

// CellAt maps a screen point to a board cell.
func (l Layout) CellAt(x, y int) (tetris.Position, bool) {
	if !image.Pt(x, y).In(l.Board) {
		return tetris.Position{}, false
	}
	return tetris.Position{
		X: (x - l.Board.Min.X) / l.CellSize,
		Y: (y - l.Board.Min.Y) / l.CellSize,
	}, true
}

// InBoard reports whether a screen point lies over the board.
func (l Layout) InBoard(x, y int) bool {
	return image.Pt(x, y).In(l.Board)
}

// preview is the area holding the next piece.
func (l Layout) preview() image.Rectangle {
	top := l.Panel.Min.Y + lineHeight
	return image.Rect(l.Panel.Min.X, top, l.Panel.Max.X, top+4*l.CellSize)
}

// textTop is where the score block starts.
func (l Layout) textTop() int {
	return l.preview().Max.Y + margin
}

func (l Layout) buttonsTop() int {
	return l.textTop() + 4*lineHeight + margin
}
