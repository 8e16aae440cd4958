// Package term is the terminal frontend: a tcell view of the game, an input
// system that feeds key and mouse events to the recognizers, and a beep chime
// for line clears.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/tetris"
)

// Board geometry in terminal cells. Each board cell is two columns wide so
// blocks look roughly square.
const (
	BoardLeft = 2
	BoardTop  = 1
	CellCols  = 2
	PanelLeft = BoardLeft + tetris.Width*CellCols + 4
)

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	emptyStyle  = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	ghostStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	flashStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	titleStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// CellOrigin returns the screen column and row of board cell (x, y).
func CellOrigin(x, y int) (int, int) {
	return BoardLeft + 1 + x*CellCols, BoardTop + 1 + y
}

// Draw renders a snapshot. It clears the screen but does not call Show.
func Draw(screen tcell.Screen, snap *tetris.Snapshot) {
	screen.Clear()
	drawBorder(screen)

	ghostY := -1
	if snap.Phase == tetris.PhasePlaying {
		ghostY = snap.GhostY()
	}

	for y := range tetris.Height {
		flashing := snap.Clearing(y)
		for x := range tetris.Width {
			sx, sy := CellOrigin(x, y)

			switch {
			case flashing:
				putCell(screen, sx, sy, '▓', flashStyle)
			case snap.PieceAt(x, y):
				putCell(screen, sx, sy, '█', blockStyle(snap.Current.Color.R, snap.Current.Color.G, snap.Current.Color.B))
			case snap.Board[y][x] != 0:
				c, _ := tetris.ColorOf(snap.Board[y][x])
				putCell(screen, sx, sy, '█', blockStyle(c.R, c.G, c.B))
			case ghostY >= 0 && ghostAt(snap, ghostY, x, y):
				putCell(screen, sx, sy, '░', ghostStyle)
			default:
				screen.SetContent(sx, sy, ' ', nil, emptyStyle)
				screen.SetContent(sx+1, sy, '·', nil, emptyStyle)
			}
		}
	}

	drawPanel(screen, snap)
}

func ghostAt(snap *tetris.Snapshot, ghostY, x, y int) bool {
	sx := x - snap.Position.X
	sy := y - ghostY
	if sy < 0 || sy >= snap.Current.Height() || sx < 0 || sx >= snap.Current.Width() {
		return false
	}
	return snap.Current.Shape[sy][sx]
}

func blockStyle(r, g, b uint8) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
}

func putCell(screen tcell.Screen, sx, sy int, ch rune, style tcell.Style) {
	for i := range CellCols {
		screen.SetContent(sx+i, sy, ch, nil, style)
	}
}

func drawBorder(screen tcell.Screen) {
	right := BoardLeft + 1 + tetris.Width*CellCols
	bottom := BoardTop + 1 + tetris.Height

	for x := BoardLeft + 1; x < right; x++ {
		screen.SetContent(x, BoardTop, '─', nil, borderStyle)
		screen.SetContent(x, bottom, '─', nil, borderStyle)
	}
	for y := BoardTop + 1; y < bottom; y++ {
		screen.SetContent(BoardLeft, y, '│', nil, borderStyle)
		screen.SetContent(right, y, '│', nil, borderStyle)
	}
	screen.SetContent(BoardLeft, BoardTop, '┌', nil, borderStyle)
	screen.SetContent(right, BoardTop, '┐', nil, borderStyle)
	screen.SetContent(BoardLeft, bottom, '└', nil, borderStyle)
	screen.SetContent(right, bottom, '┘', nil, borderStyle)
}

func drawPanel(screen tcell.Screen, snap *tetris.Snapshot) {
	y := BoardTop
	printAt(screen, PanelLeft, y, titleStyle, "BLOCKFALL")
	y += 2

	printAt(screen, PanelLeft, y, textStyle, "NEXT")
	y++
	next := snap.Next
	for _, p := range next.Cells() {
		putCell(screen, PanelLeft+p.X*CellCols, y+p.Y, '█', blockStyle(next.Color.R, next.Color.G, next.Color.B))
	}
	y += 3

	printAt(screen, PanelLeft, y, textStyle, fmt.Sprintf("SCORE %d", snap.Score))
	y++
	printAt(screen, PanelLeft, y, textStyle, "SPEED "+tetris.SpeedName(snap.GameSpeed))
	y += 2

	switch snap.Phase {
	case tetris.PhaseIdle:
		printAt(screen, PanelLeft, y, titleStyle, "Press s to start")
	case tetris.PhaseOver:
		printAt(screen, PanelLeft, y, titleStyle, "GAME OVER")
		printAt(screen, PanelLeft, y+1, textStyle, "Press r to restart")
	default:
		printAt(screen, PanelLeft, y, textStyle, snap.Phase.String())
	}
	y += 3

	for _, line := range []string{
		"←/→  move",
		"↑    rotate",
		"↓    down (twice: drop)",
		"spc  drop",
		"1/2/3 speed",
		"r restart  q quit",
	} {
		printAt(screen, PanelLeft, y, borderStyle, line)
		y++
	}
}

func printAt(screen tcell.Screen, x, y int, style tcell.Style, s string) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
