package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/blockfall/tetris"
)

var (
	backgroundColor = color.RGBA{17, 24, 39, 255}
	boardColor      = color.RGBA{31, 41, 55, 255}
	gridColor       = color.RGBA{55, 65, 81, 255}
	borderColor     = color.RGBA{156, 163, 175, 255}
	ghostColor      = color.RGBA{255, 255, 255, 48}
	flashColor      = color.RGBA{255, 255, 255, 255}
	buttonColor     = color.RGBA{75, 85, 99, 255}
	selectedColor   = color.RGBA{37, 99, 235, 255}
	overlayColor    = color.RGBA{0, 0, 0, 160}
)

// Renderer draws snapshots. It keeps no game state; the layout is recomputed
// whenever the screen size changes.
type Renderer struct {
	layout Layout
	w, h   int
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Layout returns the layout used for the last drawn frame.
func (r *Renderer) Layout() Layout {
	return r.layout
}

// Resize recomputes the layout for a new screen size.
func (r *Renderer) Resize(w, h int) Layout {
	if w != r.w || h != r.h {
		r.w, r.h = w, h
		r.layout = NewLayout(w, h)
	}
	return r.layout
}

// Draw renders the board, the active piece with its landing shadow, the side
// panel and the on-screen buttons.
func (r *Renderer) Draw(screen *ebiten.Image, snap *tetris.Snapshot) {
	b := screen.Bounds()
	l := r.Resize(b.Dx(), b.Dy())

	screen.Fill(backgroundColor)
	fillRect(screen, l.Board, boardColor)

	for y := range tetris.Height {
		flashing := snap.Clearing(y)
		for x := range tetris.Width {
			cell := l.Cell(x, y)
			strokeRect(screen, cell, 1, gridColor)

			if flashing {
				fillRect(screen, inset(cell, 1), flashColor)
				continue
			}
			if c, ok := tetris.ColorOf(snap.Board[y][x]); ok {
				drawBlock(screen, cell, c)
			}
		}
	}

	if snap.Phase == tetris.PhasePlaying {
		r.drawPiece(screen, l, snap)
	}

	strokeRect(screen, l.Board.Inset(-2), 2, borderColor)

	r.drawPanel(screen, l, snap)

	switch snap.Phase {
	case tetris.PhaseIdle:
		r.drawBanner(screen, l, "Press Start")
	case tetris.PhaseOver:
		r.drawBanner(screen, l, fmt.Sprintf("GAME OVER\nScore %d", snap.Score))
	}
}

func (r *Renderer) drawPiece(screen *ebiten.Image, l Layout, snap *tetris.Snapshot) {
	ghostY := snap.GhostY()
	for _, p := range snap.Current.Cells() {
		x := snap.Position.X + p.X
		if gy := ghostY + p.Y; gy >= 0 && gy < tetris.Height {
			fillRect(screen, inset(l.Cell(x, gy), 1), ghostColor)
		}
	}

	for _, p := range snap.Current.Cells() {
		x, y := snap.Position.X+p.X, snap.Position.Y+p.Y
		if y < 0 || y >= tetris.Height {
			continue
		}
		drawBlock(screen, l.Cell(x, y), snap.Current.Color)
	}
}

func (r *Renderer) drawPanel(screen *ebiten.Image, l Layout, snap *tetris.Snapshot) {
	ebitenutil.DebugPrintAt(screen, "NEXT", l.Panel.Min.X, l.Panel.Min.Y)

	preview := l.preview()
	next := snap.Next
	size := l.CellSize
	ox := preview.Min.X + (preview.Dx()-next.Width()*size)/2
	oy := preview.Min.Y + (preview.Dy()-next.Height()*size)/2
	for _, p := range next.Cells() {
		at := image.Pt(ox+p.X*size, oy+p.Y*size)
		drawBlock(screen, image.Rectangle{Min: at, Max: at.Add(image.Pt(size, size))}, next.Color)
	}

	y := l.textTop()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d", snap.Score), l.Panel.Min.X, y)
	ebitenutil.DebugPrintAt(screen, "SPEED "+tetris.SpeedName(snap.GameSpeed), l.Panel.Min.X, y+lineHeight)
	ebitenutil.DebugPrintAt(screen, snap.Phase.String(), l.Panel.Min.X, y+2*lineHeight)

	for _, btn := range Buttons(l, snap) {
		bg := buttonColor
		if btn.Selected {
			bg = selectedColor
		}
		fillRect(screen, btn.Rect, bg)
		strokeRect(screen, btn.Rect, 1, borderColor)
		tx := btn.Rect.Min.X + (btn.Rect.Dx()-6*len(btn.Label))/2
		ty := btn.Rect.Min.Y + (btn.Rect.Dy()-lineHeight)/2
		ebitenutil.DebugPrintAt(screen, btn.Label, tx, ty)
	}
}

func (r *Renderer) drawBanner(screen *ebiten.Image, l Layout, text string) {
	mid := l.Board.Min.Y + l.Board.Dy()/2
	band := image.Rect(l.Board.Min.X, mid-2*lineHeight, l.Board.Max.X, mid+2*lineHeight)
	fillRect(screen, band, overlayColor)
	ebitenutil.DebugPrintAt(screen, text, band.Min.X+margin, band.Min.Y+lineHeight/2)
}

func drawBlock(dst *ebiten.Image, r image.Rectangle, c color.RGBA) {
	fillRect(dst, inset(r, 1), c)
	highlight := color.RGBA{
		R: uint8(min(int(c.R)+60, 255)),
		G: uint8(min(int(c.G)+60, 255)),
		B: uint8(min(int(c.B)+60, 255)),
		A: 255,
	}
	strokeRect(dst, inset(r, 1), 1, highlight)
}

func inset(r image.Rectangle, n int) image.Rectangle {
	if r.Dx() <= 2*n || r.Dy() <= 2*n {
		return r
	}
	return r.Inset(n)
}

func fillRect(dst *ebiten.Image, r image.Rectangle, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
}

func strokeRect(dst *ebiten.Image, r image.Rectangle, width float32, c color.Color) {
	vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), width, c, false)
}
