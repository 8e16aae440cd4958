package tetris

import (
	"image/color"
	"math/rand"
)

// Kind identifies one of the seven catalog pieces. The zero value is I.
type Kind uint8

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// KindCount is the number of pieces in the catalog.
const KindCount = 7

var kindNames = [KindCount]string{"I", "J", "L", "O", "S", "T", "Z"}

func (k Kind) String() string {
	if int(k) >= KindCount {
		return "?"
	}
	return kindNames[k]
}

// Cell returns the board value written for this kind (catalog index + 1).
func (k Kind) Cell() Cell {
	return Cell(k) + 1
}

// Shape is a rectangular matrix of filled flags, row-major.
type Shape [][]bool

func (s Shape) clone() Shape {
	out := make(Shape, len(s))
	for i, row := range s {
		out[i] = append([]bool(nil), row...)
	}
	return out
}

// Tetromino is a piece shape together with its catalog kind and display color.
type Tetromino struct {
	Kind  Kind
	Shape Shape
	Color color.RGBA
}

var catalog = [KindCount]Tetromino{
	KindI: {
		Kind:  KindI,
		Shape: Shape{{true, true, true, true}},
		Color: color.RGBA{R: 6, G: 182, B: 212, A: 255},
	},
	KindJ: {
		Kind: KindJ,
		Shape: Shape{
			{true, false, false},
			{true, true, true},
		},
		Color: color.RGBA{R: 59, G: 130, B: 246, A: 255},
	},
	KindL: {
		Kind: KindL,
		Shape: Shape{
			{false, false, true},
			{true, true, true},
		},
		Color: color.RGBA{R: 249, G: 115, B: 22, A: 255},
	},
	KindO: {
		Kind: KindO,
		Shape: Shape{
			{true, true},
			{true, true},
		},
		Color: color.RGBA{R: 234, G: 179, B: 8, A: 255},
	},
	KindS: {
		Kind: KindS,
		Shape: Shape{
			{false, true, true},
			{true, true, false},
		},
		Color: color.RGBA{R: 34, G: 197, B: 94, A: 255},
	},
	KindT: {
		Kind: KindT,
		Shape: Shape{
			{false, true, false},
			{true, true, true},
		},
		Color: color.RGBA{R: 168, G: 85, B: 247, A: 255},
	},
	KindZ: {
		Kind: KindZ,
		Shape: Shape{
			{true, true, false},
			{false, true, true},
		},
		Color: color.RGBA{R: 239, G: 68, B: 68, A: 255},
	},
}

// Template returns a copy of the catalog piece for kind k.
// Templates are never handed out directly, so callers may modify the result freely.
func Template(k Kind) Tetromino {
	t := catalog[k]
	t.Shape = t.Shape.clone()
	return t
}

// Catalog returns copies of all seven pieces in catalog order.
func Catalog() []Tetromino {
	out := make([]Tetromino, KindCount)
	for k := range KindCount {
		out[k] = Template(Kind(k))
	}
	return out
}

// RandomTetromino picks a catalog piece uniformly at random.
func RandomTetromino(rng *rand.Rand) Tetromino {
	return Template(Kind(rng.Intn(KindCount)))
}

// ColorOf returns the display color stored for a board cell value.
// Empty cells and out of range values report ok=false.
func ColorOf(c Cell) (color.RGBA, bool) {
	if c == 0 || int(c) > KindCount {
		return color.RGBA{}, false
	}
	return catalog[c-1].Color, true
}

// Rotate returns the piece turned 90 degrees clockwise: the shape is transposed
// and every resulting row reversed. The receiver is left untouched.
func (t Tetromino) Rotate() Tetromino {
	h := len(t.Shape)
	w := len(t.Shape[0])

	rotated := make(Shape, w)
	for x := range w {
		rotated[x] = make([]bool, h)
		for y := range h {
			rotated[x][h-1-y] = t.Shape[y][x]
		}
	}

	t.Shape = rotated
	return t
}

// Width is the number of shape columns.
func (t Tetromino) Width() int {
	if len(t.Shape) == 0 {
		return 0
	}
	return len(t.Shape[0])
}

// Height is the number of shape rows.
func (t Tetromino) Height() int {
	return len(t.Shape)
}

// Cells lists the offsets of the filled shape cells in row-major order.
func (t Tetromino) Cells() []Position {
	cells := make([]Position, 0, 4)
	for y, row := range t.Shape {
		for x, filled := range row {
			if filled {
				cells = append(cells, Position{X: x, Y: y})
			}
		}
	}
	return cells
}

// Equal reports whether two pieces have the same kind and shape.
func (t Tetromino) Equal(o Tetromino) bool {
	if t.Kind != o.Kind || len(t.Shape) != len(o.Shape) {
		return false
	}
	for y := range t.Shape {
		if len(t.Shape[y]) != len(o.Shape[y]) {
			return false
		}
		for x := range t.Shape[y] {
			if t.Shape[y][x] != o.Shape[y][x] {
				return false
			}
		}
	}
	return true
}

func (t Tetromino) clone() Tetromino {
	t.Shape = t.Shape.clone()
	return t
}
