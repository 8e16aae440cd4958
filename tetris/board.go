package tetris

import (
	"fmt"
	"strings"
)

const (
	Width  = 10
	Height = 20
)

// Cell is a board square: 0 for empty, otherwise Kind.Cell() of the piece that filled it.
type Cell uint8

// Board is the playfield, row 0 on top. Its size is fixed by the type.
type Board [Height][Width]Cell

// Position is the board coordinate of a shape's top-left cell.
type Position struct {
	X, Y int
}

// SpawnPosition is where every new piece enters the board.
var SpawnPosition = Position{X: 3, Y: 0}

// IsColliding reports whether any filled cell of piece, offset by pos, lies
// outside the board or on an occupied cell.
func IsColliding(board *Board, piece Tetromino, pos Position) bool {
	for y, row := range piece.Shape {
		for x, filled := range row {
			if !filled {
				continue
			}

			by := pos.Y + y
			bx := pos.X + x
			if by < 0 || by >= Height || bx < 0 || bx >= Width {
				return true
			}

			if board[by][bx] != 0 {
				return true
			}
		}
	}

	return false
}

// PlacePiece returns a copy of board with the piece written at pos.
// Legality is the caller's concern; cells that fall off the board are dropped.
func PlacePiece(board Board, piece Tetromino, pos Position) Board {
	value := piece.Kind.Cell()
	for y, row := range piece.Shape {
		for x, filled := range row {
			if !filled {
				continue
			}

			by := pos.Y + y
			bx := pos.X + x
			if by < 0 || by >= Height || bx < 0 || bx >= Width {
				continue
			}
			board[by][bx] = value
		}
	}
	return board
}

// ClearLines removes every full row, inserting an empty row at the top for each
// one removed. The cleared indices refer to the input board, bottom to top.
func ClearLines(board Board) (Board, []int) {
	var cleared []int
	var out Board

	dst := Height - 1
	for y := Height - 1; y >= 0; y-- {
		if board.Full(y) {
			cleared = append(cleared, y)
			continue
		}
		out[dst] = board[y]
		dst--
	}

	return out, cleared
}

// Full reports whether every cell of row y is occupied.
func (b *Board) Full(y int) bool {
	for _, c := range b[y] {
		if c == 0 {
			return false
		}
	}
	return true
}

// Empty reports whether the board has no occupied cells.
func (b *Board) Empty() bool {
	for y := range b {
		for _, c := range b[y] {
			if c != 0 {
				return false
			}
		}
	}
	return true
}

// Filled counts occupied cells.
func (b *Board) Filled() int {
	n := 0
	for y := range b {
		for _, c := range b[y] {
			if c != 0 {
				n++
			}
		}
	}
	return n
}

// String renders the board one row per line, '.' for empty cells and the
// piece letter otherwise.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(Height * (Width + 1))
	for y := range b {
		for _, c := range b[y] {
			sb.WriteByte(cellRune(c))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func cellRune(c Cell) byte {
	if c == 0 {
		return '.'
	}
	if int(c) > KindCount {
		return '?'
	}
	return kindNames[c-1][0]
}

// ParseBoard reads the format produced by Board.String. Blank lines and lines
// starting with '#' are skipped. Fewer than Height rows are aligned to the
// bottom of the board. 'X' is accepted as a generic filled cell and reads as I.
func ParseBoard(s string) (Board, error) {
	var rows []string
	for line := range strings.Lines(s) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rows = append(rows, line)
	}

	var b Board
	if len(rows) > Height {
		return b, fmt.Errorf("board has %d rows, want at most %d", len(rows), Height)
	}

	offset := Height - len(rows)
	for i, row := range rows {
		if len(row) != Width {
			return b, fmt.Errorf("row %d has %d cells, want %d", i, len(row), Width)
		}
		for x := range Width {
			c, err := parseCell(row[x])
			if err != nil {
				return b, fmt.Errorf("row %d col %d: %w", i, x, err)
			}
			b[offset+i][x] = c
		}
	}

	return b, nil
}

func parseCell(r byte) (Cell, error) {
	switch r {
	case '.':
		return 0, nil
	case 'X', 'x':
		return KindI.Cell(), nil
	}
	for k, name := range kindNames {
		if name[0] == r {
			return Kind(k).Cell(), nil
		}
	}
	return 0, fmt.Errorf("unknown cell %q", r)
}
