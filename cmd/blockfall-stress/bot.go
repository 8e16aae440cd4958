package main

import (
	"github.com/google/uuid"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// BotSystem plays the game. It starts idle games, restarts finished ones, and
// for every new piece queues the moves that reach the best scoring placement.
type BotSystem struct {
	session uuid.UUID
	commits int
	planned bool
}

func (b *BotSystem) Execute(frame *loop.UpdateFrame) {
	snap := frame.Engine.State()

	switch snap.Phase {
	case tetris.PhaseIdle:
		frame.Commands.Dispatch(tetris.Action{Type: tetris.ActionStart})
		return
	case tetris.PhaseOver:
		frame.Commands.Dispatch(tetris.Action{Type: tetris.ActionRestart})
		return
	case tetris.PhaseClearing:
		return
	}

	commits := frame.Engine.Stats().Commits
	if b.planned && snap.Session == b.session && commits == b.commits {
		return
	}
	b.session = snap.Session
	b.commits = commits
	b.planned = true

	p := BestPlacement(&snap.Board, snap.Current, snap.Position)
	for range p.Rotations {
		frame.Commands.Dispatch(tetris.Action{Type: tetris.ActionRotate})
	}

	shift := tetris.Action{Type: tetris.ActionMoveRight}
	dx := p.X - snap.Position.X
	if dx < 0 {
		shift.Type = tetris.ActionMoveLeft
		dx = -dx
	}
	for range dx {
		frame.Commands.Dispatch(shift)
	}

	frame.Commands.Dispatch(tetris.Action{Type: tetris.ActionInstantDrop})
	frame.Commands.Dispatch(tetris.Action{Type: tetris.ActionMoveDown})
}

// Placement is a target rotation count and column for the active piece.
type Placement struct {
	Rotations int
	X         int
	Score     float64
}

// BestPlacement tries every rotation and column reachable by straight drops
// from the spawn row and scores the resulting board. The weights are the usual
// ones for height, cleared lines, holes and bumpiness.
func BestPlacement(board *tetris.Board, piece tetris.Tetromino, from tetris.Position) Placement {
	best := Placement{X: from.X, Score: -1e9}
	found := false

	p := piece
	for r := range 4 {
		for x := 0; x+p.Width() <= tetris.Width; x++ {
			pos := tetris.Position{X: x, Y: from.Y}
			if tetris.IsColliding(board, p, pos) {
				continue
			}
			for !tetris.IsColliding(board, p, tetris.Position{X: x, Y: pos.Y + 1}) {
				pos.Y++
			}

			placed := tetris.PlacePiece(*board, p, pos)
			cleared, rows := tetris.ClearLines(placed)
			score := evaluate(&cleared, len(rows))
			if !found || score > best.Score {
				best = Placement{Rotations: r, X: x, Score: score}
				found = true
			}
		}
		p = p.Rotate()
	}
	return best
}

func evaluate(board *tetris.Board, lines int) float64 {
	var heights [tetris.Width]int
	holes := 0

	for x := range tetris.Width {
		seen := false
		for y := range tetris.Height {
			filled := board[y][x] != 0
			if filled && !seen {
				heights[x] = tetris.Height - y
				seen = true
			} else if !filled && seen {
				holes++
			}
		}
	}

	aggregate, bumpiness := 0, 0
	for x, h := range heights {
		aggregate += h
		if x > 0 {
			bumpiness += abs(h - heights[x-1])
		}
	}

	return -0.51*float64(aggregate) + 0.76*float64(lines) - 0.36*float64(holes) - 0.18*float64(bumpiness)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
