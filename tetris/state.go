package tetris

import (
	"time"

	"github.com/google/uuid"
)

// Speed presets offered by the frontends.
const (
	SpeedNormal = 1000 * time.Millisecond
	SpeedFast   = 500 * time.Millisecond
	SpeedInsane = 200 * time.Millisecond
)

// SpeedPreset is a named gravity interval.
type SpeedPreset struct {
	Name  string
	Speed time.Duration
}

// Speeds lists the presets in menu order.
var Speeds = []SpeedPreset{
	{"Normal", SpeedNormal},
	{"Fast", SpeedFast},
	{"Insane", SpeedInsane},
}

// SpeedName names a gravity interval, falling back to its duration.
func SpeedName(d time.Duration) string {
	for _, p := range Speeds {
		if p.Speed == d {
			return p.Name
		}
	}
	return d.String()
}

// DefaultClearDelay is how long cleared rows stay visible before they collapse.
const DefaultClearDelay = 500 * time.Millisecond

// LinePoints is the score awarded per cleared row.
const LinePoints = 100

// Phase is the control state derived from the GameState flags.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseClearing
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseClearing:
		return "clearing"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// GameState is the mutable aggregate owned by an Engine.
// IsPlaying and GameOver are never both true.
type GameState struct {
	Board        Board
	Current      Tetromino
	Next         Tetromino
	Position     Position
	Score        int
	GameOver     bool
	IsPlaying    bool
	ClearedLines []int
	IsClearing   bool
	GameSpeed    time.Duration
}

// Phase derives the control state from the flags.
func (s *GameState) Phase() Phase {
	switch {
	case s.GameOver:
		return PhaseOver
	case !s.IsPlaying:
		return PhaseIdle
	case s.IsClearing:
		return PhaseClearing
	default:
		return PhasePlaying
	}
}

func (s *GameState) clone() GameState {
	out := *s
	out.Current = s.Current.clone()
	out.Next = s.Next.clone()
	if s.ClearedLines != nil {
		out.ClearedLines = append([]int(nil), s.ClearedLines...)
	}
	return out
}

// Snapshot is a detached copy of the engine state for rendering.
type Snapshot struct {
	GameState

	Phase   Phase
	Session uuid.UUID

	// ClearRemaining is the time left before a pending line clear collapses.
	ClearRemaining time.Duration
}

// Clearing reports whether row y is part of the pending line clear.
func (s *Snapshot) Clearing(y int) bool {
	if !s.IsClearing {
		return false
	}
	for _, row := range s.ClearedLines {
		if row == y {
			return true
		}
	}
	return false
}

// PieceAt reports whether the active piece covers board cell (x, y).
// No piece is shown outside the playing phase.
func (s *Snapshot) PieceAt(x, y int) bool {
	if s.Phase != PhasePlaying {
		return false
	}
	sy := y - s.Position.Y
	sx := x - s.Position.X
	if sy < 0 || sy >= s.Current.Height() || sx < 0 || sx >= s.Current.Width() {
		return false
	}
	return s.Current.Shape[sy][sx]
}

// GhostY is the row the active piece would land on after an instant drop.
func (s *Snapshot) GhostY() int {
	y := s.Position.Y
	for !IsColliding(&s.Board, s.Current, Position{X: s.Position.X, Y: y + 1}) {
		y++
	}
	return y
}
