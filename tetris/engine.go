// Package tetris implements the falling-block game engine: the piece catalog,
// the board, collision and placement, and the state machine driven by the
// control surface.
//
// The Engine is single-owner and not safe for concurrent use. Frontends run it
// from one goroutine and feed it Actions from their input adapters and game loop.
package tetris

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Stats are lifetime counters of an Engine, kept across restarts.
type Stats struct {
	Games        int
	Commits      int
	LinesCleared int
	GameOvers    int
	BestScore    int
}

// clearTransition holds the collapse that is applied once the clear delay elapses.
type clearTransition struct {
	remaining time.Duration
	board     Board
	rows      int
}

// Engine owns a GameState and applies the control surface operations to it.
type Engine struct {
	state GameState

	rng        *rand.Rand
	base       zerolog.Logger
	log        zerolog.Logger
	session    uuid.UUID
	clearDelay time.Duration
	pending    *clearTransition
	stats      Stats
	preset     *Board
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source used to pick pieces.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithSeed seeds a private random source, making piece order reproducible.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.base = logger
	}
}

// WithClearDelay overrides how long cleared rows stay visible. Zero collapses immediately.
func WithClearDelay(d time.Duration) Option {
	return func(e *Engine) {
		if d >= 0 {
			e.clearDelay = d
		}
	}
}

// WithSpeed sets the initial gravity interval.
func WithSpeed(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.state.GameSpeed = d
		}
	}
}

// WithBoard seeds the first game with a prefilled board. Restart always
// starts from an empty one.
func WithBoard(b Board) Option {
	return func(e *Engine) {
		e.preset = &b
	}
}

// New creates an idle engine with an empty board.
func New(opts ...Option) *Engine {
	e := &Engine{
		base:       zerolog.Nop(),
		clearDelay: DefaultClearDelay,
		state:      GameState{GameSpeed: SpeedNormal},
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	e.reset()
	if e.preset != nil {
		e.state.Board = *e.preset
	}
	return e
}

func (e *Engine) reset() {
	speed := e.state.GameSpeed

	e.pending = nil
	e.session = uuid.New()
	e.log = e.base.With().Str("session", e.session.String()).Logger()
	e.state = GameState{
		Current:   RandomTetromino(e.rng),
		Next:      RandomTetromino(e.rng),
		Position:  SpawnPosition,
		GameSpeed: speed,
	}
}

// Dispatch applies a single action. It is the only entry point the input
// adapters and the game loop use.
func (e *Engine) Dispatch(a Action) {
	switch a.Type {
	case ActionStart:
		e.Start()
	case ActionRestart:
		e.Restart()
	case ActionSetSpeed:
		e.SetSpeed(a.Speed)
	case ActionMoveLeft:
		e.MoveLeft()
	case ActionMoveRight:
		e.MoveRight()
	case ActionMoveDown:
		e.MoveDown()
	case ActionRotate:
		e.Rotate()
	case ActionInstantDrop:
		e.InstantDrop()
	}
}

// Start begins play from the idle phase.
func (e *Engine) Start() {
	if e.state.IsPlaying || e.state.GameOver {
		return
	}
	e.state.IsPlaying = true
	e.stats.Games++
	e.log.Debug().Msg("game started")
}

// Restart discards the current game, including a pending line clear, and
// returns to the idle phase. The gravity speed is kept.
func (e *Engine) Restart() {
	previous := e.session
	e.reset()
	e.log.Debug().Str("previous", previous.String()).Msg("game restarted")
}

// SetSpeed changes the gravity interval. Non-positive values are ignored.
func (e *Engine) SetSpeed(d time.Duration) {
	if d <= 0 {
		return
	}
	e.state.GameSpeed = d
}

// MoveDown shifts the piece one row down, committing it when it cannot descend.
func (e *Engine) MoveDown() {
	if !e.movable() {
		return
	}

	next := e.state.Position
	next.Y++
	if !IsColliding(&e.state.Board, e.state.Current, next) {
		e.state.Position = next
		return
	}

	e.commit()
}

// MoveLeft shifts the piece one column left if the target is free.
func (e *Engine) MoveLeft() {
	e.shift(-1)
}

// MoveRight shifts the piece one column right if the target is free.
func (e *Engine) MoveRight() {
	e.shift(1)
}

func (e *Engine) shift(dx int) {
	if !e.movable() {
		return
	}

	next := e.state.Position
	next.X += dx
	if !IsColliding(&e.state.Board, e.state.Current, next) {
		e.state.Position = next
	}
}

// Rotate turns the piece clockwise in place. A blocked rotation is discarded;
// there is no wall kick.
func (e *Engine) Rotate() {
	if !e.movable() {
		return
	}

	rotated := e.state.Current.Rotate()
	if !IsColliding(&e.state.Board, rotated, e.state.Position) {
		e.state.Current = rotated
	}
}

// InstantDrop moves the piece to the lowest free row. The piece is committed by
// the next MoveDown, not here.
func (e *Engine) InstantDrop() {
	if !e.movable() {
		return
	}

	pos := e.state.Position
	for !IsColliding(&e.state.Board, e.state.Current, Position{X: pos.X, Y: pos.Y + 1}) {
		pos.Y++
	}
	e.state.Position = pos
}

// Advance moves the line clear timer forward by dt and applies the collapse
// once it has elapsed.
func (e *Engine) Advance(dt time.Duration) {
	if e.pending == nil {
		return
	}

	e.pending.remaining -= dt
	if e.pending.remaining <= 0 {
		e.finishClear()
	}
}

func (e *Engine) movable() bool {
	return e.state.Phase() == PhasePlaying
}

func (e *Engine) commit() {
	merged := PlacePiece(e.state.Board, e.state.Current, e.state.Position)
	collapsed, rows := ClearLines(merged)
	e.stats.Commits++

	e.log.Debug().
		Stringer("piece", e.state.Current.Kind).
		Int("x", e.state.Position.X).
		Int("y", e.state.Position.Y).
		Int("rows", len(rows)).
		Msg("piece committed")

	if len(rows) == 0 {
		e.state.Board = collapsed
		e.spawn()
		return
	}

	e.state.Board = merged
	e.state.ClearedLines = rows
	e.state.IsClearing = true
	e.pending = &clearTransition{
		remaining: e.clearDelay,
		board:     collapsed,
		rows:      len(rows),
	}

	if e.clearDelay == 0 {
		e.finishClear()
	}
}

func (e *Engine) finishClear() {
	p := e.pending
	e.pending = nil

	e.state.Board = p.board
	e.state.ClearedLines = nil
	e.state.IsClearing = false
	e.state.Score += LinePoints * p.rows
	e.stats.LinesCleared += p.rows
	if e.state.Score > e.stats.BestScore {
		e.stats.BestScore = e.state.Score
	}

	e.log.Debug().Int("rows", p.rows).Int("score", e.state.Score).Msg("lines cleared")
	e.spawn()
}

func (e *Engine) spawn() {
	if IsColliding(&e.state.Board, e.state.Next, SpawnPosition) {
		e.state.GameOver = true
		e.state.IsPlaying = false
		e.stats.GameOvers++
		e.log.Info().Int("score", e.state.Score).Msg("game over")
		return
	}

	e.state.Current = e.state.Next
	e.state.Next = RandomTetromino(e.rng)
	e.state.Position = SpawnPosition
}

// Active reports whether input should reach the engine: playing and not over.
func (e *Engine) Active() bool {
	return e.state.IsPlaying && !e.state.GameOver
}

// Phase returns the current control state.
func (e *Engine) Phase() Phase {
	return e.state.Phase()
}

// Speed returns the gravity interval.
func (e *Engine) Speed() time.Duration {
	return e.state.GameSpeed
}

// Session identifies the current game; it changes on Restart.
func (e *Engine) Session() uuid.UUID {
	return e.session
}

// Stats returns lifetime counters.
func (e *Engine) Stats() Stats {
	return e.stats
}

// State returns a copy of the game state that the caller may keep.
func (e *Engine) State() Snapshot {
	snap := Snapshot{
		GameState: e.state.clone(),
		Phase:     e.state.Phase(),
		Session:   e.session,
	}
	if e.pending != nil {
		snap.ClearRemaining = e.pending.remaining
	}
	return snap
}
