package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// FrameInterval is the redraw cadence of the terminal loop.
const FrameInterval = 16 * time.Millisecond

// Frontend runs a game on a tcell screen.
type Frontend struct {
	screen    tcell.Screen
	engine    *tetris.Engine
	scheduler *loop.Scheduler
	input     *InputSystem
	events    chan tcell.Event
	log       zerolog.Logger
}

// NewFrontend wires the frame pipeline: input, gravity, the clear timer and
// the chime. player may be nil.
func NewFrontend(screen tcell.Screen, engine *tetris.Engine, player Player, logger zerolog.Logger) *Frontend {
	events := make(chan tcell.Event, 100)

	f := &Frontend{
		screen:    screen,
		engine:    engine,
		scheduler: loop.NewScheduler(engine),
		input:     NewInputSystem(events),
		events:    events,
		log:       logger,
	}
	f.input.OnResize = screen.Sync

	f.scheduler.Register(f.input)
	f.scheduler.Register(&loop.GravitySystem{})
	f.scheduler.Register(&loop.ClearSystem{})
	f.scheduler.Register(&ChimeSystem{Player: player})
	return f
}

// Scheduler exposes the frame pipeline, mainly for its stats.
func (f *Frontend) Scheduler() *loop.Scheduler {
	return f.scheduler
}

// Run polls events and draws frames until a quit key is pressed or ctx is
// cancelled. The caller owns the screen and calls Fini afterwards.
func (f *Frontend) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go f.poll(ctx)

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	f.draw()
	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			dt := now.Sub(lastTime)
			lastTime = now

			f.scheduler.Once(dt)
			if f.input.Quit {
				stats := f.engine.Stats()
				f.log.Info().
					Int("games", stats.Games).
					Int("best", stats.BestScore).
					Int("lines", stats.LinesCleared).
					Msg("quit")
				return nil
			}
			f.draw()
		}
	}
}

func (f *Frontend) poll(ctx context.Context) {
	for {
		ev := f.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case f.events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

func (f *Frontend) draw() {
	snap := f.engine.State()
	Draw(f.screen, &snap)
	f.screen.Show()
}
