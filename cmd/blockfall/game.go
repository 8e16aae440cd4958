package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/render"
	"github.com/plus3/blockfall/tetris"
)

// Overlay is the optional debug UI drawn on top of the game.
type Overlay interface {
	Install(scheduler *loop.Scheduler)
	Frame(fn func())
	Draw(screen *ebiten.Image)
	Layout(w, h int)
	Toggle()
	WantsMouse() bool
	WantsKeyboard() bool
}

// Game implements ebiten.Game.
type Game struct {
	engine    *tetris.Engine
	scheduler *loop.Scheduler
	renderer  *render.Renderer
	overlay   Overlay
	keyboard  *KeyboardSystem
	log       zerolog.Logger
}

func NewGame(engine *tetris.Engine, overlay Overlay, logger zerolog.Logger) *Game {
	g := &Game{
		engine:    engine,
		scheduler: loop.NewScheduler(engine),
		renderer:  render.NewRenderer(),
		overlay:   overlay,
		log:       logger,
	}
	g.keyboard = &KeyboardSystem{Overlay: overlay}

	g.scheduler.Register(g.keyboard)
	g.scheduler.Register(NewPointerSystem(g.renderer, overlay))
	g.scheduler.Register(&loop.GravitySystem{})
	g.scheduler.Register(&loop.ClearSystem{})
	overlay.Install(g.scheduler)
	return g
}

func (g *Game) Update() error {
	dt := time.Second / time.Duration(ebiten.TPS())
	g.overlay.Frame(func() {
		g.scheduler.Once(dt)
	})

	if g.keyboard.Quit {
		stats := g.engine.Stats()
		g.log.Info().
			Int("games", stats.Games).
			Int("best", stats.BestScore).
			Msg("quit")
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.engine.State()
	g.renderer.Draw(screen, &snap)
	g.overlay.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.overlay.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
