//go:build !js

package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/loop"
)

// imguiOverlay draws the debug windows. F1 shows and hides them.
type imguiOverlay struct {
	backend *debugui_ebiten.ImguiBackend
	system  *debugui.ImguiSystem
}

func newOverlay(enabled bool) Overlay {
	if !enabled {
		return noOverlay{}
	}
	return &imguiOverlay{
		backend: debugui_ebiten.NewImguiBackend("blockfall", ScreenWidth, ScreenHeight),
		system:  &debugui.ImguiSystem{Enabled: true},
	}
}

func (o *imguiOverlay) Install(scheduler *loop.Scheduler) {
	debugui.Install(o.system, scheduler)
	scheduler.Register(o.system)
}

func (o *imguiOverlay) Frame(fn func()) { o.backend.Frame(fn) }
func (o *imguiOverlay) Draw(screen *ebiten.Image) { o.backend.Overlay(screen) }
func (o *imguiOverlay) Layout(w, h int) { o.backend.Layout(w, h) }
func (o *imguiOverlay) Toggle() { o.system.Enabled = !o.system.Enabled }
func (o *imguiOverlay) WantsMouse() bool { return o.system.Input.WantCaptureMouse }
func (o *imguiOverlay) WantsKeyboard() bool { return o.system.Input.WantCaptureKeyboard }
