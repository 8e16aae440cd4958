package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/blockfall/loop"
)

type noOverlay struct{}

func (noOverlay) Install(*loop.Scheduler) {}
func (noOverlay) Frame(fn func()) { fn() }
func (noOverlay) Draw(*ebiten.Image) {}
func (noOverlay) Layout(int, int) {}
func (noOverlay) Toggle() {}
func (noOverlay) WantsMouse() bool { return false }
func (noOverlay) WantsKeyboard() bool { return false }
