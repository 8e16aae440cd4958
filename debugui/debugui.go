// Package debugui provides immediate-mode GUI windows for inspecting a running
// game with Dear ImGui. Windows are ImguiItems rendered by the ImguiSystem at
// the end of each frame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/loop"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Frontends check it before feeding pointer events to the game.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers the render function of every item to the end of the
// frame. It does nothing while Enabled is false.
type ImguiSystem struct {
	Enabled bool
	Input   InputState

	items []ImguiItem
}

// Add registers items to render every frame.
func (i *ImguiSystem) Add(items ...ImguiItem) {
	i.items = append(i.items, items...)
}

// Len returns the number of registered items.
func (i *ImguiSystem) Len() int {
	return len(i.items)
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(frame *loop.UpdateFrame) {
	if !i.Enabled {
		i.Input = InputState{}
		return
	}

	io := imgui.CurrentIO()
	i.Input.WantCaptureMouse = io.WantCaptureMouse()
	i.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range i.items {
		frame.Commands.Defer(item.Render)
	}
}
