package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/tetris"
)

// Controls exposes the whole control surface as buttons. Renders run at the
// end of a frame, so actions go straight to the engine.
type Controls struct {
	engine *tetris.Engine
}

func NewControls(engine *tetris.Engine) *Controls {
	return &Controls{engine: engine}
}

func (c *Controls) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(360, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	if !imgui.BeginV("Controls", nil, imgui.WindowFlagsAlwaysAutoResize) {
		imgui.End()
		return
	}

	if imgui.Button("Start") {
		c.engine.Dispatch(tetris.Action{Type: tetris.ActionStart})
	}
	imgui.SameLine()
	if imgui.Button("Restart") {
		c.engine.Dispatch(tetris.Action{Type: tetris.ActionRestart})
	}

	imgui.Separator()
	for _, p := range tetris.Speeds {
		if imgui.Button(p.Name) {
			c.engine.Dispatch(tetris.SpeedAction(p.Speed))
		}
		imgui.SameLine()
	}
	imgui.NewLine()

	imgui.Separator()
	if !c.engine.Active() {
		imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "not playing")
	}
	moves := []tetris.ActionType{
		tetris.ActionMoveLeft,
		tetris.ActionMoveRight,
		tetris.ActionMoveDown,
		tetris.ActionRotate,
		tetris.ActionInstantDrop,
	}
	for i, t := range moves {
		if i > 0 {
			imgui.SameLine()
		}
		if imgui.Button(t.String()) {
			c.engine.Dispatch(tetris.Action{Type: t})
		}
	}

	imgui.End()
}
