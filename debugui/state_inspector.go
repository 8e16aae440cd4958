package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/tetris"
)

// StateInspector shows the engine snapshot, the board and lifetime stats.
type StateInspector struct {
	engine *tetris.Engine
}

func NewStateInspector(engine *tetris.Engine) *StateInspector {
	return &StateInspector{engine: engine}
}

func (si *StateInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 300), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(340, 420), imgui.CondOnce)
	if !imgui.BeginV("Game State", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	snap := si.engine.State()

	imgui.Text(fmt.Sprintf("Session: %s", snap.Session))
	imgui.Text(fmt.Sprintf("Phase: %s", snap.Phase))
	if snap.Phase == tetris.PhaseClearing {
		progress := 1 - float32(snap.ClearRemaining)/float32(tetris.DefaultClearDelay)
		imgui.ProgressBarV(progress, imgui.NewVec2(-1, 0), snap.ClearRemaining.String())
	}
	imgui.Separator()

	if imgui.TreeNodeStr("Snapshot") {
		renderFields(Describe(&snap.GameState), "Board")
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Board") {
		for _, line := range strings.Split(snap.Board.String(), "\n") {
			imgui.Text(line)
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Lifetime") {
		renderFields(Describe(si.engine.Stats()))
		imgui.TreePop()
	}

	imgui.End()
}

func renderFields(fields []Field, skip ...string) {
	for _, f := range fields {
		if contains(skip, f.Name) {
			continue
		}
		if f.Children == nil {
			imgui.Text(fmt.Sprintf("%s: %s", f.Name, f.Value))
			continue
		}
		if imgui.TreeNodeStr(f.Name) {
			renderFields(f.Children)
			imgui.TreePop()
		}
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
