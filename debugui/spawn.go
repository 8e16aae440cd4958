package debugui

import "github.com/plus3/blockfall/loop"

// Install registers the standard debug windows for the scheduler's engine.
func Install(system *ImguiSystem, scheduler *loop.Scheduler) {
	perf := NewPerformanceStats(120)
	timer := NewFrameTimer()
	inspector := NewStateInspector(scheduler.Engine())
	controls := NewControls(scheduler.Engine())

	system.Add(
		ImguiItem{Render: func() { perf.Render(scheduler.GetStats(), timer.GetDeltaTime()) }},
		ImguiItem{Render: inspector.Render},
		ImguiItem{Render: controls.Render},
	)
}
