package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Sessions int
	Seed     int64
	Speed    time.Duration
	Step     time.Duration

	// Results
	Frames         int64
	SimulatedTime  time.Duration
	TotalTime      time.Duration
	FrameTime      Stats
	Games          Totals
	Systems        []loop.SystemStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// Totals sums the lifetime counters of every session.
type Totals struct {
	Games        int
	Commits      int
	LinesCleared int
	GameOvers    int
	BestScore    int
}

func (t *Totals) Add(s tetris.Stats) {
	t.Games += s.Games
	t.Commits += s.Commits
	t.LinesCleared += s.LinesCleared
	t.GameOvers += s.GameOvers
	t.BestScore = max(t.BestScore, s.BestScore)
}

// MergeSystems folds per-session scheduler stats into one row per system name.
func MergeSystems(all []*loop.SchedulerStats) []loop.SystemStats {
	var out []loop.SystemStats
	index := map[string]int{}

	for _, stats := range all {
		for _, s := range stats.Systems {
			i, ok := index[s.Name]
			if !ok {
				index[s.Name] = len(out)
				out = append(out, s)
				continue
			}

			m := &out[i]
			m.ExecutionCount += s.ExecutionCount
			m.TotalDuration += s.TotalDuration
			m.MinDuration = min(m.MinDuration, s.MinDuration)
			m.MaxDuration = max(m.MaxDuration, s.MaxDuration)
			m.LastDuration = s.LastDuration
		}
	}

	for i := range out {
		if out[i].ExecutionCount > 0 {
			out[i].AvgDuration = out[i].TotalDuration / time.Duration(out[i].ExecutionCount)
		}
	}
	return out
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Sessions:** {{.Sessions}}
- **Seed:** {{.Seed}}
- **Speed:** {{speed .Speed}}
- **Simulated Step:** {{.Step}}

## Gameplay
- **Games:** {{.Games.Games}}
- **Commits:** {{.Games.Commits}}
- **Lines Cleared:** {{.Games.LinesCleared}}
- **Game Overs:** {{.Games.GameOvers}}
- **Best Score:** {{.Games.BestScore}}

## Performance Results
- **Total Frames:** {{.Frames}}
- **Simulated Time:** {{.SimulatedTime}}
- **Total Test Time:** {{.TotalTime}}
- **Frame Time (all sessions):**
  - **Avg:** {{.FrameTime.Avg}}
  - **Min:** {{.FrameTime.Min}}
  - **Max:** {{.FrameTime.Max}}

## Systems
| System | Executions | Avg | Min | Max | Total |
|--------|-----------:|----:|----:|----:|------:|
{{range .Systems}}| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} | {{.TotalDuration}} |
{{end}}
## Memory Usage (MB)
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} (start) -> {{mb .MemStatsEnd.HeapAlloc}} (end) -> delta: {{mb (bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc)}}
- Total Alloc:    {{mb .MemStatsStart.TotalAlloc}} (start) -> {{mb .MemStatsEnd.TotalAlloc}} (end) -> delta: {{mb (bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc)}}
- Sys Memory:     {{mb .MemStatsStart.Sys}} (start) -> {{mb .MemStatsEnd.Sys}} (end) -> delta: {{mb (bsub .MemStatsEnd.Sys .MemStatsStart.Sys)}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}`

	fm := template.FuncMap{
		"mb": func(v any) string {
			switch val := v.(type) {
			case uint64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			case int64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			default:
				return "N/A"
			}
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
		"speed": tetris.SpeedName,
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
