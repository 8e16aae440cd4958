// Command blockfall-stress runs many headless games at once, each driven by a
// bot, and prints a markdown report of the frame pipeline's cost.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/plus3/blockfall/internal/logging"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// Step is the simulated frame time handed to every scheduler, independent of
// how long the frame takes on the wall clock.
const Step = 16 * time.Millisecond

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	sessions := flag.Int("sessions", 100, "The number of games to run side by side.")
	seed := flag.Int64("seed", 1, "Seed of the first session. Session i uses seed+i.")
	speed := flag.Duration("speed", tetris.SpeedInsane, "Gravity interval of every session.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	logLevel := flag.String("log-level", "info", "zerolog level name.")
	flag.Parse()

	logger, err := logging.New(logging.Options{Level: *logLevel})
	if err != nil {
		log.Fatal().Err(err).Msg("build logger")
	}
	if *sessions <= 0 || *speed <= 0 {
		logger.Fatal().Int("sessions", *sessions).Dur("speed", *speed).Msg("sessions and speed must be positive")
	}

	logger.Info().Int("sessions", *sessions).Msg("starting stress test")
	schedulers := NewSessions(*sessions, *seed, *speed)

	report := &Report{
		Duration:       *duration,
		Sessions:       *sessions,
		Seed:           *seed,
		Speed:          *speed,
		Step:           Step,
		GCPauseMetrics: *gcPauseMetrics,
		FrameTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info().Dur("duration", *duration).Msg("running simulation")
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			report.FrameTime.Samples = append(report.FrameTime.Samples, Frame(schedulers))
			report.Frames++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.SimulatedTime = time.Duration(report.Frames) * Step
	report.FrameTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)
	Collect(report, schedulers)

	logger.Info().
		Int64("frames", report.Frames).
		Int("commits", report.Games.Commits).
		Msg("simulation finished")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatal().Err(err).Msg("generate report")
	}
	fmt.Println("--- End of Report ---")
}

// NewSessions builds one bot-driven scheduler per session.
func NewSessions(n int, seed int64, speed time.Duration) []*loop.Scheduler {
	schedulers := make([]*loop.Scheduler, n)
	for i := range schedulers {
		engine := tetris.New(tetris.WithSeed(seed+int64(i)), tetris.WithSpeed(speed))
		s := loop.NewScheduler(engine)
		s.Register(&BotSystem{})
		s.Register(&loop.GravitySystem{})
		s.Register(&loop.ClearSystem{})
		schedulers[i] = s
	}
	return schedulers
}

// Frame advances every session by one Step and returns the wall time it took.
func Frame(schedulers []*loop.Scheduler) time.Duration {
	start := time.Now()
	for _, s := range schedulers {
		s.Once(Step)
	}
	return time.Since(start)
}

// Collect fills in the gameplay totals and the merged system stats.
func Collect(report *Report, schedulers []*loop.Scheduler) {
	all := make([]*loop.SchedulerStats, len(schedulers))
	for i, s := range schedulers {
		report.Games.Add(s.Engine().Stats())
		all[i] = s.GetStats()
	}
	report.Systems = MergeSystems(all)
}
