package loop_test

import (
	"context"
	"fmt"
	"time"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// ExampleScheduler builds the standard frame pipeline: gravity queues MoveDown
// actions and the clear system runs the line clear timer. Queued actions reach
// the engine once every system has run.
func ExampleScheduler() {
	engine := tetris.New(tetris.WithSeed(7))
	engine.Start()

	scheduler := loop.NewScheduler(engine)
	scheduler.Register(&loop.GravitySystem{})
	scheduler.Register(&loop.ClearSystem{})

	for range 4 {
		scheduler.Once(500 * time.Millisecond)
	}

	fmt.Println("row:", engine.State().Position.Y)

	for _, sys := range scheduler.GetStats().Systems {
		fmt.Println(sys.Name, sys.ExecutionCount)
	}

	// Output:
	// row: 2
	// GravitySystem 4
	// ClearSystem 4
}

// ExampleScheduler_Run drives the pipeline from a ticker until the context is
// cancelled.
func ExampleScheduler_Run() {
	engine := tetris.New(tetris.WithSeed(7))
	scheduler := loop.NewScheduler(engine)
	scheduler.Register(&loop.GravitySystem{})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	scheduler.Run(ctx, 16*time.Millisecond)

	fmt.Println("Scheduler stopped")
	// Output:
	// Scheduler stopped
}
