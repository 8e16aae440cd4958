package tetris_test

import (
	"fmt"
	"strings"

	"github.com/plus3/blockfall/tetris"
)

// ExampleClearLines shows a full bottom row being removed while the rows above
// it shift down by one.
func ExampleClearLines() {
	board, err := tetris.ParseBoard(`
T.........
IIIIIIIIII
`)
	if err != nil {
		panic(err)
	}

	cleared, rows := tetris.ClearLines(board)
	lines := strings.Split(cleared.String(), "\n")

	fmt.Println(rows)
	fmt.Println(lines[18])
	fmt.Println(lines[19])

	// Output:
	// [19]
	// ..........
	// T.........
}

// ExampleIsColliding probes an O piece against the floor of an empty board.
func ExampleIsColliding() {
	var board tetris.Board
	o := tetris.Template(tetris.KindO)

	fmt.Println(tetris.IsColliding(&board, o, tetris.Position{X: 3, Y: 18}))
	fmt.Println(tetris.IsColliding(&board, o, tetris.Position{X: 3, Y: 19}))

	// Output:
	// false
	// true
}

// ExampleEngine walks an engine through its lifecycle. Movement only takes
// effect while the game is playing.
func ExampleEngine() {
	engine := tetris.New(tetris.WithSeed(1))
	fmt.Println(engine.Phase())

	engine.Dispatch(tetris.Action{Type: tetris.ActionStart})
	fmt.Println(engine.Phase())

	engine.Dispatch(tetris.SpeedAction(tetris.SpeedFast))
	fmt.Println(engine.Speed())

	engine.Dispatch(tetris.Action{Type: tetris.ActionRestart})
	fmt.Println(engine.Phase(), engine.State().Score)

	// Output:
	// idle
	// playing
	// 500ms
	// idle 0
}

// ExampleTetromino_Rotate prints the T piece after one clockwise turn.
func ExampleTetromino_Rotate() {
	t := tetris.Template(tetris.KindT).Rotate()
	for _, row := range t.Shape {
		for _, filled := range row {
			if filled {
				fmt.Print("#")
			} else {
				fmt.Print(".")
			}
		}
		fmt.Println()
	}

	// Output:
	// #.
	// ##
	// #.
}
