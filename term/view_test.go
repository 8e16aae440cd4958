package term_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/term"
	"github.com/plus3/blockfall/tetris"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 30)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func lineAt(screen tcell.Screen, x, y, n int) string {
	out := make([]rune, 0, n)
	for i := range n {
		out = append(out, runeAt(screen, x+i, y))
	}
	return string(out)
}

func TestDrawBoard(t *testing.T) {
	screen := newScreen(t)

	board, err := tetris.ParseBoard(`
T.........
`)
	require.NoError(t, err)
	engine := tetris.New(tetris.WithSeed(1), tetris.WithBoard(board))
	snap := engine.State()

	term.Draw(screen, &snap)

	sx, sy := term.CellOrigin(0, tetris.Height-1)
	assert.Equal(t, '█', runeAt(screen, sx, sy))
	assert.Equal(t, '█', runeAt(screen, sx+1, sy))

	sx, sy = term.CellOrigin(1, tetris.Height-1)
	assert.Equal(t, '·', runeAt(screen, sx+1, sy))

	assert.Equal(t, '┌', runeAt(screen, term.BoardLeft, term.BoardTop))
	assert.Equal(t, "SCORE 0", lineAt(screen, term.PanelLeft, term.BoardTop+6, 7))
	assert.Equal(t, "Press s to start", lineAt(screen, term.PanelLeft, term.BoardTop+9, 16))
}

func TestDrawActivePieceAndGhost(t *testing.T) {
	screen := newScreen(t)

	engine := tetris.New(tetris.WithSeed(1))
	engine.Start()
	snap := engine.State()

	term.Draw(screen, &snap)

	ghostY := snap.GhostY()
	for _, p := range snap.Current.Cells() {
		sx, sy := term.CellOrigin(snap.Position.X+p.X, snap.Position.Y+p.Y)
		assert.Equal(t, '█', runeAt(screen, sx, sy), "piece cell %v", p)

		gx, gy := term.CellOrigin(snap.Position.X+p.X, ghostY+p.Y)
		assert.Equal(t, '░', runeAt(screen, gx, gy), "ghost cell %v", p)
	}
}

func TestDrawClearingRows(t *testing.T) {
	screen := newScreen(t)

	board, err := tetris.ParseBoard(`
.........I
`)
	require.NoError(t, err)

	engine := tetris.New(tetris.WithSeed(1), tetris.WithBoard(board))
	snap := engine.State()
	snap.IsClearing = true
	snap.IsPlaying = true
	snap.Phase = tetris.PhaseClearing
	snap.ClearedLines = []int{tetris.Height - 1}

	term.Draw(screen, &snap)

	for x := range tetris.Width {
		sx, sy := term.CellOrigin(x, tetris.Height-1)
		assert.Equal(t, '▓', runeAt(screen, sx, sy))
	}
}
