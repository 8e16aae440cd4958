package debugui_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/tetris"
)

func find(t *testing.T, fields []debugui.Field, name string) debugui.Field {
	t.Helper()
	for _, f := range fields {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("field %q not found", name)
	return debugui.Field{}
}

func TestDescribeStats(t *testing.T) {
	fields := debugui.Describe(tetris.Stats{Games: 2, Commits: 14, BestScore: 300})

	require.Len(t, fields, 5)
	assert.Equal(t, debugui.Field{Name: "Games", Value: "2"}, fields[0])
	assert.Equal(t, "14", find(t, fields, "Commits").Value)
	assert.Equal(t, "300", find(t, fields, "BestScore").Value)
}

func TestDescribeSnapshot(t *testing.T) {
	engine := tetris.New(tetris.WithSeed(1), tetris.WithSpeed(tetris.SpeedFast))
	engine.Start()
	snap := engine.State()

	fields := debugui.Describe(&snap)

	assert.Equal(t, "playing", find(t, fields, "Phase").Value)
	assert.Equal(t, snap.Session.String(), find(t, fields, "Session").Value)

	state := find(t, fields, "GameState")
	require.NotNil(t, state.Children)
	assert.Equal(t, "500ms", find(t, state.Children, "GameSpeed").Value)
	assert.Equal(t, "[20 items]", find(t, state.Children, "Board").Value)
	assert.Equal(t, "[]", find(t, state.Children, "ClearedLines").Value)
	assert.Equal(t, "true", find(t, state.Children, "IsPlaying").Value)

	current := find(t, state.Children, "Current")
	assert.Equal(t, snap.Current.Kind.String(), find(t, current.Children, "Kind").Value)

	pos := find(t, state.Children, "Position")
	assert.Equal(t, []debugui.Field{{Name: "X", Value: "3"}, {Name: "Y", Value: "0"}}, pos.Children)
}

func TestDescribeNonStruct(t *testing.T) {
	assert.Nil(t, debugui.Describe(42))
	assert.Nil(t, debugui.Describe((*tetris.Stats)(nil)))
	assert.Nil(t, debugui.Describe(time.Second))
}

func TestPerformanceStatsAverage(t *testing.T) {
	ps := debugui.NewPerformanceStats(4)
	assert.Zero(t, ps.AvgFrameTime())

	ps.Record(0.010)
	ps.Record(0.020)
	assert.InDelta(t, 7.5, ps.AvgFrameTime(), 0.001)

	for range 4 {
		ps.Record(0.016)
	}
	assert.InDelta(t, 16, ps.AvgFrameTime(), 0.001)
}
