package input_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/tetris"
)

func TestRepeat(t *testing.T) {
	frame := 16 * time.Millisecond

	tests := []struct {
		held time.Duration
		want bool
	}{
		{0, false},
		{499 * time.Millisecond, false},
		{500 * time.Millisecond, true},
		{516 * time.Millisecond, false},
		{540 * time.Millisecond, false},
		{550 * time.Millisecond, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, input.Repeat(tt.held, frame), "held %s", tt.held)
	}
	assert.False(t, input.Repeat(time.Second, 0))
}

func TestRepeatCountOverOneSecond(t *testing.T) {
	frame := 10 * time.Millisecond

	n := 0
	for held := frame; held <= time.Second; held += frame {
		if input.Repeat(held, frame) {
			n++
		}
	}

	assert.Equal(t, 11, n)
}

func TestHeldArrowDownEscalatesToDrop(t *testing.T) {
	var kb input.Keyboard
	r := &recorder{active: true}
	frame := 10 * time.Millisecond

	kb.KeyDown(r, input.KeyDown, t0)
	for held := frame; held <= 560*time.Millisecond; held += frame {
		if input.Repeat(held, frame) {
			kb.KeyDown(r, input.KeyDown, t0.Add(held))
		}
	}

	assert.Equal(t, []tetris.ActionType{
		tetris.ActionMoveDown,
		tetris.ActionMoveDown,
		tetris.ActionInstantDrop,
	}, r.actions)
}
