package input

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/engine"
)

func TestDecodeTerminal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"csi arrows", "\x1b[A\x1b[B\x1b[C\x1b[D", []string{"arrow_up", "arrow_down", "arrow_right", "arrow_left"}},
		{"ss3 arrows", "\x1bOA\x1bOD", []string{"arrow_up", "arrow_left"}},
		{"letters fold to lower case", "cX", []string{"c", "x"}},
		{"space and enter", " \r", []string{"space", "enter"}},
		{"ctrl-c", "\x03", []string{"ctrl_c"}},
		{"bare escape", "\x1b", []string{"escape"}},
		{"unknown sequence dropped", "\x1b[Zc", []string{"c"}},
		{"truncated sequence dropped", "\x1b[", nil},
		{"control bytes ignored", "\x01\x7f", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DecodeTerminal([]byte(tc.in)))
		})
	}
}

func TestMapCode(t *testing.T) {
	assert.Equal(t, ActionMoveLeft, MapCode("arrow_left"))
	assert.Equal(t, ActionRotate, MapCode("arrow_up"))
	assert.Equal(t, ActionSoftDrop, MapCode("arrow_down"))
	assert.Equal(t, ActionHardDrop, MapCode("shift"))
	assert.Equal(t, ActionHold, MapCode("c"))
	assert.Equal(t, ActionStart, MapCode("space"))
	assert.Equal(t, ActionReset, MapCode("r"))
	assert.Equal(t, ActionQuit, MapCode("ctrl_c"))
	assert.Equal(t, ActionNone, MapCode("f13"))
}

func TestBindingsByActionIsSorted(t *testing.T) {
	byAction := BindingsByAction()
	assert.Equal(t, []string{"a", "arrow_left", "h"}, byAction[ActionMoveLeft])
	for act, codes := range byAction {
		assert.NotEqual(t, ActionNone, act)
		assert.IsIncreasing(t, codes)
	}
}

func TestApply(t *testing.T) {
	e, err := engine.New(engine.Options{Width: 10, Height: 20, Rand: engine.SeededRand(5), Headless: true})
	require.NoError(t, err)

	assert.False(t, Apply(e, ActionStart))
	assert.Equal(t, engine.StateRunning, e.State())

	start, _ := e.Active()
	Apply(e, ActionMoveLeft)
	p, _ := e.Active()
	assert.Equal(t, start.X-1, p.X)

	Apply(e, ActionRotate)
	p, _ = e.Active()
	assert.Equal(t, (start.Rotation+1)%4, p.Rotation)

	Apply(e, ActionSoftDropPress)
	assert.True(t, e.SoftDropHeld())
	Apply(e, ActionSoftDropRelease)
	assert.False(t, e.SoftDropHeld())

	Apply(e, ActionHold)
	_, held := e.Held()
	assert.True(t, held)

	Apply(e, ActionStart)
	assert.Equal(t, engine.StatePaused, e.State())
	Apply(e, ActionStart)
	assert.Equal(t, engine.StateRunning, e.State())

	for e.State() != engine.StateGameOver {
		Apply(e, ActionHardDrop)
	}
	Apply(e, ActionStart)
	assert.Equal(t, engine.StateRunning, e.State(), "start after game over restarts")
	assert.Zero(t, e.Stats().Score)

	assert.True(t, Apply(e, ActionQuit))
}

func TestTerminalRunSendsBoundActions(t *testing.T) {
	term := NewTerminalReader(strings.NewReader("\x1b[Dzc q"))
	out := make(chan Action, 16)

	err := term.Run(context.Background(), out)
	require.NoError(t, err)

	var got []Action
	for act := range out {
		got = append(got, act)
	}
	assert.Equal(t, []Action{ActionMoveLeft, ActionHold, ActionStart, ActionQuit}, got)

	cols, rows := term.Size()
	assert.Equal(t, 80, cols)
	assert.Equal(t, 24, rows)
	assert.NoError(t, term.Close())
}

func TestTerminalRunStopsOnCancel(t *testing.T) {
	term := NewTerminalReader(strings.NewReader("cccc"))
	out := make(chan Action)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := term.Run(ctx, out)
	assert.ErrorIs(t, err, context.Canceled)
}
