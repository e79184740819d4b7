package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/blockfall/input"
)

// keyCodes names the window keys using the same codes as the terminal.
var keyCodes = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyArrowRight, "arrow_right"},
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyShift, "shift"},
	{ebiten.KeySpace, "space"},
	{ebiten.KeyEscape, "escape"},
	{ebiten.KeyA, "a"},
	{ebiten.KeyC, "c"},
	{ebiten.KeyD, "d"},
	{ebiten.KeyH, "h"},
	{ebiten.KeyJ, "j"},
	{ebiten.KeyK, "k"},
	{ebiten.KeyL, "l"},
	{ebiten.KeyP, "p"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyR, "r"},
	{ebiten.KeyS, "s"},
	{ebiten.KeyW, "w"},
	{ebiten.KeyX, "x"},
}

// Auto-repeat for sideways movement, in ticks at 60 TPS.
const (
	repeatDelay    = 10
	repeatInterval = 3
)

// keyState is one key's edge and hold information for the current tick.
type keyState struct {
	code     string
	pressed  bool
	released bool
	// ticks the key has been held, 0 when up.
	duration int
}

// Keyboard polls ebiten's key state once per Update.
type Keyboard struct {
	states []keyState
	buf    []input.Action
	// softDropKeys counts the soft drop keys currently held.
	softDropKeys int
}

// Poll returns the actions triggered since the previous tick. Soft drop is
// reported as press and release so the engine can repeat it while held;
// sideways moves auto-repeat after a short delay.
func (k *Keyboard) Poll() []input.Action {
	k.states = k.states[:0]
	for _, kc := range keyCodes {
		k.states = append(k.states, keyState{
			code:     kc.code,
			pressed:  inpututil.IsKeyJustPressed(kc.key),
			released: inpututil.IsKeyJustReleased(kc.key),
			duration: inpututil.KeyPressDuration(kc.key),
		})
	}
	return k.actions(k.states)
}

func (k *Keyboard) actions(states []keyState) []input.Action {
	k.buf = k.buf[:0]
	for _, s := range states {
		act := input.MapCode(s.code)
		switch act {
		case input.ActionNone:
		case input.ActionSoftDrop:
			// Several keys share soft drop; it stays held until the last
			// of them is released.
			if s.pressed {
				if k.softDropKeys == 0 {
					k.buf = append(k.buf, input.ActionSoftDropPress)
				}
				k.softDropKeys++
			}
			if s.released && k.softDropKeys > 0 {
				k.softDropKeys--
				if k.softDropKeys == 0 {
					k.buf = append(k.buf, input.ActionSoftDropRelease)
				}
			}
		case input.ActionMoveLeft, input.ActionMoveRight:
			if repeats(s.duration) {
				k.buf = append(k.buf, act)
			}
		default:
			if s.pressed {
				k.buf = append(k.buf, act)
			}
		}
	}
	return k.buf
}

// repeats reports whether a key held for d ticks fires this tick.
func repeats(d int) bool {
	switch {
	case d == 1:
		return true
	case d < repeatDelay:
		return false
	default:
		return (d-repeatDelay)%repeatInterval == 0
	}
}
