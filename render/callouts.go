package render

import (
	"time"

	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/engine"
)

// Callout is a short-lived HUD message such as "DOUBLE" or "LEVEL 3".
type Callout struct {
	Text      string
	TTL       time.Duration
	Remaining time.Duration
	// Good marks celebratory callouts (tetris, level up).
	Good bool
}

// Fade returns the fraction of the callout's lifetime still left.
func (c Callout) Fade() float64 {
	if c.TTL <= 0 {
		return 0
	}
	return float64(c.Remaining) / float64(c.TTL)
}

const maxCallouts = 4

// Callouts turns line clears and level ups into timed HUD messages. It is
// both an engine observer (to create them) and an effect system (to age
// them), so callouts freeze while the game is paused.
type Callouts struct {
	locale *Locale
	items  []Callout
}

func NewCallouts(locale *Locale) *Callouts {
	return &Callouts{locale: locale}
}

func (c *Callouts) Notify(ev engine.Event) {
	switch ev := ev.(type) {
	case engine.LineCleared:
		c.add(c.lineCallout(ev.Cleared, ev.Points))
	case engine.LevelUp:
		c.add(Callout{
			Text: c.locale.Get("CALLOUT_LEVEL", ev.Level),
			TTL:  1700 * time.Millisecond,
			Good: true,
		})
	case engine.GameOver, engine.GameReset:
		c.items = c.items[:0]
	}
}

func (c *Callouts) lineCallout(cleared, gained int) Callout {
	switch {
	case cleared >= 4:
		return Callout{Text: c.locale.Get("CALLOUT_TETRIS", gained), TTL: 1900 * time.Millisecond, Good: true}
	case cleared == 3:
		return Callout{Text: c.locale.Get("CALLOUT_TRIPLE"), TTL: 1400 * time.Millisecond, Good: true}
	case cleared == 2:
		return Callout{Text: c.locale.Get("CALLOUT_DOUBLE"), TTL: 1200 * time.Millisecond}
	default:
		return Callout{Text: c.locale.Get("CALLOUT_LINE"), TTL: 1000 * time.Millisecond}
	}
}

func (c *Callouts) add(callout Callout) {
	callout.Remaining = callout.TTL
	if len(c.items) == maxCallouts {
		c.items = append(c.items[:0], c.items[1:]...)
	}
	c.items = append(c.items, callout)
}

// Execute ages every callout by the frame's elapsed time and drops the
// expired ones.
func (c *Callouts) Execute(frame *ecs.UpdateFrame) {
	live := c.items[:0]
	for _, item := range c.items {
		item.Remaining -= frame.Elapsed
		if item.Remaining > 0 {
			live = append(live, item)
		}
	}
	c.items = live
}

// Active returns a copy of the live callouts, oldest first.
func (c *Callouts) Active() []Callout {
	return append([]Callout(nil), c.items...)
}
