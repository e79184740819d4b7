package engine

import (
	"context"
	"time"
)

// Driver is an external frame scheduler for hosts without their own render
// loop. It calls Frame on every tick of a ticker.
type Driver struct {
	Engine   *Engine
	Interval time.Duration

	// Before runs on the driver goroutine ahead of each frame, for example
	// to drain queued input. Optional.
	Before func()
	// After runs after each frame, for example to draw. Optional.
	After func()
}

// Run drives the engine until ctx is cancelled.
func (d *Driver) Run(ctx context.Context) {
	interval := d.Interval
	if interval <= 0 {
		interval = time.Second / 60
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Both cases may be ready; cancellation wins.
			if ctx.Err() != nil {
				return
			}
			if d.Before != nil {
				d.Before()
			}
			d.Engine.Frame()
			if d.After != nil {
				d.After()
			}
		}
	}
}
