// Package render defines the drawing surface the game hosts plug into the
// engine, together with the pieces every backend shares: the palette, the
// localized HUD text and the line-clear callouts.
package render

import (
	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/engine"
)

// View is everything a backend draws for one frame.
type View struct {
	engine.Snapshot
	Callouts []Callout
}

// Renderer defines the interface for drawing backends. Implementations
// include the terminal and the ebiten window.
type Renderer interface {
	// Init prepares colours, fonts or the window.
	Init() error

	// RenderFrame draws a complete frame: board, active and ghost piece,
	// preview, hold slot and HUD.
	RenderFrame(v View)

	// Close releases whatever Init acquired.
	Close() error
}

// RenderSystem is the engine render system that feeds a Renderer.
type RenderSystem struct {
	Engine   *engine.Engine
	Renderer Renderer
	// Callouts is optional.
	Callouts *Callouts
}

// NewSystem builds a render system drawing e through r.
func NewSystem(e *engine.Engine, r Renderer, callouts *Callouts) *RenderSystem {
	return &RenderSystem{Engine: e, Renderer: r, Callouts: callouts}
}

func (s *RenderSystem) Execute(*ecs.UpdateFrame) {
	view := View{Snapshot: s.Engine.Snapshot()}
	if s.Callouts != nil {
		view.Callouts = s.Callouts.Active()
	}
	s.Renderer.RenderFrame(view)
}

// Attach registers the callouts (if any) as observer and effect system,
// and r as a render system.
func Attach(e *engine.Engine, r Renderer, callouts *Callouts) {
	if callouts != nil {
		e.AddObserver(callouts)
		e.AddSystem(callouts)
	}
	e.AddRenderSystem(NewSystem(e, r, callouts))
}
