package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/render/window"
)

// Game implements ebiten.Game. Update feeds keys to the engine and runs one
// engine frame; Draw paints whatever the render system captured.
type Game struct {
	engine   *engine.Engine
	renderer *window.Renderer
	keyboard window.Keyboard

	// Set when the debug overlay is enabled.
	imgui *debugui_ebiten.ImguiBackend
	debug *debugui.ImguiSystem
}

func (g *Game) Update() error {
	if g.imgui != nil {
		g.imgui.BeginFrame()
	}

	quit := false
	if g.debug == nil || !g.debug.InputState.Get().WantCaptureKeyboard {
		for _, act := range g.keyboard.Poll() {
			if input.Apply(g.engine, act) {
				quit = true
			}
		}
	}

	g.engine.Frame()

	if g.imgui != nil {
		g.imgui.EndFrame()
	}

	if quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)

	if g.imgui != nil {
		g.imgui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return window.ScreenSize(g.engine.Width(), g.engine.Height())
}
