// Package debugui provides immediate-mode GUI panels for a running game using Dear ImGui.
// Panels are Item entities in the engine's storage, rendered by ImguiSystem
// during the render phase, which also tracks ImGui's input capture.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/engine"
)

// Item is a component that holds a Dear ImGui render function.
// Spawn entities carrying it to render their widgets each frame.
type Item struct {
	Render func(frame *ecs.UpdateFrame)
}

// InputState tracks Dear ImGui's input capture state as a singleton component.
// Hosts use this to decide whether game keys should reach the engine.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem queries all Item components and defers their render functions.
// It also updates the InputState singleton with current input capture state.
// Register it as a render system between the backend's BeginFrame and
// EndFrame calls.
type ImguiSystem struct {
	Items      ecs.Query[struct{ *Item }]
	InputState ecs.Singleton[InputState]
}

// Execute updates input state and queues all ImGui render functions for execution.
func (s *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	state := s.InputState.Get()
	io := imgui.CurrentIO()
	state.WantCaptureMouse = io.WantCaptureMouse()
	state.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for item := range s.Items.Values() {
		render := item.Render
		frame.Commands.Defer(func() { render(frame) })
	}
}

// Install registers the Item component with e's storage, spawns one entity
// per item and adds an ImguiSystem to e's render phase.
func Install(e *engine.Engine, items ...Item) *ImguiSystem {
	storage := e.Storage()
	ecs.RegisterComponent[Item](storage.Registry())
	for _, item := range items {
		storage.Spawn(item)
	}

	system := &ImguiSystem{}
	e.AddRenderSystem(system)
	return system
}
