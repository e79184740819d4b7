package debugui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/render"
)

func NewInspector(e *engine.Engine, cellSize float32, maxEvents int) *Inspector {
	return &Inspector{
		engine:    e,
		cellSize:  cellSize,
		showGhost: true,
		maxEvents: maxEvents,
	}
}

// Item wraps the panel as a component.
func (in *Inspector) Item() Item {
	return Item{Render: in.Render}
}

// Notify keeps a short log of the notable engine events.
func (in *Inspector) Notify(ev engine.Event) {
	line := describeEvent(ev)
	if line == "" {
		return
	}
	in.lastEvents = append(in.lastEvents, line)
	if over := len(in.lastEvents) - in.maxEvents; over > 0 {
		in.lastEvents = in.lastEvents[over:]
	}
}

// Events returns the recorded event lines, oldest first.
func (in *Inspector) Events() []string {
	return append([]string(nil), in.lastEvents...)
}

func describeEvent(ev engine.Event) string {
	switch ev := ev.(type) {
	case engine.LineCleared:
		return fmt.Sprintf("cleared %d row(s) %v", ev.Cleared, ev.Rows)
	case engine.LevelUp:
		return fmt.Sprintf("level %d", ev.Level)
	case engine.HighScore:
		return fmt.Sprintf("high score %d (was %d)", ev.Score, ev.Previous)
	case engine.GameOver:
		return fmt.Sprintf("game over at %d", ev.Stats.Score)
	case engine.GameReset:
		return "reset"
	}
	return ""
}

func (in *Inspector) Render(*ecs.UpdateFrame) {
	if !imgui.BeginV("Game Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	e := in.engine

	if imgui.Button(pauseLabel(e.State())) {
		e.TogglePause()
	}
	imgui.SameLine()
	if imgui.Button("Reset") {
		e.Reset(false)
	}
	imgui.SameLine()
	imgui.Checkbox("Ghost", &in.showGhost)

	imgui.Separator()
	stats := e.Stats()
	imgui.Text(fmt.Sprintf("State: %s", e.State()))
	imgui.Text(fmt.Sprintf("Score: %d  High: %d", stats.Score, e.HighScore()))
	imgui.Text(fmt.Sprintf("Level: %d  Lines: %d", stats.Level, stats.Lines))
	imgui.Text(fmt.Sprintf("Next: %s", queueText(e.Next(engine.BagSize))))
	if held, ok := e.Held(); ok {
		imgui.Text(fmt.Sprintf("Held: %s (used: %t)", held, e.HoldUsed()))
	} else {
		imgui.Text("Held: -")
	}
	if p, ok := e.Active(); ok {
		imgui.Text(fmt.Sprintf("Active: %s x=%d y=%d rot=%d fall=%.2f",
			p.Kind, p.X, p.Y, p.Rotation, e.FallProgress()))
	}

	imgui.Separator()
	in.drawBoard(e.Snapshot())

	if imgui.TreeNodeStr("Recent Events") {
		for _, line := range in.lastEvents {
			imgui.BulletText(line)
		}
		imgui.TreePop()
	}

	imgui.End()
}

func pauseLabel(s engine.State) string {
	switch s {
	case engine.StateRunning:
		return "Pause"
	case engine.StateGameOver:
		return "Restart"
	}
	return "Start"
}

func queueText(kinds []engine.Kind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, " ")
}

func (in *Inspector) drawBoard(snap engine.Snapshot) {
	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()
	size := in.cellSize

	cell := func(x, y int, c uint32) {
		topLeft := imgui.NewVec2(origin.X+float32(x)*size, origin.Y+float32(y)*size)
		bottomRight := imgui.NewVec2(topLeft.X+size-1, topLeft.Y+size-1)
		drawList.AddRectFilled(topLeft, bottomRight, c)
	}

	for y, row := range snap.Cells {
		for x, kind := range row {
			c := render.BackgroundEven
			if (x+y)%2 == 1 {
				c = render.BackgroundOdd
			}
			if kind != engine.Empty {
				c = render.ShadesOf(kind).Base
			}
			cell(x, y, colorU32(c, 1))
		}
	}
	if snap.Active != nil {
		if in.showGhost {
			for _, p := range snap.GhostCells() {
				cell(p.X, p.Y, colorU32(render.ShadesOf(snap.Active.Kind).Base, 0.3))
			}
		}
		for _, p := range snap.ActiveAt {
			if p.Y >= 0 {
				cell(p.X, p.Y, colorU32(render.ShadesOf(snap.Active.Kind).Highlight, 1))
			}
		}
	}

	imgui.Dummy(imgui.NewVec2(float32(snap.Width)*size, float32(snap.Height)*size))
}

func colorU32(c color.RGBA, alpha float32) uint32 {
	return imgui.ColorU32Vec4(imgui.NewVec4(
		float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, alpha))
}
