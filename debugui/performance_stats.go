package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/engine"
)

func NewPerformanceStats(e *engine.Engine, historyFrames int) *PerformanceStats {
	if historyFrames < 1 {
		historyFrames = 1
	}
	return &PerformanceStats{
		engine:        e,
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		frameIndex:    0,
		timer:         NewFrameTimer(),
	}
}

// Item wraps the panel as a component.
func (ps *PerformanceStats) Item() Item {
	return Item{Render: ps.Render}
}

// Record stores one frame time, in seconds, in the history ring.
func (ps *PerformanceStats) Record(deltaTime float32) {
	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
}

// AverageFrameTime returns the mean of the history in milliseconds.
func (ps *PerformanceStats) AverageFrameTime() float32 {
	var avgFrameTime float32
	for _, ft := range ps.frameHistory {
		avgFrameTime += ft
	}
	return avgFrameTime / float32(ps.historyFrames)
}

func (ps *PerformanceStats) Render(frame *ecs.UpdateFrame) {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ps.Record(ps.timer.GetDeltaTime())

	e := ps.engine
	stats := e.SchedulerStats()
	storageStats := frame.Storage.CollectStats()

	imgui.Text(fmt.Sprintf("State: %s", e.State()))
	imgui.Text(fmt.Sprintf("Drop Interval: %s", e.DropInterval()))
	imgui.Text(fmt.Sprintf("Systems: %d", stats.SystemCount))
	imgui.Text(fmt.Sprintf("System Executions: %d", stats.TotalExecutions))
	imgui.Text(fmt.Sprintf("Entities: %d  Archetypes: %d  Singletons: %d",
		storageStats.TotalEntityCount, storageStats.ArchetypeCount, storageStats.SingletonCount))

	avgFrameTime := ps.AverageFrameTime()
	var fps float32
	if avgFrameTime > 0 {
		fps = 1000.0 / avgFrameTime
	}
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, fps))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("System Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableSetupColumn("Last")
			imgui.TableHeadersRow()

			for _, system := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%s (%s)", system.Name, system.Phase))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", system.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(formatDuration(system.AvgDuration))
				imgui.TableNextColumn()
				imgui.Text(formatDuration(system.MaxDuration))
				imgui.TableNextColumn()
				imgui.Text(formatDuration(system.LastDuration))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Archetype Details") {
		for _, arch := range storageStats.ArchetypeBreakdown {
			imgui.BulletText(fmt.Sprintf("0x%X %v: %d", arch.ID, arch.ComponentTypes, arch.EntityCount))
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Singleton Details") {
		for _, line := range singletonLines(frame.Storage) {
			imgui.BulletText(line)
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Piece Counts") {
		for _, line := range pieceCountLines(e) {
			imgui.BulletText(line)
		}
		imgui.TreePop()
	}

	imgui.End()
}

func pieceCountLines(e *engine.Engine) []string {
	lines := make([]string, 0, engine.BagSize)
	for _, kind := range engine.Kinds {
		lines = append(lines, fmt.Sprintf("%s: %d", kind, e.PieceCount(kind)))
	}
	return lines
}

// singletonLines renders each singleton with its field values.
func singletonLines(storage *ecs.Storage) []string {
	var lines []string
	storage.Singletons(func(name string, value any) {
		lines = append(lines, fmt.Sprintf("%s %+v", name, value))
	})
	return lines
}

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.3f ms", float64(d)/float64(time.Millisecond))
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
