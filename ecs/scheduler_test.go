package ecs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/ecs"
)

type MovementSystem struct {
	Entities ecs.Query[struct {
		*Position
		*Velocity
	}]
	Ticks        ecs.Singleton[Counter]
	ExecuteCount int
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	s.ExecuteCount++
	s.Ticks.Get().Ticks++
	for item := range s.Entities.Values() {
		item.Position.X += item.Velocity.DX
		item.Position.Y += item.Velocity.DY
	}
}

type DrawSystem struct {
	Labels ecs.Query[struct{ *Label }]
	Drawn  []string
}

func (s *DrawSystem) Execute(frame *ecs.UpdateFrame) {
	for item := range s.Labels.Values() {
		s.Drawn = append(s.Drawn, item.Text)
	}
}

func TestSchedulerBindsFieldsAndRunsPhases(t *testing.T) {
	storage := ecs.NewStorage(newRegistry())
	scheduler := ecs.NewScheduler(storage)

	var order []string
	draw := &DrawSystem{}
	scheduler.RegisterPhase(ecs.PhaseRender, draw)
	scheduler.RegisterPhase(ecs.PhaseRender, ecs.SystemFunc(func(*ecs.UpdateFrame) { order = append(order, "render") }))
	movement := &MovementSystem{}
	scheduler.Register(movement)
	scheduler.Register(ecs.SystemFunc(func(*ecs.UpdateFrame) { order = append(order, "update") }))

	id := storage.Spawn(Position{}, Velocity{DX: 1, DY: 2})
	storage.Spawn(Label{Text: "hello"})

	scheduler.Once(16 * time.Millisecond)
	scheduler.Once(16 * time.Millisecond)

	assert.Equal(t, []string{"update", "render", "update", "render"}, order)
	assert.Equal(t, 2, movement.ExecuteCount)
	assert.Equal(t, 2, movement.Ticks.Get().Ticks)
	assert.Equal(t, Position{X: 2, Y: 4}, *ecs.ReadComponent[Position](storage, id))
	assert.Equal(t, []string{"hello", "hello"}, draw.Drawn)

	scheduler.Once(0, ecs.PhaseRender)
	assert.Equal(t, 2, movement.ExecuteCount, "render-only pass skips update systems")
	assert.Len(t, draw.Drawn, 3)
}

func TestCommandsApplyAfterPass(t *testing.T) {
	storage := ecs.NewStorage(newRegistry())
	scheduler := ecs.NewScheduler(storage)
	labels := ecs.NewQuery[struct{ *Label }](storage)

	old := storage.Spawn(Label{Text: "old"})
	var seen []int
	var deferred bool
	scheduler.Register(ecs.SystemFunc(func(frame *ecs.UpdateFrame) {
		frame.Commands.Spawn(Label{Text: "new"})
		frame.Commands.Delete(old)
		frame.Commands.Defer(func() { deferred = true })
		seen = append(seen, labels.Count())
	}))
	scheduler.Register(ecs.SystemFunc(func(*ecs.UpdateFrame) {
		seen = append(seen, labels.Count())
	}))

	scheduler.Once(time.Millisecond)

	assert.Equal(t, []int{1, 1}, seen, "structural changes wait for the flush")
	assert.True(t, deferred)
	var texts []string
	for item := range labels.Values() {
		texts = append(texts, item.Text)
	}
	assert.Equal(t, []string{"new"}, texts)
}

func TestSchedulerStats(t *testing.T) {
	storage := ecs.NewStorage(ecs.NewComponentRegistry())
	scheduler := ecs.NewScheduler(storage)

	stats := scheduler.CollectStats()
	assert.Zero(t, stats.SystemCount)
	assert.Zero(t, stats.TotalExecutions)

	scheduler.Register(&MovementSystem{})
	scheduler.RegisterPhase(ecs.PhaseRender, &DrawSystem{})

	for range 3 {
		scheduler.Once(time.Millisecond)
	}
	scheduler.Once(0, ecs.PhaseRender)

	stats = scheduler.CollectStats()
	require.Len(t, stats.Systems, 2)
	assert.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, int64(7), stats.TotalExecutions)

	move, draw := stats.Systems[0], stats.Systems[1]
	assert.Equal(t, "MovementSystem", move.Name)
	assert.Equal(t, ecs.PhaseUpdate, move.Phase)
	assert.Equal(t, int64(3), move.ExecutionCount)
	assert.Equal(t, "DrawSystem", draw.Name)
	assert.Equal(t, "render", draw.Phase.String())
	assert.Equal(t, int64(4), draw.ExecutionCount)

	for _, s := range stats.Systems {
		assert.LessOrEqual(t, s.MinDuration, s.AvgDuration)
		assert.LessOrEqual(t, s.AvgDuration, s.MaxDuration)
	}
}

func TestUnexecutedSystemReportsZeroMin(t *testing.T) {
	scheduler := ecs.NewScheduler(ecs.NewStorage(ecs.NewComponentRegistry()))
	scheduler.RegisterPhase(ecs.PhaseRender, &DrawSystem{})
	scheduler.Once(time.Millisecond, ecs.PhaseUpdate)

	s := scheduler.CollectStats().Systems[0]
	assert.Zero(t, s.ExecutionCount)
	assert.Zero(t, s.MinDuration)
}
