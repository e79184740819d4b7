package ecs

import (
	"fmt"
	"reflect"
	"time"
)

// Phase groups systems within one scheduler pass. Every update system runs
// before any render system.
type Phase uint8

const (
	PhaseUpdate Phase = iota
	PhaseRender
)

var allPhases = []Phase{PhaseUpdate, PhaseRender}

func (p Phase) String() string {
	switch p {
	case PhaseUpdate:
		return "update"
	case PhaseRender:
		return "render"
	}
	return fmt.Sprintf("Phase(%d)", uint8(p))
}

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	Phase          Phase
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

type scheduledSystem struct {
	system System
	phase  Phase
	stats  *systemStatsInternal
}

// Scheduler manages and executes systems in order.
type Scheduler struct {
	storage *Storage
	systems []scheduledSystem
}

// NewScheduler creates a new scheduler for the given storage.
func NewScheduler(storage *Storage) *Scheduler {
	return &Scheduler{storage: storage}
}

// Storage returns the storage systems are bound to.
func (s *Scheduler) Storage() *Storage {
	return s.storage
}

// Register adds an update-phase system.
func (s *Scheduler) Register(system System) {
	s.RegisterPhase(PhaseUpdate, system)
}

// RegisterPhase adds a system to phase and binds its Query and Singleton
// fields to the scheduler's storage.
func (s *Scheduler) RegisterPhase(phase Phase, system System) {
	if system == nil {
		panic("ecs: nil system")
	}
	s.bindFields(system)
	s.systems = append(s.systems, scheduledSystem{
		system: system,
		phase:  phase,
		stats: &systemStatsInternal{
			name:        systemName(system),
			minDuration: time.Duration(1<<63 - 1),
		},
	})
}

// storageBinder is implemented by Query and Singleton.
type storageBinder interface {
	Init(storage *Storage)
}

func (s *Scheduler) bindFields(system System) {
	systemValue := reflect.ValueOf(system)
	if systemValue.Kind() != reflect.Ptr {
		return
	}
	systemValue = systemValue.Elem()
	if systemValue.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < systemValue.NumField(); i++ {
		field := systemValue.Field(i)
		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}
		if binder, ok := field.Addr().Interface().(storageBinder); ok {
			binder.Init(s.storage)
		}
	}
}

func systemName(system System) string {
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	if name := systemType.Name(); name != "" {
		return name
	}
	return systemType.String()
}

// Once executes the systems of the given phases, or of every phase when
// none are named, then flushes the frame's commands.
func (s *Scheduler) Once(elapsed time.Duration, phases ...Phase) {
	if len(phases) == 0 {
		phases = allPhases
	}
	frame := newUpdateFrame(elapsed, s.storage)

	for _, phase := range phases {
		for _, scheduled := range s.systems {
			if scheduled.phase != phase {
				continue
			}

			start := time.Now()
			scheduled.system.Execute(frame)
			duration := time.Since(start)

			stats := scheduled.stats
			stats.executionCount++
			stats.lastDuration = duration
			stats.totalDuration += duration

			if duration < stats.minDuration {
				stats.minDuration = duration
			}
			if duration > stats.maxDuration {
				stats.maxDuration = duration
			}
		}
	}

	frame.Commands.Flush(s.storage)
}

// CollectStats returns statistics about system execution, in registration
// order. A system that never ran reports zero durations.
func (s *Scheduler) CollectStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, len(s.systems)),
	}

	var totalExecs int64
	for i, scheduled := range s.systems {
		internal := scheduled.stats
		avgDuration := time.Duration(0)
		minDuration := internal.minDuration
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		} else {
			minDuration = 0
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			Phase:          scheduled.phase,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
