package ecs

import "time"

// System is one step of a scheduled frame. Systems may declare exported
// Query and Singleton fields; the Scheduler binds them to its storage on
// registration.
type System interface {
	Execute(frame *UpdateFrame)
}

// SystemFunc adapts a function to System.
type SystemFunc func(frame *UpdateFrame)

func (f SystemFunc) Execute(frame *UpdateFrame) { f(frame) }

// UpdateFrame carries the data of one scheduler pass.
type UpdateFrame struct {
	Elapsed  time.Duration
	Commands *Commands
	Storage  *Storage
}

func newUpdateFrame(elapsed time.Duration, storage *Storage) *UpdateFrame {
	return &UpdateFrame{
		Elapsed:  elapsed,
		Commands: newCommands(),
		Storage:  storage,
	}
}
