package ecs

import "reflect"

// Singleton provides access to a single component instance that is not
// associated with any entity. Use it for game-wide state such as timers.
type Singleton[T any] struct {
	storage *Storage
	ptr     *T
}

// NewSingleton returns a handle to the T singleton of storage. If none
// exists yet it is created from initializer, or from the zero value.
func NewSingleton[T any](storage *Storage, initializer ...T) *Singleton[T] {
	s := &Singleton[T]{}
	s.bind(storage, initializer...)
	return s
}

// Init binds the handle to storage, creating a zero singleton if needed.
// The Scheduler calls this for Singleton fields of registered systems.
func (s *Singleton[T]) Init(storage *Storage) {
	s.bind(storage)
}

func (s *Singleton[T]) bind(storage *Storage, initializer ...T) {
	t := reflect.TypeFor[T]()
	if storage.getSingletonEntry(t) == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		storage.AddSingleton(value)
	}
	s.storage = storage
	s.ptr = storage.getSingletonEntry(t).ptr.(*T)
}

// Get returns a pointer to the singleton, or nil for an unbound handle.
func (s *Singleton[T]) Get() *T {
	return s.ptr
}

// Exists reports whether the handle is bound to a storage.
func (s *Singleton[T]) Exists() bool {
	return s.ptr != nil
}
