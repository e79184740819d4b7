package ecs

import (
	"iter"
	"reflect"
)

// Query iterates every entity that carries all of a set of components.
// T must be a struct whose exported fields (usually embedded) are pointers
// to component types, e.g. Query[struct{ *Position; *Velocity }].
type Query[T any] struct {
	storage            *Storage
	types              []reflect.Type
	cachedArchetypes   []*Archetype
	lastArchetypeCount int
}

// NewQuery creates a Query bound to storage.
func NewQuery[T any](storage *Storage) *Query[T] {
	q := &Query[T]{}
	q.Init(storage)
	return q
}

// Init binds the query to storage. The Scheduler calls this for Query
// fields of registered systems.
func (q *Query[T]) Init(storage *Storage) {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("Query type parameter must be a struct")
	}

	q.types = make([]reflect.Type, 0, structType.NumField())
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if field.Type.Kind() != reflect.Ptr {
			panic("Query struct fields must be pointer types")
		}
		if !field.IsExported() {
			panic("Query struct field " + field.Name + " must be exported")
		}
		q.types = append(q.types, field.Type.Elem())
	}

	q.storage = storage
	q.cachedArchetypes = nil
	q.lastArchetypeCount = -1
}

func (q *Query[T]) matches(archetype *Archetype) bool {
	for _, t := range q.types {
		if !archetype.HasComponent(t) {
			return false
		}
	}
	return true
}

// archetypes returns the matching archetypes, rebuilding the cache when
// the storage has grown new ones.
func (q *Query[T]) archetypes() []*Archetype {
	if q.storage == nil {
		panic("Query used before Init")
	}
	if n := len(q.storage.archetypes); n != q.lastArchetypeCount {
		q.cachedArchetypes = q.cachedArchetypes[:0]
		for _, archetype := range q.storage.Archetypes() {
			if q.matches(archetype) {
				q.cachedArchetypes = append(q.cachedArchetypes, archetype)
			}
		}
		q.lastArchetypeCount = n
	}
	return q.cachedArchetypes
}

// Iter returns an iterator over entity IDs and their populated view structs.
func (q *Query[T]) Iter() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		for _, archetype := range q.archetypes() {
			columns := make([]int, len(q.types))
			for i, t := range q.types {
				columns[i] = archetype.columnOf(t)
			}

			for id := range archetype.Iter() {
				var result T
				rv := reflect.ValueOf(&result).Elem()
				for i, col := range columns {
					rv.Field(i).Set(reflect.ValueOf(archetype.storages[col].Get(int(id.Index()))))
				}
				if !yield(id, result) {
					return
				}
			}
		}
	}
}

// Values returns an iterator over the view structs only.
func (q *Query[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range q.Iter() {
			if !yield(item) {
				return
			}
		}
	}
}

// Count returns the number of matching entities.
func (q *Query[T]) Count() int {
	n := 0
	for _, archetype := range q.archetypes() {
		n += archetype.Len()
	}
	return n
}
