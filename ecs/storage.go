package ecs

import (
	"reflect"
	"sort"
)

// Storage holds entities grouped by archetype, plus singleton components
// that belong to no entity.
type Storage struct {
	archetypes map[uint32]*Archetype
	registry   *ComponentRegistry
	singletons map[reflect.Type]*singletonEntry
	// singletonOrder keeps insertion order for stats and inspectors.
	singletonOrder []reflect.Type
}

type singletonEntry struct {
	// ptr is a *T for the singleton's type T.
	ptr any
}

// NewStorage creates an empty storage backed by registry.
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		archetypes: make(map[uint32]*Archetype),
		registry:   registry,
		singletons: make(map[reflect.Type]*singletonEntry),
	}
}

// Registry returns the component registry entities are checked against.
func (s *Storage) Registry() *ComponentRegistry {
	return s.registry
}

// Spawn creates a new entity with the provided components.
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}

	types := extractComponentTypes(components)
	archetypeId := hashTypesToUint32(types)

	archetype, exists := s.archetypes[archetypeId]
	if !exists {
		archetype = NewArchetype(archetypeId, types, s.registry)
		s.archetypes[archetypeId] = archetype
	}

	entityIndex := archetype.Spawn(components)
	return NewEntityId(archetypeId, entityIndex)
}

// Delete removes all data related to the entity ID.
func (s *Storage) Delete(id EntityId) {
	archetype, ok := s.archetypes[id.ArchetypeId()]
	if !ok {
		return
	}
	archetype.Delete(id.Index())
}

// GetComponent returns a pointer to the entity's component of compType, or nil.
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	archetype, ok := s.archetypes[id.ArchetypeId()]
	if !ok {
		return nil
	}
	return archetype.GetComponent(id.Index(), compType)
}

// HasComponent checks if an entity has a specific component type.
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	return s.GetComponent(id, compType) != nil
}

// Archetypes returns every archetype, ordered by id.
func (s *Storage) Archetypes() []*Archetype {
	out := make([]*Archetype, 0, len(s.archetypes))
	for _, a := range s.archetypes {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// AddSingleton stores value as the singleton of its type, replacing any
// previous value in place so existing Singleton handles see the new one.
func (s *Storage) AddSingleton(value any) {
	t := componentType(value)
	if entry, ok := s.singletons[t]; ok {
		reflect.ValueOf(entry.ptr).Elem().Set(reflect.Indirect(reflect.ValueOf(value)))
		return
	}

	ptr := reflect.New(t)
	ptr.Elem().Set(reflect.Indirect(reflect.ValueOf(value)))
	s.singletons[t] = &singletonEntry{ptr: ptr.Interface()}
	s.singletonOrder = append(s.singletonOrder, t)
}

func (s *Storage) getSingletonEntry(t reflect.Type) *singletonEntry {
	return s.singletons[t]
}

// Singletons calls fn with the type name and a pointer to each singleton,
// in the order they were added.
func (s *Storage) Singletons(fn func(name string, value any)) {
	for _, t := range s.singletonOrder {
		fn(t.String(), s.singletons[t].ptr)
	}
}

// componentType returns the value type of a component, looking through one
// level of pointer.
func componentType(comp any) reflect.Type {
	t := reflect.TypeOf(comp)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// extractComponentTypes extracts and sorts component types from a slice of components.
func extractComponentTypes(components []any) []reflect.Type {
	types := make([]reflect.Type, 0, len(components))
	for _, comp := range components {
		compType := componentType(comp)

		// Components are value types: structs or primitives.
		switch compType.Kind() {
		case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func:
			panic("components cannot be pointers, maps, channels, or functions")
		}

		types = append(types, compType)
	}
	sort.Sort(byTypeName(types))
	return types
}

// hashTypesToUint32 folds the names of sorted types with 32-bit FNV-1a.
func hashTypesToUint32(types []reflect.Type) uint32 {
	var h uint32 = 2166136261     // FNV-1a 32-bit offset basis
	const prime uint32 = 16777619 // FNV-1a 32-bit prime

	for _, t := range types {
		name := t.PkgPath() + "." + t.String()
		for i := 0; i < len(name); i++ {
			h ^= uint32(name[i])
			h *= prime
		}
		// Separator so {ab, c} and {a, bc} differ.
		h ^= 0xFF
		h *= prime
	}

	return h
}

// ComponentReader looks up components by entity.
type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent returns the entity's T, or nil.
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	comp, _ := reader.GetComponent(entityId, reflect.TypeFor[T]()).(*T)
	return comp
}
