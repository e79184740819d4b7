// Package store provides the small string-keyed persistence the game needs
// for its high score, with in-memory, JSON file and SQLite backends.
package store

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
)

// ErrNotFound is returned by Get when the key has never been set.
var ErrNotFound = errors.New("store: key not found")

// Store is a string-keyed value store.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// Memory is a Store backed by a map. The zero value is ready to use.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	return nil
}

// GetInt reads key and parses it as a base-10 integer.
func GetInt(s Store, key string) (int, error) {
	raw, err := s.Get(key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("store: parse %q: %w", key, err)
	}
	return n, nil
}

// SetInt writes n under key in base 10.
func SetInt(s Store, key string, n int) error {
	return s.Set(key, strconv.Itoa(n))
}

// Open returns the backend named by kind ("memory", "file" or "sqlite").
// The returned close function is never nil.
func Open(kind, path string) (Store, func() error, error) {
	noop := func() error { return nil }
	switch kind {
	case "", "memory":
		return NewMemory(), noop, nil
	case "file":
		return NewFile(path), noop, nil
	case "sqlite":
		s, err := OpenSQLite(path)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	}
	return nil, noop, fmt.Errorf("store: unknown backend %q", kind)
}
