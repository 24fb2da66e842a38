// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cache provides a single-slot in-memory store with a time-to-live.
// The slot holds exactly one generation of data: Set replaces the whole
// value, never merges. The zero-adjacent state (nothing stored yet) reports
// misses on both Get and Stale.
package cache

import (
	"sync"
	"time"
)

// timeNow is swapped by tests to control the clock.
var timeNow = time.Now

// Slot is a time-boxed holder for one value of type T. It is safe for
// concurrent use; replacement is atomic under the write lock.
type Slot[T any] struct {
	mu     sync.RWMutex
	ttl    time.Duration
	value  T
	stored time.Time
	has    bool
}

// New returns an empty Slot whose entries stay fresh for ttl.
// A ttl of 0 means stored values never go stale.
func New[T any](ttl time.Duration) *Slot[T] {
	return &Slot[T]{ttl: ttl}
}

// Get returns the stored value while it is younger than the TTL.
func (s *Slot[T]) Get() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.has || (s.ttl > 0 && timeNow().Sub(s.stored) > s.ttl) {
		var zero T
		return zero, false
	}
	return s.value, true
}

// Stale returns the stored value regardless of its age. This is the
// fallback path when a refresh fails: old data beats no data.
func (s *Slot[T]) Stale() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.has {
		var zero T
		return zero, false
	}
	return s.value, true
}

// Set replaces the stored value and restarts the TTL window.
func (s *Slot[T]) Set(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = v
	s.stored = timeNow()
	s.has = true
}

// Age returns how long ago the value was stored, and whether one exists.
func (s *Slot[T]) Age() (time.Duration, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.has {
		return 0, false
	}
	return timeNow().Sub(s.stored), true
}
