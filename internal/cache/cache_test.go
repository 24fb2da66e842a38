package cache

import (
	"testing"
	"time"
)

// fakeClock pins timeNow for a test and restores it on cleanup.
func fakeClock(t *testing.T) *time.Time {
	t.Helper()
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return now }
	t.Cleanup(func() { timeNow = time.Now })
	return &now
}

func TestEmptySlotMissesBothWays(t *testing.T) {
	fakeClock(t)
	s := New[[]string](5 * time.Minute)

	if _, ok := s.Get(); ok {
		t.Error("Get on empty slot = hit, want miss")
	}
	if _, ok := s.Stale(); ok {
		t.Error("Stale on empty slot = hit, want miss")
	}
	if _, ok := s.Age(); ok {
		t.Error("Age on empty slot reported a value")
	}
}

func TestGetWithinTTL(t *testing.T) {
	now := fakeClock(t)
	s := New[[]string](5 * time.Minute)
	s.Set([]string{"a", "b"})

	*now = now.Add(4 * time.Minute)
	v, ok := s.Get()
	if !ok {
		t.Fatal("Get within TTL = miss, want hit")
	}
	if len(v) != 2 {
		t.Errorf("len(v) = %d, want 2", len(v))
	}
}

func TestGetAfterTTLExpires(t *testing.T) {
	now := fakeClock(t)
	s := New[string](5 * time.Minute)
	s.Set("fresh")

	*now = now.Add(5*time.Minute + time.Second)
	if _, ok := s.Get(); ok {
		t.Error("Get past TTL = hit, want miss")
	}
	// The value is still reachable through the stale path.
	v, ok := s.Stale()
	if !ok || v != "fresh" {
		t.Errorf("Stale = (%q, %v), want (%q, true)", v, ok, "fresh")
	}
}

func TestSetReplacesWholeValue(t *testing.T) {
	now := fakeClock(t)
	s := New[[]int](time.Minute)
	s.Set([]int{1, 2, 3})

	*now = now.Add(2 * time.Minute)
	s.Set([]int{9})

	v, ok := s.Get()
	if !ok {
		t.Fatal("Get after Set = miss, want hit")
	}
	if len(v) != 1 || v[0] != 9 {
		t.Errorf("v = %v, want [9]", v)
	}
	if age, _ := s.Age(); age != 0 {
		t.Errorf("age after Set = %v, want 0", age)
	}
}

func TestZeroTTLNeverExpires(t *testing.T) {
	now := fakeClock(t)
	s := New[int](0)
	s.Set(7)

	*now = now.Add(1000 * time.Hour)
	if v, ok := s.Get(); !ok || v != 7 {
		t.Errorf("Get = (%d, %v), want (7, true)", v, ok)
	}
}
