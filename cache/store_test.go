package cache

import "testing"

func TestStoreGetOrCreate(t *testing.T) {
	s := New[string, int]()
	calls := 0
	create := func() int {
		calls++
		return 42
	}

	if got := s.GetOrCreate("a", create); got != 42 {
		t.Errorf("GetOrCreate() = %d, want 42", got)
	}
	if got := s.GetOrCreate("a", create); got != 42 {
		t.Errorf("GetOrCreate() = %d, want 42", got)
	}
	if calls != 1 {
		t.Errorf("create ran %d times, want 1", calls)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestStoreGet(t *testing.T) {
	s := New[string, string]()
	s.GetOrCreate("key", func() string { return "value" })

	if v, ok := s.Get("key"); !ok || v != "value" {
		t.Errorf("Get(key) = (%q, %v), want (value, true)", v, ok)
	}
	if v, ok := s.Get("missing"); ok || v != "" {
		t.Errorf("Get(missing) = (%q, %v), want zero and false", v, ok)
	}
}

func TestStoreStats(t *testing.T) {
	s := New[int, int]()

	if got := s.Stats(); got.HitRate != 0 {
		t.Errorf("empty store HitRate = %v, want 0", got.HitRate)
	}

	s.GetOrCreate(1, func() int { return 1 }) // miss
	s.GetOrCreate(1, func() int { return 1 }) // hit
	s.GetOrCreate(1, func() int { return 1 }) // hit
	s.GetOrCreate(2, func() int { return 2 }) // miss
	s.Get(3)                                  // miss

	stats := s.Stats()
	if stats.Hits != 2 {
		t.Errorf("Hits = %d, want 2", stats.Hits)
	}
	if stats.Misses != 3 {
		t.Errorf("Misses = %d, want 3", stats.Misses)
	}
	if stats.Len != 2 {
		t.Errorf("Len = %d, want 2", stats.Len)
	}
	if want := 2.0 / 5.0; stats.HitRate != want {
		t.Errorf("HitRate = %v, want %v", stats.HitRate, want)
	}
}

func TestStoreDistinctKeyTypes(t *testing.T) {
	type key struct {
		name string
		n    int
	}
	s := New[key, []float64]()

	s.GetOrCreate(key{"a", 1}, func() []float64 { return []float64{1} })
	s.GetOrCreate(key{"a", 2}, func() []float64 { return []float64{2} })

	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if v, ok := s.Get(key{"a", 1}); !ok || len(v) != 1 || v[0] != 1 {
		t.Errorf("Get() = (%v, %v), want ([1], true)", v, ok)
	}
}
