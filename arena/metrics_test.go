package arena

import (
	"testing"
)

func TestArenaMetrics(t *testing.T) {
	a := NewArena(1024)

	// Test initial state
	if a.SizeInUse() != 0 {
		t.Errorf("Initial SizeInUse = %d, want 0", a.SizeInUse())
	}
	if a.NumChunks() != 1 {
		t.Errorf("Initial NumChunks = %d, want 1", a.NumChunks())
	}
	if a.Capacity() != 1024 {
		t.Errorf("Initial Capacity = %d, want 1024", a.Capacity())
	}
	if a.ChunkSize() != 1024 {
		t.Errorf("ChunkSize = %d, want 1024", a.ChunkSize())
	}
	if a.Utilization() != 0 {
		t.Errorf("Initial Utilization = %f, want 0", a.Utilization())
	}

	// Allocate some data
	mustAllocate(t, a, 100)
	mustAllocate(t, a, 200)

	utilization := a.Utilization()
	if utilization <= 0 || utilization > 1 {
		t.Errorf("Utilization = %f, want 0 < x <= 1", utilization)
	}

	// Force chunk growth
	mustAllocate(t, a, 2000) // Larger than chunk size
	if a.NumChunks() != 2 {
		t.Errorf("NumChunks after growth = %d, want 2", a.NumChunks())
	}

	// Test metrics snapshot
	metrics := a.Metrics()
	if metrics.SizeInUse != a.SizeInUse() {
		t.Errorf("Metrics.SizeInUse = %d, want %d", metrics.SizeInUse, a.SizeInUse())
	}
	if metrics.Capacity != a.Capacity() {
		t.Errorf("Metrics.Capacity = %d, want %d", metrics.Capacity, a.Capacity())
	}
	if metrics.NumChunks != a.NumChunks() {
		t.Errorf("Metrics.NumChunks = %d, want %d", metrics.NumChunks, a.NumChunks())
	}
	if metrics.Allocations != 3 {
		t.Errorf("Metrics.Allocations = %d, want 3", metrics.Allocations)
	}
	if metrics.Utilization != a.Utilization() {
		t.Errorf("Metrics.Utilization = %f, want %f", metrics.Utilization, a.Utilization())
	}
}

func TestArenaMetricsAfterReset(t *testing.T) {
	a := NewArena(1024)
	mustAllocate(t, a, 500)

	a.Reset()
	if a.SizeInUse() != 0 {
		t.Errorf("SizeInUse after Reset = %d, want 0", a.SizeInUse())
	}
	if a.Utilization() != 0 {
		t.Errorf("Utilization after Reset = %f, want 0", a.Utilization())
	}
	// Chunks should remain
	if a.NumChunks() == 0 || a.Capacity() == 0 {
		t.Errorf("NumChunks/Capacity after Reset = %d/%d, want non-zero", a.NumChunks(), a.Capacity())
	}
}

func TestArenaMetricsAfterRelease(t *testing.T) {
	a := NewArena(1024)
	mustAllocate(t, a, 100)

	a.Release()

	m := a.Metrics()
	if m.SizeInUse != 0 || m.NumChunks != 0 || m.Capacity != 0 || m.Utilization != 0 {
		t.Errorf("Metrics after Release = %+v, want zero usage", m)
	}
}

func TestSafeArenaMetrics(t *testing.T) {
	s := NewSafeArena(2048)
	s.SetLimit(4096)

	if _, err := s.Allocate(300); err != nil {
		t.Fatalf("Allocate error: %v", err)
	}

	if s.SizeInUse() != 300 {
		t.Errorf("SafeArena SizeInUse = %d, want 300", s.SizeInUse())
	}
	if s.NumChunks() != 1 {
		t.Errorf("SafeArena NumChunks = %d, want 1", s.NumChunks())
	}
	if s.Capacity() != 2048 {
		t.Errorf("SafeArena Capacity = %d, want 2048", s.Capacity())
	}

	utilization := s.Utilization()
	if utilization <= 0 || utilization > 1 {
		t.Errorf("SafeArena Utilization = %f, want 0 < x <= 1", utilization)
	}

	metrics := s.Metrics()
	if metrics.ChunkSize != 2048 || metrics.Limit != 4096 {
		t.Errorf("SafeArena Metrics ChunkSize/Limit = %d/%d, want 2048/4096", metrics.ChunkSize, metrics.Limit)
	}
}

func BenchmarkMetrics(b *testing.B) {
	a := NewArena(1024 * 1024)
	// Pre-allocate some data
	for i := 0; i < 100; i++ {
		mustAllocate(b, a, 1000)
	}

	b.Run("SizeInUse", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			a.SizeInUse()
		}
	})

	b.Run("Metrics", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			a.Metrics()
		}
	})
}
