package vector

import "testing"

func TestMetrics(t *testing.T) {
	v := mustNew[uint32](t)
	for i := range 20 {
		v.PushBack(uint32(i))
	}
	for range 12 {
		v.PopFront()
	}

	m := v.Metrics()
	want := Metrics{
		Len:           8,
		Cap:           16,
		ElemSize:      4,
		BytesInUse:    32,
		BytesReserved: 64,
		Utilization:   0.5,
		Grows:         2,
		Shrinks:       1,
	}
	if m != want {
		t.Errorf("Metrics = %+v, want %+v", m, want)
	}
}

func TestMetricsNilAndFreed(t *testing.T) {
	var nilVec *Raw
	if m := nilVec.Metrics(); m != (Metrics{}) {
		t.Errorf("nil Metrics = %+v, want zero", m)
	}

	v := mustRaw(t, 8)
	v.PushBack(make([]byte, 8))
	v.Free()
	if u := v.Utilization(); u != 0 {
		t.Errorf("Utilization after Free = %f, want 0", u)
	}
	if m := v.Metrics(); m.Cap != 0 || m.BytesReserved != 0 {
		t.Errorf("Metrics after Free = %+v", m)
	}
}

func BenchmarkMetrics(b *testing.B) {
	v := mustNew[uint64](b)
	v.Append(make([]uint64, 100))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Metrics()
	}
}
