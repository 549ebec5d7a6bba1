package vector

// Metrics contains statistical information about a vector.
type Metrics struct {
	Len           int     // Live elements
	Cap           int     // Element slots in the buffer
	ElemSize      int     // Bytes per element
	BytesInUse    int     // Len * ElemSize
	BytesReserved int     // Cap * ElemSize
	Utilization   float64 // Ratio of Len to Cap (0.0-1.0)
	Grows         int     // Buffer growths
	Shrinks       int     // Buffer halvings
}

// Utilization returns the ratio of length to capacity (0.0 to 1.0).
// Returns 0.0 for a nil or freed vector.
func (v *Raw) Utilization() float64 {
	if v == nil || v.capacity == 0 {
		return 0
	}
	return float64(v.length) / float64(v.capacity)
}

// Metrics returns a snapshot of vector statistics. A nil vector reports
// zero values.
func (v *Raw) Metrics() Metrics {
	if v == nil {
		return Metrics{}
	}
	return Metrics{
		Len:           v.length,
		Cap:           v.capacity,
		ElemSize:      v.elemSize,
		BytesInUse:    v.length * v.elemSize,
		BytesReserved: v.capacity * v.elemSize,
		Utilization:   v.Utilization(),
		Grows:         v.grows,
		Shrinks:       v.shrinks,
	}
}
