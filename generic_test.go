package vector

import (
	"bytes"
	"errors"
	"testing"
)

type point struct {
	X, Y float64
	Tag  int8
}

func TestRoundTripElementSizes(t *testing.T) {
	for size := 1; size <= 64; size++ {
		v := mustRaw(t, size)
		for i := range 20 {
			value := bytes.Repeat([]byte{byte(size + i)}, size)
			if err := v.PushBack(value); err != nil {
				t.Fatalf("size %d: PushBack error: %v", size, err)
			}
			got, err := v.View(v.Len() - 1)
			if err != nil {
				t.Fatalf("size %d: View error: %v", size, err)
			}
			if !bytes.Equal(got, value) {
				t.Fatalf("size %d: View(%d) = %v, want %v", size, v.Len()-1, got, value)
			}
		}
		for i := range 20 {
			got, _ := v.View(i)
			if got[0] != byte(size+i) {
				t.Fatalf("size %d: element %d = %d after growth, want %d", size, i, got[0], byte(size+i))
			}
		}
	}
}

func TestGenericTypes(t *testing.T) {
	t.Run("struct", func(t *testing.T) {
		v := mustNew[point](t)
		want := []point{{1, 2, 3}, {4, 5, 6}, {-1.5, 0.25, -7}}
		v.Append(want)
		if v.ElemSize() != 24 {
			t.Errorf("ElemSize = %d, want 24", v.ElemSize())
		}
		assertContents(t, v, want)

		got, err := v.At(2)
		if err != nil || got != want[2] {
			t.Errorf("At(2) = %v, %v, want %v", got, err, want[2])
		}
	})

	t.Run("array", func(t *testing.T) {
		v := mustNew[[3]int16](t)
		v.PushBack([3]int16{1, 2, 3})
		v.PushFront([3]int16{-1, -2, -3})
		assertContents(t, v, [][3]int16{{-1, -2, -3}, {1, 2, 3}})
	})

	t.Run("byte", func(t *testing.T) {
		v := mustNew[byte](t)
		v.Append([]byte("hello"))
		if string(v.Slice()) != "hello" {
			t.Errorf("Slice = %q, want hello", v.Slice())
		}
		if !bytes.Equal(v.Raw().Bytes(), []byte("hello")) {
			t.Errorf("Raw().Bytes = %q", v.Raw().Bytes())
		}
	})
}

func TestGenericRejectsTypes(t *testing.T) {
	tests := []struct {
		name string
		new  func() error
	}{
		{"string", func() error { _, err := New[string](); return err }},
		{"pointer", func() error { _, err := New[*int](); return err }},
		{"slice", func() error { _, err := New[[]int](); return err }},
		{"map in struct", func() error { _, err := New[struct{ M map[int]int }](); return err }},
		{"interface array", func() error { _, err := New[[2]any](); return err }},
		{"empty struct", func() error { _, err := New[struct{}](); return err }},
		{"empty array", func() error { _, err := New[[0]int64](); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.new(); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("New error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestNilGenericVector(t *testing.T) {
	var v *Vector[int32]
	if v.Len() != Invalid || v.Cap() != Invalid || v.ElemSize() != Invalid {
		t.Errorf("nil vector queries = %d %d %d, want Invalid", v.Len(), v.Cap(), v.ElemSize())
	}
	if v.Slice() != nil {
		t.Error("Slice on nil vector should be nil")
	}
	if _, err := v.At(0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("At error = %v, want ErrInvalidArgument", err)
	}
	if err := v.PushBack(1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("PushBack error = %v, want ErrInvalidArgument", err)
	}
}

func TestGenericNilAndEmptySlices(t *testing.T) {
	v := mustNew[int32](t)
	if err := v.Append(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Append(nil) error = %v, want ErrInvalidArgument", err)
	}
	if err := v.Prepend([]int32{}); err != nil {
		t.Errorf("Prepend(empty) error: %v", err)
	}
	if v.Len() != 0 {
		t.Errorf("Len = %d, want 0", v.Len())
	}
}

func TestSliceAliasesBuffer(t *testing.T) {
	v := mustNew[uint32](t)
	v.Append([]uint32{1, 2, 3})
	s := v.Slice()
	if err := v.Replace(1, 20); err != nil {
		t.Fatal(err)
	}
	if s[1] != 20 {
		t.Errorf("Slice did not observe Replace: %v", s)
	}
	if cap(s) != len(s) {
		t.Errorf("cap(Slice) = %d, want %d", cap(s), len(s))
	}
}
