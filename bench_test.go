package vector_test

import (
	"fmt"
	"testing"

	"github.com/pavanmanishd/vector"
	"github.com/pavanmanishd/vector/arena"
)

// allocators returns a fresh allocator per benchmark run, plus a release
// function.
var allocators = []struct {
	name string
	make func() (vector.Allocator, func())
}{
	{"Heap", func() (vector.Allocator, func()) { return vector.HeapAllocator{}, func() {} }},
	{"Arena", func() (vector.Allocator, func()) {
		a := arena.NewArena(1 << 20)
		return a, a.Release
	}},
	{"SafeArena", func() (vector.Allocator, func()) {
		s := arena.NewSafeArena(1 << 20)
		return s, s.Release
	}},
}

// BenchmarkPushBack fills a fresh vector per iteration.
func BenchmarkPushBack(b *testing.B) {
	for _, n := range []int{16, 1024} {
		for _, alloc := range allocators {
			b.Run(fmt.Sprintf("%s/%d", alloc.name, n), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					a, release := alloc.make()
					v, _ := vector.New[uint64](vector.WithAllocator(a))
					for j := range n {
						v.PushBack(uint64(j))
					}
					v.Free()
					release()
				}
			})
		}
		b.Run(fmt.Sprintf("Builtin/%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				var s []uint64
				for j := range n {
					s = append(s, uint64(j))
				}
				_ = s
			}
		})
	}
}

// BenchmarkQueue uses the vector as a FIFO: push at the back, pop at the
// front. PopFront shifts every element, so this is the worst case.
func BenchmarkQueue(b *testing.B) {
	for _, depth := range []int{8, 256} {
		b.Run(fmt.Sprintf("depth=%d", depth), func(b *testing.B) {
			v, _ := vector.New[int64]()
			for j := range depth {
				v.PushBack(int64(j))
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v.PushBack(int64(i))
				v.PopFront()
			}
		})
	}
}

func BenchmarkInsertMiddle(b *testing.B) {
	v, _ := vector.New[int32]()
	v.Append(make([]int32, 512))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Insert(256, int32(i))
		v.Remove(256)
	}
}

func BenchmarkReplaceRange(b *testing.B) {
	v, _ := vector.New[int32]()
	v.Append(make([]int32, 512))
	grow := make([]int32, 16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.ReplaceRange(100, grow, 4)
		v.ReplaceRange(100, grow[:4], 16)
	}
}

// BenchmarkGrowShrinkCycle repeatedly crosses a capacity boundary, the
// pattern where in-place arena reallocation pays off.
func BenchmarkGrowShrinkCycle(b *testing.B) {
	for _, alloc := range allocators {
		b.Run(alloc.name, func(b *testing.B) {
			a, release := alloc.make()
			defer release()
			v, _ := vector.New[uint64](vector.WithAllocator(a))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for j := range 64 {
					v.PushBack(uint64(j))
				}
				for range 64 {
					v.PopBack()
				}
			}
		})
	}
}

func BenchmarkSafeArenaParallel(b *testing.B) {
	s := arena.NewSafeArena(1 << 20)
	defer s.Release()

	b.RunParallel(func(pb *testing.PB) {
		v, _ := vector.New[uint64](vector.WithAllocator(s))
		defer v.Free()
		for pb.Next() {
			v.PushBack(1)
			if v.Len() == 256 {
				for v.Len() > 0 {
					v.PopBack()
				}
			}
		}
	})
}

func BenchmarkSnapshot(b *testing.B) {
	v, _ := vector.New[uint64]()
	for j := range 4096 {
		v.PushBack(uint64(j))
	}
	b.Run("Marshal", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v.MarshalBinary()
		}
	})
	data, _ := v.MarshalBinary()
	b.Run("Decode", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			w, _ := vector.Decode[uint64](data)
			w.Free()
		}
	})
}
