package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/pavanmanishd/vector"
)

// runScenario walks a vector of int32 through every mutation and prints
// its contents after each step. The returned vector holds the final
// state; the caller frees it.
func runScenario(w io.Writer, alloc vector.Allocator) (*vector.Vector[int32], error) {
	v, err := vector.New[int32](vector.WithAllocator(alloc))
	if err != nil {
		return nil, err
	}

	steps := []struct {
		name string
		do   func() error
	}{
		{"push_back 2", func() error { return v.PushBack(2) }},
		{"push_front 1", func() error { return v.PushFront(1) }},
		{"pop_back", v.PopBack},
		{"pop_front", v.PopFront},
		{"append [4 5 6]", func() error { return v.Append([]int32{4, 5, 6}) }},
		{"prepend [1 2 3]", func() error { return v.Prepend([]int32{1, 2, 3}) }},
		{"insert 3 42", func() error { return v.Insert(3, 42) }},
		{"remove 3", func() error { return v.Remove(3) }},
		{"replace 3 42", func() error { return v.Replace(3, 42) }},
		{"replace_range 3 [4..9] 3", func() error { return v.ReplaceRange(3, []int32{4, 5, 6, 7, 8, 9}, 3) }},
	}
	for _, step := range steps {
		if err := step.do(); err != nil {
			v.Free()
			return nil, fmt.Errorf("%s: %w", step.name, err)
		}
		fmt.Fprintf(w, "%-26s %v len=%d cap=%d\n", step.name, v.Slice(), v.Len(), v.Cap())
	}
	return v, nil
}

// runGrowthTrace pushes n elements and pops them again, printing every
// capacity change.
func runGrowthTrace(w io.Writer, alloc vector.Allocator, n int) error {
	v, err := vector.New[uint64](vector.WithAllocator(alloc))
	if err != nil {
		return err
	}
	defer v.Free()

	capacity := v.Cap()
	fmt.Fprintf(w, "grow   len=%-4d cap=%d\n", v.Len(), capacity)
	for i := range n {
		if err := v.PushBack(uint64(i)); err != nil {
			return err
		}
		if v.Cap() != capacity {
			capacity = v.Cap()
			fmt.Fprintf(w, "grow   len=%-4d cap=%d\n", v.Len(), capacity)
		}
	}
	for v.Len() > 0 {
		if err := v.PopBack(); err != nil {
			return err
		}
		if v.Cap() != capacity {
			capacity = v.Cap()
			fmt.Fprintf(w, "shrink len=%-4d cap=%d\n", v.Len(), capacity)
		}
	}
	return nil
}

// runWorkers gives each of workers goroutines its own vector over the
// shared allocator. Each fills its vector with n values, checks them and
// drains it from the front.
func runWorkers(logger *slog.Logger, alloc vector.Allocator, workers, n int) error {
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for id := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[id] = runWorker(alloc, id, n)
			if errs[id] == nil {
				logger.Debug("worker finished", "worker", id, "elements", n)
			}
		}()
	}
	wg.Wait()
	return errors.Join(errs...)
}

func runWorker(alloc vector.Allocator, id, n int) error {
	v, err := vector.New[uint64](vector.WithAllocator(alloc))
	if err != nil {
		return fmt.Errorf("worker %d: %w", id, err)
	}
	defer v.Free()

	base := uint64(id) * uint64(n)
	for i := range n {
		if err := v.PushBack(base + uint64(i)); err != nil {
			return fmt.Errorf("worker %d: %w", id, err)
		}
	}
	for i, x := range v.Slice() {
		if x != base+uint64(i) {
			return fmt.Errorf("worker %d: element %d = %d, want %d", id, i, x, base+uint64(i))
		}
	}
	for v.Len() > 0 {
		if err := v.PopFront(); err != nil {
			return fmt.Errorf("worker %d: %w", id, err)
		}
	}
	if v.Cap() != vector.DefaultCapacity {
		return fmt.Errorf("worker %d: drained capacity %d, want %d", id, v.Cap(), vector.DefaultCapacity)
	}
	return nil
}

// writeSnapshot encodes v to path, zstd-compressed if compress is set,
// and returns the number of bytes written.
func writeSnapshot(path string, v *vector.Vector[int32], compress bool) (int, error) {
	data, err := v.MarshalBinary()
	if err != nil {
		return 0, err
	}
	if compress {
		encoder, err := zstd.NewWriter(nil)
		if err != nil {
			return 0, err
		}
		data = encoder.EncodeAll(data, nil)
		encoder.Close()
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, err
	}
	return len(data), nil
}

// readSnapshot loads a snapshot written by writeSnapshot.
func readSnapshot(path string, alloc vector.Allocator, compressed bool) (*vector.Vector[int32], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if compressed {
		decoder, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer decoder.Close()
		if data, err = decoder.DecodeAll(data, nil); err != nil {
			return nil, fmt.Errorf("decompress %s: %w", path, err)
		}
	}
	return vector.Decode[int32](data, vector.WithAllocator(alloc))
}
