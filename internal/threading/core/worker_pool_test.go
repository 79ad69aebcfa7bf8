package core

import (
	"sync/atomic"
	"testing"
)

func TestWorkerPoolParallelFor(t *testing.T) {
	wp := NewWorkerPool(4)
	wp.Start()
	defer wp.Stop()

	const n = 1000
	results := make([]int64, n)
	wp.ParallelFor(0, n, func(i int) {
		results[i] = int64(i) * 2
	})

	for i := 0; i < n; i++ {
		if results[i] != int64(i)*2 {
			t.Fatalf("index %d: expected %d, got %d", i, i*2, results[i])
		}
	}
}

func TestWorkerPoolParallelForEmptyRange(t *testing.T) {
	wp := NewWorkerPool(2)
	wp.Start()
	defer wp.Stop()

	var calls atomic.Int64
	wp.ParallelFor(5, 5, func(i int) {
		calls.Add(1)
	})

	if calls.Load() != 0 {
		t.Errorf("expected no calls for empty range, got %d", calls.Load())
	}
}

func TestWorkerPoolSubmitWait(t *testing.T) {
	wp := NewWorkerPool(0) // defaults to NumCPU
	wp.Start()
	defer wp.Stop()

	var sum atomic.Int64
	for i := 1; i <= 100; i++ {
		n := int64(i)
		wp.Submit(func() {
			sum.Add(n)
		})
	}
	wp.Wait()

	if sum.Load() != 5050 {
		t.Errorf("expected sum 5050, got %d", sum.Load())
	}
}
