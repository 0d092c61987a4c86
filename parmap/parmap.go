// Package parmap provides opportunistic data-parallel mapping over
// independent elements.
//
// The contract is strictly "same result as sequential map": output order and
// content are identical regardless of execution strategy. Parallelism is a
// throughput hint only — small inputs run sequentially because thread fan-out
// would cost more than it saves, and large inputs are split into contiguous
// chunks with each worker writing only its own index range. There is no
// shared mutable state, cancellation, or cross-element coordination.
package parmap

import (
	"runtime"
	"sync"
)

// Map applies f to every element of items and returns the results in input
// order. The input runs sequentially unless it is large enough to give every
// available CPU at least minPerWorker/2 elements.
func Map[T, R any](items []T, f func(T) R, minPerWorker int) []R {
	return MapIndexed(items, func(_ int, item T) R { return f(item) }, minPerWorker)
}

// MapIndexed is Map with the element index passed to f.
func MapIndexed[T, R any](items []T, f func(int, T) R, minPerWorker int) []R {
	results := make([]R, len(items))
	if len(items) == 0 {
		return results
	}
	if minPerWorker < 1 {
		minPerWorker = 1
	}

	workers := runtime.NumCPU()
	if len(items) < workers*minPerWorker/2 {
		for i, item := range items {
			results[i] = f(i, item)
		}
		return results
	}

	chunk := (len(items) + workers - 1) / workers
	if chunk < minPerWorker {
		chunk = minPerWorker
	}

	var wg sync.WaitGroup
	for start := 0; start < len(items); start += chunk {
		end := start + chunk
		if end > len(items) {
			end = len(items)
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				results[i] = f(i, items[i])
			}
		}(start, end)
	}
	wg.Wait()
	return results
}
