// Package parallel splits per-row pixel work across goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// MinRows is the smallest band handed to its own goroutine. Smaller jobs
// run on the calling goroutine.
const MinRows = 32

// Bands runs row-range work on up to a fixed number of goroutines.
//
// Bands holds no goroutines between calls and needs no Close. It is safe
// for concurrent use.
type Bands struct {
	workers int
}

// NewBands creates a splitter for the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewBands(workers int) *Bands {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Bands{workers: workers}
}

// Workers returns the maximum number of goroutines used per call.
func (b *Bands) Workers() int {
	return b.workers
}

// Rows calls fn for disjoint bands that together cover [y0, y1) and waits
// for all of them. Bands are contiguous and in order; fn must only touch
// rows of its own band.
func (b *Bands) Rows(y0, y1 int, fn func(y0, y1 int)) {
	n := y1 - y0
	if n <= 0 {
		return
	}
	k := min(b.workers, n/MinRows)
	if k <= 1 {
		fn(y0, y1)
		return
	}

	var wg sync.WaitGroup
	wg.Add(k - 1)
	start := y0
	for i := range k {
		end := y0 + n*(i+1)/k
		if i == k-1 {
			// Last band runs on the caller.
			fn(start, end)
			break
		}
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
		start = end
	}
	wg.Wait()
}
