// Package parallel provides the goroutine-per-tape fan-out this engine
// uses to run independent AAD computations concurrently: each worker
// gets its own Tape, and no Number or Tape ever crosses a goroutine
// boundary.
package parallel

import (
	"fmt"
	"sync"

	"github.com/jvikstrom/aad/internal/tape"
)

// RunPerTape spawns n worker goroutines, each owning a private
// *tape.Tape for its entire run, and calls fn(tp, workerIndex) on it.
// Every worker's Tape is brand new (not shared, not pooled across
// workers), matching the "no inter-thread sharing" invariant: a tape
// that outlives its worker has nowhere safe to go next anyway.
//
// RunPerTape waits for every worker to finish and returns the first
// non-nil error returned by any of them, wrapped with the index of the
// worker that produced it. Other workers still run to completion; this
// is a fan-out/join, not a cancel-on-first-failure pipeline.
func RunPerTape(n int, fn func(tp *tape.Tape, workerIndex int) error) error {
	if n <= 0 {
		return nil
	}

	var wg sync.WaitGroup
	errs := make([]error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(workerIndex int) {
			defer wg.Done()
			errs[workerIndex] = fn(tape.New(), workerIndex)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return fmt.Errorf("worker %d: %w", i, err)
		}
	}
	return nil
}
