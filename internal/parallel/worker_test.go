package parallel

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jvikstrom/aad/internal/tape"
)

func TestRunPerTapeGivesEachWorkerAPrivateTape(t *testing.T) {
	const n = 8

	var mu sync.Mutex
	seen := make(map[*tape.Tape]bool, n)

	err := RunPerTape(n, func(tp *tape.Tape, workerIndex int) error {
		mu.Lock()
		defer mu.Unlock()
		require.False(t, seen[tp], "tape reused across workers")
		seen[tp] = true
		return nil
	})

	require.NoError(t, err)
	require.Len(t, seen, n)
}

func TestRunPerTapeRunsEveryWorker(t *testing.T) {
	const n = 16
	var count int64

	err := RunPerTape(n, func(tp *tape.Tape, workerIndex int) error {
		atomic.AddInt64(&count, 1)
		return nil
	})

	require.NoError(t, err)
	require.Equal(t, int64(n), count)
}

func TestRunPerTapeCollectsAndWrapsAnError(t *testing.T) {
	boom := errors.New("boom")

	err := RunPerTape(4, func(tp *tape.Tape, workerIndex int) error {
		if workerIndex == 2 {
			return boom
		}
		return nil
	})

	require.Error(t, err)
	require.ErrorIs(t, err, boom)
}

func TestRunPerTapeZeroWorkersIsANoop(t *testing.T) {
	called := false
	err := RunPerTape(0, func(tp *tape.Tape, workerIndex int) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	require.False(t, called)
}
