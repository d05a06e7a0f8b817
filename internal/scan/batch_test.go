package scan

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/justelson/devscope/internal/probe"
)

func TestBatchRunnerCompleteness(t *testing.T) {
	commands := make([]string, 0, 25)
	for i := 0; i < 25; i++ {
		commands = append(commands, string(rune('a'+i)))
	}

	var chunks [][]string
	var dones []int
	r := &BatchRunner{
		Concurrency: 10,
		Probe: func(_ context.Context, cmd string) probe.Result {
			return probe.Result{Exists: cmd == "a"}
		},
	}
	results := r.Run(context.Background(), commands, func(done, total int, chunk []string) {
		dones = append(dones, done)
		chunks = append(chunks, chunk)
	})

	require.Len(t, results, 25, "one entry per distinct input command")
	for _, cmd := range commands {
		_, ok := results[cmd]
		require.True(t, ok, "missing result for %q", cmd)
	}
	require.True(t, results["a"].Exists)
	require.False(t, results["b"].Exists)

	// 25 commands at concurrency 10 dispatch exactly three sequential chunks.
	require.Equal(t, []int{10, 20, 25}, dones)
	require.Len(t, chunks, 3)
	require.Len(t, chunks[0], 10)
	require.Len(t, chunks[1], 10)
	require.Len(t, chunks[2], 5)
}

func TestBatchRunnerDeduplicates(t *testing.T) {
	var calls int32
	r := &BatchRunner{
		Concurrency: 4,
		Probe: func(_ context.Context, _ string) probe.Result {
			atomic.AddInt32(&calls, 1)
			return probe.Result{Exists: true}
		},
	}
	results := r.Run(context.Background(), []string{"node", "nodejs", "node", "", "nodejs"}, nil)
	require.Len(t, results, 2)
	require.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestBatchRunnerConcurrencyBound(t *testing.T) {
	const conc = 3
	var inFlight, peak int32
	var mu sync.Mutex

	r := &BatchRunner{
		Concurrency: conc,
		Probe: func(_ context.Context, _ string) probe.Result {
			n := atomic.AddInt32(&inFlight, 1)
			mu.Lock()
			if n > peak {
				peak = n
			}
			mu.Unlock()
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt32(&inFlight, -1)
			return probe.Result{}
		},
	}

	commands := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	results := r.Run(context.Background(), commands, nil)
	require.Len(t, results, len(commands))

	mu.Lock()
	defer mu.Unlock()
	require.LessOrEqual(t, peak, int32(conc), "more than %d probes in flight", conc)
	require.Greater(t, peak, int32(0))
}

func TestBatchRunnerEmptyInput(t *testing.T) {
	r := &BatchRunner{Probe: func(_ context.Context, _ string) probe.Result { return probe.Result{} }}
	called := false
	results := r.Run(context.Background(), nil, func(int, int, []string) { called = true })
	require.Empty(t, results)
	require.False(t, called)
}

func TestBatchRunnerDefaultConcurrency(t *testing.T) {
	var dones []int
	r := &BatchRunner{
		// Concurrency unset falls back to DefaultConcurrency.
		Probe: func(_ context.Context, _ string) probe.Result { return probe.Result{} },
	}
	commands := make([]string, 12)
	for i := range commands {
		commands[i] = string(rune('a' + i))
	}
	r.Run(context.Background(), commands, func(done, _ int, _ []string) { dones = append(dones, done) })
	require.Equal(t, []int{10, 12}, dones)
}
