// Package scan turns the tool catalog into cache entries: it probes command
// names in bounded-concurrency batches, resolves each tool definition against
// the probe results, and writes the outcome through the persistent cache.
package scan

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/justelson/devscope/internal/probe"
)

// DefaultConcurrency caps probes simultaneously in flight. Scanning dozens of
// tools must not spawn dozens of subprocesses at once.
const DefaultConcurrency = 10

// ProbeFunc probes one command name. Injected so tests never shell out.
type ProbeFunc func(ctx context.Context, command string) probe.Result

// ProgressFunc reports batch progress after each chunk settles.
type ProgressFunc func(done, total int, chunk []string)

// BatchRunner runs a probe over a set of command names in fixed-size chunks.
// Chunk N+1 never starts before every probe in chunk N has settled; that is
// the backpressure mechanism bounding peak subprocess count.
type BatchRunner struct {
	Concurrency int           // chunk size; DefaultConcurrency when <= 0
	Timeout     time.Duration // per-probe timeout passed to the default probe
	Probe       ProbeFunc     // probe.Run when nil
}

// Run probes every command and returns one result per distinct input command.
// Commands are deduplicated preserving first-seen order. No command is ever
// dropped from the result map: a failed probe yields Result{Exists: false}.
func (r *BatchRunner) Run(ctx context.Context, commands []string, onProgress ProgressFunc) map[string]probe.Result {
	conc := r.Concurrency
	if conc <= 0 {
		conc = DefaultConcurrency
	}
	pf := r.Probe
	if pf == nil {
		pf = func(ctx context.Context, command string) probe.Result {
			return probe.Run(ctx, command, nil, r.Timeout)
		}
	}

	uniq := dedupe(commands)
	results := make(map[string]probe.Result, len(uniq))
	var mu sync.Mutex

	done := 0
	for start := 0; start < len(uniq); start += conc {
		end := start + conc
		if end > len(uniq) {
			end = len(uniq)
		}
		chunk := uniq[start:end]

		g, gctx := errgroup.WithContext(ctx)
		for _, cmd := range chunk {
			g.Go(func() error {
				res := pf(gctx, cmd)
				mu.Lock()
				results[cmd] = res
				mu.Unlock()
				return nil
			})
		}
		// Workers never return errors; Wait is purely the chunk barrier.
		_ = g.Wait()

		done += len(chunk)
		if onProgress != nil {
			onProgress(done, len(uniq), chunk)
		}
	}

	// Closed-world guarantee: an entry exists for every input command even if
	// a probe somehow left no result.
	for _, cmd := range uniq {
		if _, ok := results[cmd]; !ok {
			results[cmd] = probe.Result{}
		}
	}
	return results
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
