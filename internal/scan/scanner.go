package scan

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/justelson/devscope/internal/cache"
	"github.com/justelson/devscope/internal/probe"
	"github.com/justelson/devscope/internal/registry"
	"github.com/justelson/devscope/internal/system"
)

// Scanner orchestrates category scans end to end and owns the only handle to
// the persistent cache. Construct one per process and inject the store; tests
// pass a temp-dir store and a stub probe.
type Scanner struct {
	Concurrency int           // batch chunk size, DefaultConcurrency when <= 0
	Timeout     time.Duration // per-probe timeout, probe.DefaultTimeout when <= 0
	Probe       ProbeFunc     // probe.Run when nil

	store *cache.Store
	defs  []registry.ToolDefinition
}

// New builds a scanner over defs writing results to store.
func New(store *cache.Store, defs []registry.ToolDefinition) *Scanner {
	return &Scanner{store: store, defs: defs}
}

// Store exposes the injected cache store.
func (s *Scanner) Store() *cache.Store { return s.store }

// Defs returns the definitions in cat, in catalog order.
func (s *Scanner) Defs(cat registry.Category) []registry.ToolDefinition {
	var out []registry.ToolDefinition
	for _, d := range s.defs {
		if d.Category == cat {
			out = append(out, d)
		}
	}
	return out
}

// probeFor returns the probe function honoring per-definition version args.
// Tools sharing a command name are probed once; the first definition's args
// win for that command.
func (s *Scanner) probeFor(defs []registry.ToolDefinition) ProbeFunc {
	if s.Probe != nil {
		return s.Probe
	}
	args := make(map[string][]string)
	for _, d := range defs {
		for _, cmd := range d.Candidates() {
			if _, ok := args[cmd]; !ok {
				args[cmd] = d.VersionArgs
			}
		}
	}
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = probe.DefaultTimeout
	}
	return func(ctx context.Context, command string) probe.Result {
		return probe.Run(ctx, command, args[command], timeout)
	}
}

// ScanCategory probes every tool in cat with exactly one shared batch and
// writes each resolved entry to the store. Disk save is left to the caller so
// a full-scan cycle saves once, not once per category.
func (s *Scanner) ScanCategory(ctx context.Context, cat registry.Category, onProgress ProgressFunc) []cache.Entry {
	defs := s.Defs(cat)
	if len(defs) == 0 {
		return nil
	}

	var commands []string
	for _, d := range defs {
		commands = append(commands, d.Candidates()...)
	}

	runner := &BatchRunner{
		Concurrency: s.Concurrency,
		Timeout:     s.Timeout,
		Probe:       s.probeFor(defs),
	}
	results := runner.Run(ctx, commands, onProgress)

	entries := make([]cache.Entry, 0, len(defs))
	for _, d := range defs {
		e := Resolve(d, results)
		s.store.SetTool(e)
		entries = append(entries, e)
	}
	return entries
}

// ScanAll scans every category concurrently. Categories share no mutable
// state beyond disjoint cache upserts, so they need no ordering. Completion
// is marked and the cache saved only after every category settles. A save
// failure is returned so the caller can report it once; the in-memory results
// remain valid regardless.
func (s *Scanner) ScanAll(ctx context.Context) (map[registry.Category][]cache.Entry, error) {
	out := make(map[registry.Category][]cache.Entry)
	var g errgroup.Group
	for _, cat := range registry.Categories() {
		if len(s.Defs(cat)) == 0 {
			continue
		}
		g.Go(func() error {
			entries := s.ScanCategory(ctx, cat, nil)
			system.Logger.Debug("category scanned", "category", cat, "tools", len(entries))
			return nil
		})
	}
	_ = g.Wait()

	for _, cat := range registry.Categories() {
		if es := s.store.GetToolsByCategory(string(cat)); len(es) > 0 {
			out[cat] = es
		}
	}
	s.store.MarkScanned()
	if err := s.store.Save(); err != nil {
		return out, err
	}
	return out, nil
}

// GetCachedOrScan serves cat from the cache when every tool in the category
// has an entry no older than maxAge, and rescans otherwise. Staleness is a
// caller decision; maxAge <= 0 always rescans.
func (s *Scanner) GetCachedOrScan(ctx context.Context, cat registry.Category, maxAge time.Duration) []cache.Entry {
	defs := s.Defs(cat)
	if maxAge > 0 {
		cached := s.store.GetToolsByCategory(string(cat))
		if len(cached) == len(defs) && len(cached) > 0 && fresh(cached, maxAge) {
			return cached
		}
	}
	entries := s.ScanCategory(ctx, cat, nil)
	if err := s.store.Save(); err != nil {
		system.Logger.Warn("tool cache save failed", "err", err)
	}
	return entries
}

func fresh(entries []cache.Entry, maxAge time.Duration) bool {
	cutoff := time.Now().Add(-maxAge).UnixMilli()
	for _, e := range entries {
		if e.LastChecked < cutoff {
			return false
		}
	}
	return true
}
