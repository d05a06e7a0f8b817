package scan

import (
	"context"
	"time"

	"github.com/justelson/devscope/internal/cache"
	"github.com/justelson/devscope/internal/probe"
	"github.com/justelson/devscope/internal/registry"
	"github.com/justelson/devscope/internal/system"
)

// ScanAgents probes the AI-agent category one command at a time instead of
// going through the batch runner. Agent CLIs can be interactively stateful,
// and concurrent probes risk cross-contaminated stdout/stderr; accuracy
// matters more than speed here, so this path also never reads the cache.
// Results are still written through so the dashboard and API see them.
func (s *Scanner) ScanAgents(ctx context.Context) []cache.Entry {
	defs := s.Defs(registry.CategoryAIAgent)
	if len(defs) == 0 {
		return nil
	}
	pf := s.probeFor(defs)

	entries := make([]cache.Entry, 0, len(defs))
	for _, d := range defs {
		e := s.scanAgent(ctx, d, pf)
		s.store.SetTool(e)
		entries = append(entries, e)
	}
	if err := s.store.Save(); err != nil {
		system.Logger.Warn("tool cache save failed", "err", err)
	}
	return entries
}

func (s *Scanner) scanAgent(ctx context.Context, d registry.ToolDefinition, pf ProbeFunc) cache.Entry {
	e := cache.Entry{
		ID:          d.ID,
		Category:    string(d.Category),
		DisplayName: d.DisplayName,
		Command:     d.Command,
		LastChecked: time.Now().UnixMilli(),
		Metadata: cache.Metadata{
			UsedFor:     d.UsedFor,
			Description: d.Description,
		},
	}
	for _, cmd := range d.Candidates() {
		res := pf(ctx, cmd)
		if !res.Exists {
			continue
		}
		e.Installed = true
		e.Command = cmd
		e.Version = res.Version
		e.Path = res.Path
		return e
	}

	// No binary answered; npm-distributed agents may still be installed
	// globally without a working launcher on PATH.
	if d.Package != "" && s.Probe == nil {
		nctx, cancel := context.WithTimeout(ctx, 6*time.Second)
		ver, err := probe.NpmGlobalVersion(nctx, d.Package)
		cancel()
		if err == nil && ver != "" {
			e.Installed = true
			e.Version = ver
			return e
		}
	}
	return e
}
