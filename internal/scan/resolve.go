package scan

import (
	"time"

	"github.com/justelson/devscope/internal/cache"
	"github.com/justelson/devscope/internal/probe"
	"github.com/justelson/devscope/internal/registry"
)

// Resolve decides installed/not-installed for one tool definition against a
// completed batch result map. The first candidate with Exists == true wins,
// primary command before alternates regardless of probe timing. Commands
// missing from the map count as not found (closed world), so a batch that was
// cut short still resolves deterministically.
func Resolve(def registry.ToolDefinition, results map[string]probe.Result) cache.Entry {
	e := cache.Entry{
		ID:          def.ID,
		Category:    string(def.Category),
		DisplayName: def.DisplayName,
		Command:     def.Command,
		LastChecked: time.Now().UnixMilli(),
		Metadata: cache.Metadata{
			UsedFor:     def.UsedFor,
			Description: def.Description,
		},
	}
	for _, cmd := range def.Candidates() {
		res, ok := results[cmd]
		if !ok || !res.Exists {
			continue
		}
		e.Installed = true
		e.Command = cmd
		e.Version = res.Version
		e.Path = res.Path
		return e
	}
	return e
}
