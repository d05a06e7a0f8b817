package scan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/justelson/devscope/internal/probe"
	"github.com/justelson/devscope/internal/registry"
)

var nodeDef = registry.ToolDefinition{
	ID:                "node",
	DisplayName:       "Node.js",
	Category:          registry.CategoryLanguage,
	Command:           "node",
	AlternateCommands: []string{"nodejs"},
	UsedFor:           []string{"javascript"},
	Description:       "JavaScript runtime.",
}

func TestResolvePrimaryCommand(t *testing.T) {
	results := map[string]probe.Result{
		"node":   {Exists: true, Version: "20.11.0", Path: "/usr/bin/node"},
		"nodejs": {Exists: false},
	}
	e := Resolve(nodeDef, results)
	require.True(t, e.Installed)
	require.Equal(t, "20.11.0", e.Version)
	require.Equal(t, "node", e.Command)
	require.Equal(t, "/usr/bin/node", e.Path)
	require.Equal(t, "language", e.Category)
	require.Equal(t, []string{"javascript"}, e.Metadata.UsedFor)
}

func TestResolveAlternateCommand(t *testing.T) {
	results := map[string]probe.Result{
		"node":   {Exists: false},
		"nodejs": {Exists: true, Version: "18.2.0"},
	}
	e := Resolve(nodeDef, results)
	require.True(t, e.Installed)
	require.Equal(t, "18.2.0", e.Version)
	require.Equal(t, "nodejs", e.Command)
}

// Primary always wins over alternates even when both resolved.
func TestResolvePrimaryPrecedence(t *testing.T) {
	results := map[string]probe.Result{
		"node":   {Exists: true, Version: "20.11.0"},
		"nodejs": {Exists: true, Version: "18.2.0"},
	}
	e := Resolve(nodeDef, results)
	require.Equal(t, "node", e.Command)
	require.Equal(t, "20.11.0", e.Version)
}

func TestResolveNothingInstalled(t *testing.T) {
	results := map[string]probe.Result{
		"node":   {Exists: false},
		"nodejs": {Exists: false},
	}
	before := time.Now().UnixMilli()
	e := Resolve(nodeDef, results)
	require.False(t, e.Installed)
	require.Equal(t, "node", e.Command, "not-installed entries keep the primary command")
	require.Empty(t, e.Version)
	require.GreaterOrEqual(t, e.LastChecked, before, "lastChecked is set even on failed scans")
}

// Commands missing from the result map count as not found, not unknown.
func TestResolveClosedWorld(t *testing.T) {
	e := Resolve(nodeDef, map[string]probe.Result{})
	require.False(t, e.Installed)

	// Alternate resolved but primary missing from the map entirely.
	e = Resolve(nodeDef, map[string]probe.Result{"nodejs": {Exists: true, Version: "18.2.0"}})
	require.True(t, e.Installed)
	require.Equal(t, "nodejs", e.Command)
}

func TestResolveNoAlternates(t *testing.T) {
	d := registry.ToolDefinition{ID: "go", Command: "go", Category: registry.CategoryLanguage}
	e := Resolve(d, map[string]probe.Result{"go": {Exists: true, Version: "1.25.0"}})
	require.True(t, e.Installed)
	require.Equal(t, "go", e.Command)
}
