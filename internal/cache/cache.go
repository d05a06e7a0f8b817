// Package cache persists last-known tool scan results across restarts.
//
// The store is an explicit value constructed at startup and handed to the
// scanner; an in-memory instance backed by a temp path substitutes in tests.
// The cache is an optimization, not a correctness requirement: a missing or
// corrupt file degrades to an empty cache and a fresh scan.
package cache

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/justelson/devscope/internal/system"
)

// Metadata carries free-text registry fields copied into each entry so
// consumers can render entries without re-reading the catalog.
type Metadata struct {
	UsedFor     []string `json:"usedFor,omitempty"`
	Description string   `json:"description,omitempty"`
}

// Entry is the last-known scan result for one tool. Exactly one entry exists
// per tool id; re-scanning overwrites rather than appends.
type Entry struct {
	ID          string   `json:"id"`
	Category    string   `json:"category"`
	DisplayName string   `json:"displayName"`
	Installed   bool     `json:"installed"`
	Version     string   `json:"version,omitempty"`
	Path        string   `json:"path,omitempty"`
	// Command is the concrete binary name that matched, which may be an
	// alternate rather than the tool's primary command.
	Command     string   `json:"command"`
	LastChecked int64    `json:"lastChecked"` // epoch milliseconds
	Metadata    Metadata `json:"metadata,omitempty"`
}

// fileFormat is the on-disk schema. Unknown fields in older or newer files
// are ignored on load rather than failing the parse.
type fileFormat struct {
	Tools          map[string]Entry `json:"tools"`
	LastFullScanAt int64            `json:"lastFullScanAt,omitempty"`
}

// Store is a durable key-value store of entries keyed by tool id.
// Safe for concurrent use: category scans run in parallel and upsert
// disjoint id sets, but they share this one value.
type Store struct {
	mu           sync.Mutex
	path         string
	tools        map[string]Entry
	lastFullScan int64
}

// New constructs a store backed by path and loads any existing file.
// Load failures are logged and yield an empty cache, never an error.
func New(path string) *Store {
	s := &Store{path: path, tools: make(map[string]Entry)}
	s.load()
	return s
}

func (s *Store) load() {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			system.Logger.Warn("tool cache unreadable, starting empty", "path", s.path, "err", err)
		}
		return
	}
	var f fileFormat
	if err := json.Unmarshal(b, &f); err != nil {
		system.Logger.Warn("tool cache corrupt, starting empty", "path", s.path, "err", err)
		return
	}
	if f.Tools != nil {
		s.tools = f.Tools
	}
	s.lastFullScan = f.LastFullScanAt
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Reload re-reads the backing file, replacing in-memory state. Used when
// another process rewrote the cache (e.g. a CLI scan while the API server
// is running). Unreadable or corrupt files leave the current state alone.
func (s *Store) Reload() {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var f fileFormat
	if err := json.Unmarshal(b, &f); err != nil {
		system.Logger.Warn("tool cache reload skipped, file corrupt", "path", s.path, "err", err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if f.Tools != nil {
		s.tools = f.Tools
	}
	s.lastFullScan = f.LastFullScanAt
}

// SetTool upserts an entry by id. Last write wins.
func (s *Store) SetTool(e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tools[e.ID] = e
}

// Get returns the entry for id, if present.
func (s *Store) Get(id string) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.tools[id]
	return e, ok
}

// GetToolsByCategory returns entries for one category sorted by id.
func (s *Store) GetToolsByCategory(category string) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Entry
	for _, e := range s.tools {
		if e.Category == category {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// All returns every entry sorted by category then id.
func (s *Store) All() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, 0, len(s.tools))
	for _, e := range s.tools {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// MarkScanned records that a full scan cycle finished now.
func (s *Store) MarkScanned() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastFullScan = time.Now().UnixMilli()
}

// LastFullScan returns the timestamp of the last completed full scan,
// or the zero time when no full scan has run.
func (s *Store) LastFullScan() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastFullScan == 0 {
		return time.Time{}
	}
	return time.UnixMilli(s.lastFullScan)
}

// Save flushes the store to disk as a whole-file overwrite. Callers should
// serialize saves (once per scan cycle, not once per category) so a slow
// writer cannot drop another category's entries.
func (s *Store) Save() error {
	s.mu.Lock()
	f := fileFormat{Tools: make(map[string]Entry, len(s.tools)), LastFullScanAt: s.lastFullScan}
	for id, e := range s.tools {
		f.Tools[id] = e
	}
	s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0o644)
}

// Clear empties the store and removes the backing file.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.tools = make(map[string]Entry)
	s.lastFullScan = 0
	s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
