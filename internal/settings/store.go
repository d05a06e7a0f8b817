// Package settings persists user preferences for scanning.
package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/justelson/devscope/internal/config"
	"github.com/justelson/devscope/internal/registry"
)

// Defaults applied when settings.json is absent or partial.
const (
	DefaultConcurrency     = 10
	DefaultCacheMaxAgeMins = 15
)

// Settings controls default scan behavior. Zero values are replaced with
// defaults on load so older files keep working.
type Settings struct {
	// Categories scanned by default; empty means all known categories.
	Categories []string `json:"categories,omitempty"`
	// Concurrency is the batch chunk size for the scanner.
	Concurrency int `json:"concurrency,omitempty"`
	// CacheMaxAgeMinutes bounds how old cached results may be before
	// `devscope ls` rescans.
	CacheMaxAgeMinutes int `json:"cacheMaxAgeMinutes,omitempty"`
}

// Default returns the baseline settings.
func Default() Settings {
	return Settings{
		Concurrency:        DefaultConcurrency,
		CacheMaxAgeMinutes: DefaultCacheMaxAgeMins,
	}
}

// Load reads settings from disk. Missing file yields defaults.
func Load() (Settings, error) {
	p, err := config.SettingsFile()
	if err != nil {
		return Default(), err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), err
	}
	var s Settings
	if err := json.Unmarshal(b, &s); err != nil {
		return Default(), err
	}
	return normalize(s), nil
}

// Save writes settings to disk, creating the directory if needed.
func Save(s Settings) error {
	p, err := config.SettingsFile()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	s = normalize(s)
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o644)
}

// normalize fills zero values with defaults and drops unknown or duplicate
// categories so a hand-edited file cannot silently create unscanned ones.
func normalize(s Settings) Settings {
	if s.Concurrency <= 0 {
		s.Concurrency = DefaultConcurrency
	}
	if s.CacheMaxAgeMinutes <= 0 {
		s.CacheMaxAgeMinutes = DefaultCacheMaxAgeMins
	}
	seen := map[string]bool{}
	var cats []string
	for _, c := range s.Categories {
		parsed, err := registry.ParseCategory(c)
		if err != nil || seen[string(parsed)] {
			continue
		}
		seen[string(parsed)] = true
		cats = append(cats, string(parsed))
	}
	sort.Strings(cats)
	s.Categories = cats
	return s
}

// ScanCategories resolves the categories a default scan covers.
func (s Settings) ScanCategories() []registry.Category {
	if len(s.Categories) == 0 {
		return registry.Categories()
	}
	out := make([]registry.Category, 0, len(s.Categories))
	for _, c := range s.Categories {
		out = append(out, registry.Category(c))
	}
	return out
}
