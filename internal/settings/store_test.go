package settings

import (
	"testing"

	tu "github.com/justelson/devscope/internal/testutil"
)

func TestSettings_DefaultsWhenMissing(t *testing.T) {
	tmp := t.TempDir()
	// direct UserConfigDir to temp
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)()
	defer tu.WithEnv(t, "HOME", tmp)() // fallback

	s, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if s.Concurrency != DefaultConcurrency {
		t.Fatalf("expected default concurrency, got %d", s.Concurrency)
	}
	if s.CacheMaxAgeMinutes != DefaultCacheMaxAgeMins {
		t.Fatalf("expected default cache age, got %d", s.CacheMaxAgeMinutes)
	}
	if len(s.Categories) != 0 {
		t.Fatalf("expected no category filter, got %v", s.Categories)
	}
}

func TestSettings_SaveLoadNormalization(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)()
	defer tu.WithEnv(t, "HOME", tmp)()

	in := Settings{
		Categories:  []string{"vcs", "Language", "vcs", "bogus"},
		Concurrency: 4,
	}
	if err := Save(in); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(got.Categories) != 2 || got.Categories[0] != "language" || got.Categories[1] != "vcs" {
		t.Fatalf("unexpected categories after normalization: %v", got.Categories)
	}
	if got.Concurrency != 4 {
		t.Fatalf("unexpected concurrency: %d", got.Concurrency)
	}
	if got.CacheMaxAgeMinutes != DefaultCacheMaxAgeMins {
		t.Fatalf("zero cache age should normalize to default, got %d", got.CacheMaxAgeMinutes)
	}
}

func TestSettings_ScanCategories(t *testing.T) {
	s := Settings{}
	if got := s.ScanCategories(); len(got) == 0 {
		t.Fatalf("empty filter should mean all categories")
	}
	s = Settings{Categories: []string{"vcs"}}
	got := s.ScanCategories()
	if len(got) != 1 || string(got[0]) != "vcs" {
		t.Fatalf("unexpected scan categories: %v", got)
	}
}
