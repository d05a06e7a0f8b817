package gitscan

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

func initRepo(t *testing.T, dir string) {
	t.Helper()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# test\n"), 0o644))
	_, err = wt.Add("README.md")
	require.NoError(t, err)
	_, err = wt.Commit("initial commit\n\nbody", &git.CommitOptions{
		Author: &object.Signature{Name: "dev", Email: "dev@example.com", When: time.Now()},
	})
	require.NoError(t, err)
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	initRepo(t, dir)

	info, err := Inspect(dir)
	require.NoError(t, err)
	require.Equal(t, dir, info.Path)
	require.Equal(t, "master", info.Branch)
	require.Len(t, info.ShortSHA, 7)
	require.False(t, info.Dirty)
	require.Equal(t, "initial commit", info.LastMsg)
	require.False(t, info.LastAt.IsZero())
}

func TestInspectDirtyWorktree(t *testing.T) {
	dir := t.TempDir()
	initRepo(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.txt"), []byte("x"), 0o644))

	info, err := Inspect(dir)
	require.NoError(t, err)
	require.True(t, info.Dirty)
}

func TestInspectNotARepo(t *testing.T) {
	_, err := Inspect(t.TempDir())
	require.Error(t, err)
}

func TestDiscoverAndInspectAll(t *testing.T) {
	root := t.TempDir()
	a := filepath.Join(root, "projects", "alpha")
	b := filepath.Join(root, "beta")
	deep := filepath.Join(root, "one", "two", "three", "gamma")
	for _, d := range []string{a, b, deep} {
		require.NoError(t, os.MkdirAll(d, 0o755))
		initRepo(t, d)
	}
	// hidden directories are skipped
	hidden := filepath.Join(root, ".cache", "repo")
	require.NoError(t, os.MkdirAll(hidden, 0o755))
	initRepo(t, hidden)

	repos, err := Discover(root, 3)
	require.NoError(t, err)
	require.Equal(t, []string{b, a}, repos, "depth-4 and hidden repos excluded")

	infos, err := InspectAll(context.Background(), root, 3)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	for _, info := range infos {
		require.Equal(t, "master", info.Branch)
	}
}
