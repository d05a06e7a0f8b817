// Package gitscan inspects Git repositories on the workstation: current
// branch, HEAD, dirty state, and origin remote, plus discovery of repos
// under a directory tree.
package gitscan

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	git "github.com/go-git/go-git/v5"
	"golang.org/x/sync/errgroup"
)

// RepoInfo is a snapshot of one repository's state.
type RepoInfo struct {
	Path     string    `json:"path"`
	Branch   string    `json:"branch,omitempty"`
	ShortSHA string    `json:"shortSha,omitempty"`
	Dirty    bool      `json:"dirty"`
	Remote   string    `json:"remote,omitempty"`
	LastAt   time.Time `json:"lastCommitAt,omitzero"`
	LastMsg  string    `json:"lastCommitMessage,omitempty"`
}

// Inspect opens the repository at dir and reports its state. An empty
// (unborn) repository yields an info with only Path set.
func Inspect(dir string) (RepoInfo, error) {
	info := RepoInfo{Path: dir}

	repo, err := git.PlainOpen(dir)
	if err != nil {
		return info, err
	}

	if r, err := repo.Remote("origin"); err == nil {
		if urls := r.Config().URLs; len(urls) > 0 {
			info.Remote = urls[0]
		}
	}

	head, err := repo.Head()
	if err != nil {
		// No commits yet; still a repository.
		return info, nil
	}
	if head.Name().IsBranch() {
		info.Branch = head.Name().Short()
	}
	if sha := head.Hash().String(); len(sha) >= 7 {
		info.ShortSHA = sha[:7]
	}

	if commit, err := repo.CommitObject(head.Hash()); err == nil {
		info.LastAt = commit.Author.When
		info.LastMsg = firstLine(commit.Message)
	}

	if wt, err := repo.Worktree(); err == nil {
		if status, err := wt.Status(); err == nil {
			info.Dirty = !status.IsClean()
		}
	}
	return info, nil
}

// Discover walks root up to maxDepth directory levels and returns every path
// containing a .git directory, sorted. It does not descend into repositories
// or hidden directories.
func Discover(root string, maxDepth int) ([]string, error) {
	root = filepath.Clean(root)
	var repos []string
	err := filepath.WalkDir(root, func(path string, de fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable subtree, keep walking
		}
		if !de.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(de.Name(), ".") {
			return fs.SkipDir
		}
		if depth(root, path) > maxDepth {
			return fs.SkipDir
		}
		if st, err := os.Stat(filepath.Join(path, ".git")); err == nil && st.IsDir() {
			repos = append(repos, path)
			return fs.SkipDir
		}
		return nil
	})
	sort.Strings(repos)
	return repos, err
}

// InspectAll discovers and inspects repositories under root concurrently.
// Repositories that fail to open are skipped rather than failing the scan.
func InspectAll(ctx context.Context, root string, maxDepth int) ([]RepoInfo, error) {
	paths, err := Discover(root, maxDepth)
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	var infos []RepoInfo
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for _, p := range paths {
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			info, err := Inspect(p)
			if err != nil {
				return nil
			}
			mu.Lock()
			infos = append(infos, info)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Path < infos[j].Path })
	return infos, nil
}

func depth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}
