package server

import (
	"context"
	"path/filepath"

	fsnotify "github.com/fsnotify/fsnotify"

	"github.com/justelson/devscope/internal/system"
)

// watchCache reloads the store when another process rewrites the cache file,
// so a CLI scan shows up in API responses without restarting the server.
// Returns a stop function; watching is best-effort and a watcher failure
// only disables live reload.
func (s *Server) watchCache(ctx context.Context) func() {
	path := s.Scanner.Store().Path()
	w, err := fsnotify.NewWatcher()
	if err != nil {
		system.Logger.Warn("cache watcher unavailable", "err", err)
		return func() {}
	}
	// Watch the directory: editors and atomic writers replace the file,
	// which drops a watch set on the file itself.
	if err := w.Add(filepath.Dir(path)); err != nil {
		system.Logger.Warn("cache watcher unavailable", "path", path, "err", err)
		_ = w.Close()
		return func() {}
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filepath.Clean(path) {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					s.Scanner.Store().Reload()
					system.Logger.Debug("tool cache reloaded", "event", ev.Op.String())
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				system.Logger.Warn("cache watcher error", "err", err)
			}
		}
	}()
	return func() { _ = w.Close() }
}
