// Package server exposes scanner results over a local HTTP API so editor
// plugins and dashboards can consume them without shelling out to devscope.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/justelson/devscope/internal/scan"
	"github.com/justelson/devscope/internal/settings"
	"github.com/justelson/devscope/internal/system"
)

type Server struct {
	Addr     string
	Scanner  *scan.Scanner
	Settings settings.Settings
}

// Start runs the API server until ctx is canceled.
func (s *Server) Start(ctx context.Context) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	s.mountAPI(r)

	stopWatch := s.watchCache(ctx)
	defer stopWatch()

	srv := &http.Server{Addr: s.Addr, Handler: r, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()
	system.Logger.Info("api server listening", "addr", s.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
