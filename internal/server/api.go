package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/justelson/devscope/internal/cache"
	"github.com/justelson/devscope/internal/gitscan"
	"github.com/justelson/devscope/internal/registry"
	appver "github.com/justelson/devscope/internal/version"
)

func (s *Server) mountAPI(r *gin.Engine) {
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/api/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": appver.AppVersion})
	})
	r.GET("/api/categories", func(c *gin.Context) {
		c.JSON(http.StatusOK, registry.Categories())
	})
	r.GET("/api/tools", s.toolsHandler)
	r.POST("/api/scan", s.scanHandler)
	r.GET("/api/agents", s.agentsHandler)
	r.GET("/api/repos", s.reposHandler)
	r.GET("/api/schema", func(c *gin.Context) {
		c.JSON(http.StatusOK, cache.FileSchema())
	})
}

// toolsHandler serves cached results, rescanning categories whose cache is
// stale per the configured max age. `?refresh=1` forces a rescan.
func (s *Server) toolsHandler(c *gin.Context) {
	maxAge := time.Duration(s.Settings.CacheMaxAgeMinutes) * time.Minute
	if c.Query("refresh") == "1" {
		maxAge = 0
	}

	cats := s.Settings.ScanCategories()
	if q := c.Query("category"); q != "" {
		cat, err := registry.ParseCategory(q)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		cats = []registry.Category{cat}
	}

	out := make(map[string][]cache.Entry, len(cats))
	for _, cat := range cats {
		out[string(cat)] = s.Scanner.GetCachedOrScan(c.Request.Context(), cat, maxAge)
	}
	c.JSON(http.StatusOK, gin.H{
		"tools":          out,
		"lastFullScanAt": s.Scanner.Store().LastFullScan(),
	})
}

func (s *Server) scanHandler(c *gin.Context) {
	out, err := s.Scanner.ScanAll(c.Request.Context())
	// Partial results beat an error dialog: a failed cache save is reported
	// alongside the scan results, not instead of them.
	resp := gin.H{"tools": out}
	if err != nil {
		resp["warning"] = err.Error()
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) agentsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tools": s.Scanner.ScanAgents(c.Request.Context())})
}

func (s *Server) reposHandler(c *gin.Context) {
	root := c.Query("root")
	if root == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing root query parameter"})
		return
	}
	depth := 3
	if q := c.Query("depth"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "depth must be a positive integer"})
			return
		}
		depth = n
	}
	infos, err := gitscan.InspectAll(c.Request.Context(), root, depth)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"repos": infos})
}
