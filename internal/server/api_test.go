package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/justelson/devscope/internal/cache"
	"github.com/justelson/devscope/internal/probe"
	"github.com/justelson/devscope/internal/registry"
	"github.com/justelson/devscope/internal/scan"
	"github.com/justelson/devscope/internal/settings"
)

func newTestServer(t *testing.T, installed map[string]string) (*Server, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := cache.New(filepath.Join(t.TempDir(), "tools.json"))
	defs := []registry.ToolDefinition{
		{ID: "node", DisplayName: "Node.js", Category: registry.CategoryLanguage, Command: "node"},
		{ID: "git", DisplayName: "Git", Category: registry.CategoryVCS, Command: "git"},
	}
	sc := scan.New(store, defs)
	sc.Probe = func(_ context.Context, cmd string) probe.Result {
		if v, ok := installed[cmd]; ok {
			return probe.Result{Exists: true, Version: v}
		}
		return probe.Result{}
	}

	s := &Server{Scanner: sc, Settings: settings.Default()}
	r := gin.New()
	s.mountAPI(r)
	return s, r
}

func doGET(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthAndVersion(t *testing.T) {
	_, r := newTestServer(t, nil)

	w := doGET(t, r, "/api/health")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = doGET(t, r, "/api/version")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestToolsEndpoint(t *testing.T) {
	_, r := newTestServer(t, map[string]string{"node": "20.11.0", "git": "2.43.0"})

	w := doGET(t, r, "/api/tools?category=language")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Tools map[string][]cache.Entry `json:"tools"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Tools, 1)
	require.Len(t, resp.Tools["language"], 1)
	require.True(t, resp.Tools["language"][0].Installed)
	require.Equal(t, "20.11.0", resp.Tools["language"][0].Version)
}

func TestToolsEndpointRejectsUnknownCategory(t *testing.T) {
	_, r := newTestServer(t, nil)
	w := doGET(t, r, "/api/tools?category=nope")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScanEndpoint(t *testing.T) {
	s, r := newTestServer(t, map[string]string{"git": "2.43.0"})

	req := httptest.NewRequest(http.MethodPost, "/api/scan", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	require.False(t, s.Scanner.Store().LastFullScan().IsZero())
	e, ok := s.Scanner.Store().Get("git")
	require.True(t, ok)
	require.True(t, e.Installed)
}

func TestReposEndpointRequiresRoot(t *testing.T) {
	_, r := newTestServer(t, nil)
	w := doGET(t, r, "/api/repos")
	require.Equal(t, http.StatusBadRequest, w.Code)
}
