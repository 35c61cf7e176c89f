package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SkinBot_Go/internal/access"
	"github.com/osse101/SkinBot_Go/internal/contents"
	"github.com/osse101/SkinBot_Go/internal/database/jsonfile"
	"github.com/osse101/SkinBot_Go/internal/handler"
	"github.com/osse101/SkinBot_Go/internal/info"
	"github.com/osse101/SkinBot_Go/internal/inventory"
	"github.com/osse101/SkinBot_Go/internal/market"
	"github.com/osse101/SkinBot_Go/internal/naming"
	"github.com/osse101/SkinBot_Go/internal/skin"
	"github.com/osse101/SkinBot_Go/internal/testing/fixtures"
	"github.com/osse101/SkinBot_Go/internal/valuation"
)

const testAPIKey = "test-key"

func newTestServer(t *testing.T, checks map[string]handler.HealthChecker) *Server {
	t.Helper()
	dir := t.TempDir()

	c := fixtures.Catalog(t)
	resolver, err := naming.NewResolver(c, 64)
	require.NoError(t, err)
	cache := market.NewCache(nil, time.Minute)

	loader := info.NewLoader("")
	require.NoError(t, loader.Load())

	return NewServer(Config{Port: 0, APIKey: testAPIKey}, Deps{
		Skins:     skin.NewService(resolver, contents.NewExpander(c), cache, ""),
		Inventory: inventory.NewService(jsonfile.NewInventoryRepository(filepath.Join(dir, "inv")), inventory.DefaultLimits()),
		Valuation: valuation.NewEngine(resolver, cache),
		Access:    access.NewService(jsonfile.NewBlocklistRepository(filepath.Join(dir, "blocklist.json")), nil),
		Market:    cache,
		Info:      loader,
		Checks:    checks,
	})
}

func serve(s *Server, method, target, body string, withKey bool) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	if withKey {
		req.Header.Set(HeaderAPIKey, testAPIKey)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestRoutes(t *testing.T) {
	s := newTestServer(t, nil)

	tests := []struct {
		name           string
		method         string
		target         string
		body           string
		withKey        bool
		expectedStatus int
		contains       string
	}{
		{"healthz", http.MethodGet, "/healthz", "", false, http.StatusOK, "ok"},
		{"readyz without checks", http.MethodGet, "/readyz", "", false, http.StatusOK, `"status":"ok"`},
		{"version", http.MethodGet, "/version", "", false, http.StatusOK, "go_version"},
		{"metrics", http.MethodGet, "/metrics", "", false, http.StatusOK, "go_goroutines"},
		{"api needs key", http.MethodGet, "/api/v1/skins?q=red+fox", "", false, http.StatusUnauthorized, ErrMsgUnauthorized},
		{"skin lookup", http.MethodGet, "/api/v1/skins?q=red+fox", "", true, http.StatusOK, `"name":"Red Fox"`},
		{"collection lookup", http.MethodGet, "/api/v1/collections?q=night-sky", "", true, http.StatusOK, `"title":"Night sky"`},
		{"empty inventory", http.MethodGet, "/api/v1/inventory?user_id=9", "", true, http.StatusOK, `"items":[]`},
		{"info", http.MethodGet, "/api/v1/info?feature=start", "", true, http.StatusOK, "Добро пожаловать!"},
		{"market status", http.MethodGet, "/api/v1/market/status", "", true, http.StatusOK, `"enabled":false`},
		{"admin refresh", http.MethodPost, "/api/v1/admin/market/refresh", "", true, http.StatusOK, handler.MsgMarketRefreshed},
		{"admin list", http.MethodGet, "/api/v1/admin/blocked", "", true, http.StatusOK, `"data":[]`},
		{"admin block needs admin actor", http.MethodPost, "/api/v1/admin/block",
			`{"actor_platform":"telegram","actor_platform_id":"1","platform":"telegram","platform_id":"2"}`,
			true, http.StatusForbidden, handler.ErrMsgForbiddenError},
		{"unknown route", http.MethodGet, "/api/v1/nope", "", true, http.StatusNotFound, ""},
		{"wrong method", http.MethodDelete, "/api/v1/inventory/add", "", true, http.StatusMethodNotAllowed, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(s, tt.method, tt.target, tt.body, tt.withKey)
			assert.Equal(t, tt.expectedStatus, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Body.String(), tt.contains)
			assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
		})
	}
}

func TestInventoryRoundTrip(t *testing.T) {
	s := newTestServer(t, nil)

	rec := serve(s, http.MethodPost, "/api/v1/inventory/add",
		`{"platform":"discord","platform_id":"7","item_name":"голден игл","quantity":2}`, true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"item_name":"Golden Eagle"`)

	rec = serve(s, http.MethodGet, "/api/v1/inventory?user_id=7&platform=discord", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user_id":"discord-7","items":[{"name":"Golden Eagle","quantity":2}]}`, rec.Body.String())

	rec = serve(s, http.MethodGet, "/api/v1/inventory/valuation?user_id=7&platform=discord", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":0`)

	rec = serve(s, http.MethodPost, "/api/v1/inventory/remove",
		`{"platform":"discord","platform_id":"7","item_name":"Golden Eagle"}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"quantity":0`)
}

func TestReadyzFailingCheck(t *testing.T) {
	s := newTestServer(t, map[string]handler.HealthChecker{
		"storage": handler.HealthCheckFunc(func(context.Context) error { return errors.New("down") }),
	})

	rec := serve(s, http.MethodGet, "/readyz", "", false)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "storage check failed")
}
