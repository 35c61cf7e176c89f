package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/osse101/SkinBot_Go/internal/access"
	"github.com/osse101/SkinBot_Go/internal/contents"
	"github.com/osse101/SkinBot_Go/internal/database/jsonfile"
	"github.com/osse101/SkinBot_Go/internal/domain"
	"github.com/osse101/SkinBot_Go/internal/inventory"
	"github.com/osse101/SkinBot_Go/internal/market"
	"github.com/osse101/SkinBot_Go/internal/naming"
	"github.com/osse101/SkinBot_Go/internal/skin"
	"github.com/osse101/SkinBot_Go/internal/testing/fixtures"
	"github.com/osse101/SkinBot_Go/internal/valuation"
)

const adminKey = "1781542224"

type snapshotHolder struct {
	snap *market.Snapshot
}

func (h snapshotHolder) Snapshot() *market.Snapshot { return h.snap }

func (h snapshotHolder) QuoteFor(id int) (domain.MarketQuote, bool) { return h.snap.QuoteFor(id) }

type testEnv struct {
	skins     skin.Service
	inventory inventory.Service
	valuation valuation.Engine
	access    access.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	InitValidator()
	dir := t.TempDir()

	c := fixtures.Catalog(t)
	resolver, err := naming.NewResolver(c, 64)
	require.NoError(t, err)

	quotes := snapshotHolder{snap: market.NewSnapshot([]domain.MarketQuote{
		{SkinID: "1", SalePrice: "12.50"},
	}, time.Now())}

	return &testEnv{
		skins:     skin.NewService(resolver, contents.NewExpander(c), quotes, "https://img.example"),
		inventory: inventory.NewService(jsonfile.NewInventoryRepository(filepath.Join(dir, "inventories")), inventory.DefaultLimits()),
		valuation: valuation.NewEngine(resolver, quotes),
		access:    access.NewService(jsonfile.NewBlocklistRepository(filepath.Join(dir, "blocklist.json")), []string{adminKey}),
	}
}

func (e *testEnv) inventoryHandlers() *InventoryHandlers {
	return NewInventoryHandlers(e.inventory, e.skins, e.valuation, e.access)
}

func doJSON(t *testing.T, h http.HandlerFunc, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}
