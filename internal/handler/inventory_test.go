package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SkinBot_Go/internal/domain"
	"github.com/osse101/SkinBot_Go/internal/valuation"
)

func intPtr(v int) *int { return &v }

func TestHandleAddItem(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "resolves transliterated name",
			body:           AddItemRequest{Platform: domain.PlatformTelegram, PlatformID: "5", ItemName: "ред фокс", Quantity: 4},
			expectedStatus: http.StatusOK,
			expectedBody:   `"item_name":"Red Fox","quantity":4`,
		},
		{
			name:           "unknown item",
			body:           AddItemRequest{Platform: domain.PlatformTelegram, PlatformID: "5", ItemName: "qqqq zzzz", Quantity: 1},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgItemNotFoundError,
		},
		{
			name:           "quantity above limit",
			body:           AddItemRequest{Platform: domain.PlatformTelegram, PlatformID: "5", ItemName: "Red Fox", Quantity: 10001},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidQuantityError,
		},
		{
			name:           "missing fields",
			body:           AddItemRequest{ItemName: "Red Fox"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"platform":"This field is required"`,
		},
		{
			name:           "unknown platform",
			body:           AddItemRequest{Platform: "twitch", PlatformID: "5", ItemName: "Red Fox", Quantity: 1},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid platform",
		},
		{
			name:           "path in user id",
			body:           AddItemRequest{Platform: domain.PlatformTelegram, PlatformID: "../etc", ItemName: "Red Fox", Quantity: 1},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid user id",
		},
		{
			name:           "malformed json",
			body:           "{",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			w := doJSON(t, env.inventoryHandlers().HandleAddItem, http.MethodPost, "/api/v1/inventory/add", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleAddItem_Blocked(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.access.Block(context.Background(), adminKey, "5")
	require.NoError(t, err)

	w := doJSON(t, env.inventoryHandlers().HandleAddItem, http.MethodPost, "/api/v1/inventory/add",
		AddItemRequest{Platform: domain.PlatformTelegram, PlatformID: "5", ItemName: "Red Fox", Quantity: 1})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgUserBlockedError)
}

func TestHandleRemoveItem(t *testing.T) {
	tests := []struct {
		name           string
		held           int
		quantity       *int
		expectedStatus int
		expectedBody   string
	}{
		{"partial", 5, intPtr(2), http.StatusOK, `"quantity":3`},
		{"whole stack", 5, nil, http.StatusOK, `"quantity":0`},
		{"not enough", 1, intPtr(2), http.StatusConflict, ErrMsgInsufficientItemsErr},
		{"not held", 0, intPtr(1), http.StatusConflict, ErrMsgNotInInventoryError},
		{"above limit", 5, intPtr(1001), http.StatusBadRequest, ErrMsgInvalidQuantityError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			if tt.held > 0 {
				_, err := env.inventory.Add(context.Background(), "discord-7", "Red Fox", tt.held)
				require.NoError(t, err)
			}

			w := doJSON(t, env.inventoryHandlers().HandleRemoveItem, http.MethodPost, "/api/v1/inventory/remove",
				RemoveItemRequest{Platform: domain.PlatformDiscord, PlatformID: "7", ItemName: "red fox", Quantity: tt.quantity})
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleGetInventoryAndValuation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, err := env.inventory.Add(ctx, "5", "Red Fox", 4)
	require.NoError(t, err)
	_, err = env.inventory.Add(ctx, "5", "Blue Moon", 1)
	require.NoError(t, err)

	h := env.inventoryHandlers()

	w := doJSON(t, h.HandleGetInventory, http.MethodGet, "/api/v1/inventory?user_id=5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	inv := decodeBody[InventoryResponse](t, w)
	assert.Equal(t, "5", inv.UserID)
	assert.Equal(t, []domain.InventoryEntry{{Name: "Red Fox", Quantity: 4}, {Name: "Blue Moon", Quantity: 1}}, inv.Items)

	w = doJSON(t, h.HandleGetValuation, http.MethodGet, "/api/v1/inventory/valuation?user_id=5&platform=telegram", nil)
	require.Equal(t, http.StatusOK, w.Code)
	report := decodeBody[valuation.Report](t, w)
	require.Len(t, report.Lines, 2)
	assert.InDelta(t, 50.0, report.Total, 1e-9)
	assert.InDelta(t, 40.0, report.TotalAfterFee, 1e-9)
	assert.Zero(t, report.Lines[1].UnitPrice)
}

func TestHandleReads_Blocked(t *testing.T) {
	tests := []struct {
		name   string
		handle func(*InventoryHandlers) http.HandlerFunc
		target string
	}{
		{"inventory", func(h *InventoryHandlers) http.HandlerFunc { return h.HandleGetInventory }, "/api/v1/inventory?user_id=5"},
		{"valuation", func(h *InventoryHandlers) http.HandlerFunc { return h.HandleGetValuation }, "/api/v1/inventory/valuation?user_id=5&platform=telegram"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			ctx := context.Background()
			_, err := env.inventory.Add(ctx, "5", "Red Fox", 4)
			require.NoError(t, err)
			_, err = env.access.Block(ctx, adminKey, "5")
			require.NoError(t, err)

			w := doJSON(t, tt.handle(env.inventoryHandlers()), http.MethodGet, tt.target, nil)
			assert.Equal(t, http.StatusForbidden, w.Code)
			assert.Contains(t, w.Body.String(), ErrMsgUserBlockedError)
			assert.NotContains(t, w.Body.String(), "Red Fox")
		})
	}
}

func TestHandleGetInventory_BadQuery(t *testing.T) {
	env := newTestEnv(t)
	h := env.inventoryHandlers()

	w := doJSON(t, h.HandleGetInventory, http.MethodGet, "/api/v1/inventory", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing user_id query parameter")

	w = doJSON(t, h.HandleGetInventory, http.MethodGet, "/api/v1/inventory?user_id=5&platform=irc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid platform query parameter")
}
