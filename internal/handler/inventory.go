package handler

import (
	"net/http"
	"strings"

	"github.com/osse101/SkinBot_Go/internal/access"
	"github.com/osse101/SkinBot_Go/internal/domain"
	"github.com/osse101/SkinBot_Go/internal/inventory"
	"github.com/osse101/SkinBot_Go/internal/logger"
	"github.com/osse101/SkinBot_Go/internal/skin"
	"github.com/osse101/SkinBot_Go/internal/valuation"
)

// InventoryHandlers serves inventory reads and mutations.
// API mutations skip the chat confirmation step; callers hold the API key.
type InventoryHandlers struct {
	inventory inventory.Service
	skins     skin.Service
	valuation valuation.Engine
	access    access.Service
}

// NewInventoryHandlers creates inventory handlers
func NewInventoryHandlers(inv inventory.Service, skins skin.Service, engine valuation.Engine, acc access.Service) *InventoryHandlers {
	return &InventoryHandlers{inventory: inv, skins: skins, valuation: engine, access: acc}
}

// InventoryResponse lists a user's holdings in insertion order
type InventoryResponse struct {
	UserID string                  `json:"user_id"`
	Items  []domain.InventoryEntry `json:"items"`
}

// AddItemRequest adds a resolved skin to a user's inventory
type AddItemRequest struct {
	Platform   string `json:"platform" validate:"required,platform"`
	PlatformID string `json:"platform_id" validate:"required,max=64,userkey"`
	ItemName   string `json:"item_name" validate:"required,max=200,excludesall=\x00\n\r\t"`
	Quantity   int    `json:"quantity" validate:"required,min=1"`
}

// RemoveItemRequest removes quantity of an item, or the whole stack when quantity is omitted
type RemoveItemRequest struct {
	Platform   string `json:"platform" validate:"required,platform"`
	PlatformID string `json:"platform_id" validate:"required,max=64,userkey"`
	ItemName   string `json:"item_name" validate:"required,max=200,excludesall=\x00\n\r\t"`
	Quantity   *int   `json:"quantity,omitempty" validate:"omitempty,min=1"`
}

// MutationResponse reports the quantity held after a change
type MutationResponse struct {
	Message  string `json:"message"`
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
}

// HandleGetInventory returns the raw inventory
// @Summary Get inventory
// @Tags inventory
// @Produce json
// @Param user_id query string true "Platform user id"
// @Param platform query string false "telegram (default), discord or api"
// @Success 200 {object} InventoryResponse
// @Failure 403 {object} ErrorResponse
// @Router /inventory [get]
func (h *InventoryHandlers) HandleGetInventory(w http.ResponseWriter, r *http.Request) {
	key, ok := userKeyFromQuery(r, w)
	if !ok || !h.allowed(w, r, key) {
		return
	}

	inv, err := h.inventory.Get(r.Context(), key)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetInventoryFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, InventoryResponse{UserID: key, Items: inv.Entries()})
}

// HandleGetValuation values the inventory against the current market snapshot
// @Summary Value inventory
// @Tags inventory
// @Produce json
// @Param user_id query string true "Platform user id"
// @Param platform query string false "telegram (default), discord or api"
// @Success 200 {object} valuation.Report
// @Failure 403 {object} ErrorResponse
// @Router /inventory/valuation [get]
func (h *InventoryHandlers) HandleGetValuation(w http.ResponseWriter, r *http.Request) {
	key, ok := userKeyFromQuery(r, w)
	if !ok || !h.allowed(w, r, key) {
		return
	}

	inv, err := h.inventory.Get(r.Context(), key)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetInventoryFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, h.valuation.Value(r.Context(), inv))
}

// HandleAddItem resolves the item name and adds it
// @Summary Add item to inventory
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body AddItemRequest true "Item details"
// @Success 200 {object} MutationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /inventory/add [post]
func (h *InventoryHandlers) HandleAddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "add item"); err != nil {
		return
	}
	ctx := r.Context()

	key, ok := h.authorize(w, r, req.Platform, req.PlatformID)
	if !ok {
		return
	}
	if err := h.inventory.ValidateQuantity(inventory.OpAdd, req.Quantity); err != nil {
		respondServiceError(w, r, "add item", err)
		return
	}
	match, err := h.skins.Find(ctx, req.ItemName)
	if err != nil {
		respondServiceError(w, r, "add item", err)
		return
	}

	total, err := h.inventory.Add(ctx, key, match.Skin.Name, req.Quantity)
	if err != nil {
		respondServiceError(w, r, "add item", err)
		return
	}

	logger.FromContext(ctx).Info(LogMsgItemAdded, "user_id", key, "item", match.Skin.Name, "quantity", req.Quantity)
	respondJSON(w, http.StatusOK, MutationResponse{Message: MsgItemAddedSuccess, ItemName: match.Skin.Name, Quantity: total})
}

// HandleRemoveItem removes an item by its stored name
// @Summary Remove item from inventory
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body RemoveItemRequest true "Item details"
// @Success 200 {object} MutationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /inventory/remove [post]
func (h *InventoryHandlers) HandleRemoveItem(w http.ResponseWriter, r *http.Request) {
	var req RemoveItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "remove item"); err != nil {
		return
	}
	ctx := r.Context()

	key, ok := h.authorize(w, r, req.Platform, req.PlatformID)
	if !ok {
		return
	}
	if req.Quantity != nil {
		if err := h.inventory.ValidateQuantity(inventory.OpRemove, *req.Quantity); err != nil {
			respondServiceError(w, r, "remove item", err)
			return
		}
	}

	name := req.ItemName
	if match, err := h.skins.Find(ctx, name); err == nil {
		name = match.Skin.Name
	}

	left, err := h.inventory.Remove(ctx, key, name, req.Quantity)
	if err != nil {
		respondServiceError(w, r, "remove item", err)
		return
	}

	logger.FromContext(ctx).Info(LogMsgItemRemoved, "user_id", key, "item", name, "remaining", left)
	respondJSON(w, http.StatusOK, MutationResponse{Message: MsgItemRemovedSuccess, ItemName: name, Quantity: left})
}

// authorize builds the user key and rejects blocked users
func (h *InventoryHandlers) authorize(w http.ResponseWriter, r *http.Request, platform, platformID string) (string, bool) {
	key := domain.UserKey(strings.ToLower(platform), platformID)
	if !h.allowed(w, r, key) {
		return "", false
	}
	return key, true
}

// allowed writes 403 for blocked users
func (h *InventoryHandlers) allowed(w http.ResponseWriter, r *http.Request, key string) bool {
	if h.access.IsBlocked(r.Context(), key) {
		respondServiceError(w, r, "authorize", domain.ErrUserBlocked)
		return false
	}
	return true
}
