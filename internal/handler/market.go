package handler

import (
	"context"
	"net/http"

	"github.com/osse101/SkinBot_Go/internal/market"
)

// MarketStatus is the subset of the market cache the API needs
type MarketStatus interface {
	Status() market.Status
	ForceRefresh(ctx context.Context) error
}

// HandleMarketStatus reports snapshot size and freshness
// @Summary Market cache status
// @Tags market
// @Produce json
// @Success 200 {object} market.Status
// @Router /market/status [get]
func HandleMarketStatus(cache MarketStatus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, cache.Status())
	}
}

// HandleAdminMarketRefresh refreshes the snapshot now. On failure the previous snapshot stays.
// @Summary Force a market refresh
// @Tags admin
// @Produce json
// @Success 200 {object} DataResponse
// @Failure 502 {object} ErrorResponse
// @Router /admin/market/refresh [post]
func HandleAdminMarketRefresh(cache MarketStatus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := cache.ForceRefresh(r.Context()); err != nil {
			respondServiceError(w, r, ErrMsgRefreshFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgMarketRefreshed, Data: cache.Status()})
	}
}
