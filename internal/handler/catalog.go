package handler

import (
	"net/http"

	"github.com/osse101/SkinBot_Go/internal/skin"
)

// HandleGetSkin resolves a free-text query to a skin card
// @Summary Look up a skin
// @Tags catalog
// @Produce json
// @Param q query string true "Skin name, Latin or Cyrillic"
// @Success 200 {object} skin.Card
// @Failure 404 {object} ErrorResponse
// @Router /skins [get]
func HandleGetSkin(svc skin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, ok := GetQueryParam(r, w, "q")
		if !ok {
			return
		}

		card, err := svc.Lookup(r.Context(), query)
		if err != nil {
			respondServiceError(w, r, "lookup skin", err)
			return
		}
		respondJSON(w, http.StatusOK, card)
	}
}

// HandleGetCollection lists a collection grouped by rarity
// @Summary Look up a collection
// @Tags catalog
// @Produce json
// @Param q query string true "Collection name"
// @Success 200 {object} skin.Listing
// @Failure 404 {object} ErrorResponse
// @Router /collections [get]
func HandleGetCollection(svc skin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, ok := GetQueryParam(r, w, "q")
		if !ok {
			return
		}

		listing, err := svc.Collection(r.Context(), query)
		if err != nil {
			respondServiceError(w, r, "lookup collection", err)
			return
		}
		respondJSON(w, http.StatusOK, listing)
	}
}
