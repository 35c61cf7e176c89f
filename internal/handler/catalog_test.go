package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SkinBot_Go/internal/skin"
	"github.com/osse101/SkinBot_Go/internal/testing/fixtures"
)

func TestHandleGetSkin(t *testing.T) {
	env := newTestEnv(t)
	h := HandleGetSkin(env.skins)

	w := doJSON(t, h, http.MethodGet, "/api/v1/skins?q=red+fox", nil)
	require.Equal(t, http.StatusOK, w.Code)
	card := decodeBody[skin.Card](t, w)
	assert.Equal(t, fixtures.IDRedFox, card.Skin.ID)
	assert.Equal(t, "Wild west", card.Collection)
	require.NotNil(t, card.Quote)

	w = doJSON(t, h, http.MethodGet, "/api/v1/skins?q=qqqq+zzzz", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, h, http.MethodGet, "/api/v1/skins", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleGetCollection(t *testing.T) {
	env := newTestEnv(t)
	h := HandleGetCollection(env.skins)

	w := doJSON(t, h, http.MethodGet, "/api/v1/collections?q=wild_west", nil)
	require.Equal(t, http.StatusOK, w.Code)
	listing := decodeBody[skin.Listing](t, w)
	assert.Equal(t, "Wild west", listing.Title)
	assert.NotEmpty(t, listing.Groups)

	w = doJSON(t, h, http.MethodGet, "/api/v1/collections?q=qqqqqq", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgCollectionNotFoundErr)
}
