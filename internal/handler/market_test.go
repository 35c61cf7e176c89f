package handler

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/SkinBot_Go/internal/domain"
	"github.com/osse101/SkinBot_Go/internal/market"
)

type MockMarket struct {
	mock.Mock
}

func (m *MockMarket) Status() market.Status {
	return m.Called().Get(0).(market.Status)
}

func (m *MockMarket) ForceRefresh(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func TestHandleMarketStatus(t *testing.T) {
	refreshed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	m := &MockMarket{}
	m.On("Status").Return(market.Status{Enabled: true, Quotes: 12, LastRefreshed: refreshed})

	w := doJSON(t, HandleMarketStatus(m), http.MethodGet, "/api/v1/market/status", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	status := decodeBody[market.Status](t, w)
	assert.Equal(t, 12, status.Quotes)
	assert.True(t, status.LastRefreshed.Equal(refreshed))
}

func TestHandleAdminMarketRefresh(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		m := &MockMarket{}
		m.On("ForceRefresh", mock.Anything).Return(nil)
		m.On("Status").Return(market.Status{Enabled: true, Quotes: 3})

		w := doJSON(t, HandleAdminMarketRefresh(m), http.MethodPost, "/api/v1/admin/market/refresh", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), MsgMarketRefreshed)
		m.AssertExpectations(t)
	})

	t.Run("upstream failure", func(t *testing.T) {
		m := &MockMarket{}
		m.On("ForceRefresh", mock.Anything).Return(fmt.Errorf("%w: status 503", domain.ErrUpstreamFetch))

		w := doJSON(t, HandleAdminMarketRefresh(m), http.MethodPost, "/api/v1/admin/market/refresh", nil)
		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgUpstreamError)
	})
}
