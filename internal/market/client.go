package market

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/osse101/SkinBot_Go/internal/domain"
)

// Fetcher retrieves the full quote list from the market feed
type Fetcher interface {
	Fetch(ctx context.Context) ([]domain.MarketQuote, error)
}

// Client fetches quotes over HTTP
type Client struct {
	client *resty.Client
	url    string
}

// NewClient creates a market feed client for url
func NewClient(url string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client := resty.New()
	client.SetTimeout(timeout)
	client.SetHeader("User-Agent", userAgent)
	client.SetHeader("Accept", "application/json")

	return &Client{
		client: client,
		url:    url,
	}
}

// Fetch GETs the feed and decodes the JSON array of quotes.
// All failures wrap domain.ErrUpstreamFetch.
func (c *Client) Fetch(ctx context.Context) ([]domain.MarketQuote, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get(c.url)
	if err != nil {
		return nil, fmt.Errorf("%w: "+ErrMsgRequestFailed, domain.ErrUpstreamFetch, c.url, err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("%w: "+ErrMsgBadStatus, domain.ErrUpstreamFetch, resp.StatusCode(), c.url)
	}

	var quotes []domain.MarketQuote
	if err := json.Unmarshal(resp.Body(), &quotes); err != nil {
		return nil, fmt.Errorf("%w: "+ErrMsgDecodeFailed, domain.ErrUpstreamFetch, err)
	}
	return quotes, nil
}
