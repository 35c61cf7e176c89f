package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SkinBot_Go/internal/command"
	"github.com/osse101/SkinBot_Go/internal/domain"
)

// MockRoundTripper intercepts Discord REST calls made by a session
type MockRoundTripper struct {
	mu       sync.Mutex
	Requests []CapturedRequest
}

// CapturedRequest is one intercepted call
type CapturedRequest struct {
	Method string
	Path   string
	Body   []byte
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
	}
	m.mu.Lock()
	m.Requests = append(m.Requests, CapturedRequest{Method: req.Method, Path: req.URL.Path, Body: body})
	m.mu.Unlock()

	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewBufferString("{}")),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Request:    req,
	}, nil
}

func (m *MockRoundTripper) byMethod(method string) []CapturedRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []CapturedRequest
	for _, r := range m.Requests {
		if r.Method == method {
			out = append(out, r)
		}
	}
	return out
}

// newTestSession returns a session whose HTTP calls never leave the process
func newTestSession(t *testing.T) (*discordgo.Session, *MockRoundTripper) {
	t.Helper()
	s, err := discordgo.New("Bot test-token")
	require.NoError(t, err)
	rt := &MockRoundTripper{}
	s.Client = &http.Client{Transport: rt}
	return s, rt
}

// stubHandler records requests and replies with a canned response
type stubHandler struct {
	mu       sync.Mutex
	requests []command.Request
	response command.Response
	holdings []domain.InventoryEntry
}

func (h *stubHandler) Handle(_ context.Context, req command.Request) command.Response {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.requests = append(h.requests, req)
	return h.response
}

func (h *stubHandler) Holdings(_ context.Context, req command.Request) []domain.InventoryEntry {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.requests = append(h.requests, req)
	return h.holdings
}

func (h *stubHandler) last(t *testing.T) command.Request {
	t.Helper()
	h.mu.Lock()
	defer h.mu.Unlock()
	require.NotEmpty(t, h.requests)
	return h.requests[len(h.requests)-1]
}

type interactionOption struct {
	name  string
	typ   discordgo.ApplicationCommandOptionType
	value any
}

func newInteraction(typ discordgo.InteractionType, name, guildID string, opts ...interactionOption) *discordgo.InteractionCreate {
	data := discordgo.ApplicationCommandInteractionData{Name: name}
	for _, o := range opts {
		data.Options = append(data.Options, &discordgo.ApplicationCommandInteractionDataOption{
			Name:  o.name,
			Type:  o.typ,
			Value: o.value,
		})
	}

	i := &discordgo.Interaction{
		ID:        "interaction-1",
		AppID:     "app-1",
		Type:      typ,
		Token:     "token-1",
		ChannelID: "channel-1",
		GuildID:   guildID,
		Data:      data,
	}
	user := &discordgo.User{ID: "42", Username: "fox"}
	if guildID == "" {
		i.User = user
	} else {
		i.Member = &discordgo.Member{User: user}
	}
	return &discordgo.InteractionCreate{Interaction: i}
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v))
	return v
}
