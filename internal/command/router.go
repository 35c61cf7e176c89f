// Package command turns normalized chat requests into replies. It is shared by
// every transport; transports only parse updates and render Messages.
package command

import (
	"context"
	"strings"

	"github.com/osse101/SkinBot_Go/internal/access"
	"github.com/osse101/SkinBot_Go/internal/confirm"
	"github.com/osse101/SkinBot_Go/internal/domain"
	"github.com/osse101/SkinBot_Go/internal/info"
	"github.com/osse101/SkinBot_Go/internal/inventory"
	"github.com/osse101/SkinBot_Go/internal/logger"
	"github.com/osse101/SkinBot_Go/internal/metrics"
	"github.com/osse101/SkinBot_Go/internal/skin"
	"github.com/osse101/SkinBot_Go/internal/valuation"
)

// Request is one inbound chat message or command
type Request struct {
	Platform       string
	UserID         string
	Username       string
	ConversationID string
	Private        bool

	// Command is the lowercase command name without its prefix. Empty for plain text.
	Command string
	Args    string
	Text    string
}

// UserKey is the storage key of the requesting user
func (r Request) UserKey() string {
	return domain.UserKey(r.Platform, r.UserID)
}

func (r Request) conversationKey() string {
	return r.Platform + ":" + r.ConversationID
}

// Response is the reply to a Request. A zero Response means stay silent.
type Response struct {
	Message  Message
	PhotoURL string
}

// Silent reports whether nothing should be sent
func (r Response) Silent() bool {
	return r.Message.IsEmpty() && r.PhotoURL == ""
}

func reply(format string, args ...any) Response {
	return Response{Message: PlainMessage(format, args...)}
}

// Dependencies are the services commands call into
type Dependencies struct {
	Skins         skin.Service
	Inventory     inventory.Service
	Valuation     valuation.Engine
	Confirmations confirm.Manager
	Access        access.Service
	Info          *info.Loader
}

type handlerFunc func(ctx context.Context, req Request) Response

type route struct {
	handle      handlerFunc
	privateOnly bool
}

// Router dispatches requests to command handlers
type Router struct {
	deps      Dependencies
	formatter *info.Formatter
	routes    map[string]route
}

// NewRouter creates a router with every bot command registered
func NewRouter(deps Dependencies) *Router {
	r := &Router{
		deps:      deps,
		formatter: info.NewFormatter(),
		routes:    make(map[string]route),
	}

	r.register(CmdStart, r.handleStart, false)
	r.register(CmdHelp, r.handleHelp, false)
	r.register(CmdSkin, r.handleSkin, false)
	r.register(CmdCollection, r.handleCollection, false)
	r.register(CmdInventory, r.handleInventory, false)
	r.register(CmdAdd, r.handleAdd, true)
	r.register(CmdDelete, r.handleDelete, true)
	r.register(CmdBlock, r.handleBlock, true)
	r.register(CmdUnblock, r.handleUnblock, true)

	return r
}

func (r *Router) register(name string, h handlerFunc, privateOnly bool) {
	r.routes[name] = route{handle: h, privateOnly: privateOnly}
}

// Commands lists the registered command names
func (r *Router) Commands() []string {
	names := make([]string, 0, len(r.routes))
	for _, name := range commandOrder {
		if _, ok := r.routes[name]; ok {
			names = append(names, name)
		}
	}
	return names
}

// Handle processes a request. Errors never escape; they become reply text.
func (r *Router) Handle(ctx context.Context, req Request) Response {
	if req.Command == "" {
		return r.handleReply(ctx, req)
	}

	log := logger.FromContext(ctx)
	rt, ok := r.routes[req.Command]
	if !ok {
		log.Debug(LogMsgUnknownCommand, "command", req.Command)
		return Response{}
	}

	metrics.CommandsTotal.WithLabelValues(req.Platform, req.Command).Inc()
	log.Info(LogMsgCommandReceived, "platform", req.Platform, "user_id", req.UserID,
		"username", req.Username, "command", req.Command)

	if r.deps.Access.IsBlocked(ctx, req.UserKey()) {
		metrics.BlockedRequestsTotal.WithLabelValues(req.Platform).Inc()
		return reply(MsgBlocked)
	}

	if rt.privateOnly && !req.Private {
		return Response{}
	}

	return rt.handle(ctx, req)
}

// InlineResult is a skin card prepared for inline display
type InlineResult struct {
	Card    *skin.Card
	Message Message
}

// Inline answers an inline query. Blocked users and misses get no result.
func (r *Router) Inline(ctx context.Context, req Request) (*InlineResult, bool) {
	query := strings.TrimSpace(req.Text)
	if query == "" {
		return nil, false
	}
	if r.deps.Access.IsBlocked(ctx, req.UserKey()) {
		metrics.BlockedRequestsTotal.WithLabelValues(req.Platform).Inc()
		return nil, false
	}

	card, err := r.deps.Skins.Lookup(ctx, query)
	if err != nil {
		return nil, false
	}
	return &InlineResult{Card: card, Message: CardMessage(card)}, true
}

// Holdings lists the requester's inventory for name suggestions. Blocked users
// and storage failures get nothing.
func (r *Router) Holdings(ctx context.Context, req Request) []domain.InventoryEntry {
	if r.deps.Access.IsBlocked(ctx, req.UserKey()) {
		return nil
	}
	inv, err := r.deps.Inventory.Get(ctx, req.UserKey())
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgHoldingsFailed, "user_id", req.UserID, "error", err)
		return nil
	}
	return inv.Entries()
}

func (r *Router) internalError(ctx context.Context, req Request, err error) Response {
	logger.FromContext(ctx).Error(LogMsgCommandFailed, "command", req.Command, "user_id", req.UserID, "error", err)
	return reply(MsgGenericError)
}
