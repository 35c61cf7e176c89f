package command

import (
	"context"
	"errors"
	"strings"

	"github.com/osse101/SkinBot_Go/internal/confirm"
	"github.com/osse101/SkinBot_Go/internal/domain"
	"github.com/osse101/SkinBot_Go/internal/inventory"
	"github.com/osse101/SkinBot_Go/internal/logger"
)

func (r *Router) handleStart(_ context.Context, req Request) Response {
	return r.infoReply(featureStart, req.Platform, false)
}

func (r *Router) handleHelp(_ context.Context, req Request) Response {
	return r.infoReply(featureHelp, req.Platform, true)
}

func (r *Router) infoReply(name, platform string, withTopics bool) Response {
	if r.deps.Info == nil {
		return reply(MsgHelpMissing)
	}
	feature, ok := r.deps.Info.GetFeature(name)
	if !ok {
		return reply(MsgHelpMissing)
	}
	text := r.formatter.FormatFeature(feature, platform)
	if withTopics {
		text = r.formatter.FormatHelp(feature, platform)
	}
	return Response{Message: Plain(strings.TrimSpace(text))}
}

func (r *Router) handleSkin(ctx context.Context, req Request) Response {
	query := strings.TrimSpace(req.Args)
	if query == "" {
		return reply(MsgSkinNameMissing)
	}

	card, err := r.deps.Skins.Lookup(ctx, query)
	if errors.Is(err, domain.ErrItemNotFound) {
		return reply(MsgSkinNotFound)
	}
	if err != nil {
		return r.internalError(ctx, req, err)
	}
	return Response{Message: CardMessage(card), PhotoURL: card.ImageURL}
}

func (r *Router) handleCollection(ctx context.Context, req Request) Response {
	query := strings.TrimSpace(req.Args)
	if query == "" {
		return reply(MsgColNameMissing)
	}

	listing, err := r.deps.Skins.Collection(ctx, query)
	switch {
	case errors.Is(err, domain.ErrCollectionNotFound):
		return reply(MsgCollectionMissing)
	case errors.Is(err, domain.ErrItemNotFound):
		return reply(MsgCollectionEmpty)
	case err != nil:
		return r.internalError(ctx, req, err)
	}
	return Response{Message: ListingMessage(listing)}
}

func (r *Router) handleInventory(ctx context.Context, req Request) Response {
	inv, err := r.deps.Inventory.Get(ctx, req.UserKey())
	if err != nil {
		return r.internalError(ctx, req, err)
	}
	if inv.IsEmpty() {
		return reply(MsgInventoryEmpty)
	}
	return Response{Message: ReportMessage(r.deps.Valuation.Value(ctx, inv))}
}

func (r *Router) handleAdd(ctx context.Context, req Request) Response {
	name, rawQty, hasQty := splitQuantity(req.Args)
	if !hasQty {
		return reply(MsgAddFormat)
	}

	qty, err := r.deps.Inventory.ParseQuantity(inventory.OpAdd, rawQty)
	if err != nil {
		return r.quantityError(inventory.OpAdd, rawQty)
	}

	match, err := r.deps.Skins.Find(ctx, name)
	if err != nil {
		return reply(MsgSkinNotFound)
	}

	r.deps.Confirmations.Begin(ctx, confirm.Pending{
		UserID:         req.UserKey(),
		ConversationID: req.conversationKey(),
		Action:         confirm.ActionAdd,
		SkinName:       match.Skin.Name,
		Quantity:       &qty,
	})
	return reply(MsgConfirmAdd, qty, match.Skin.Name)
}

func (r *Router) handleDelete(ctx context.Context, req Request) Response {
	name, rawQty, hasQty := splitQuantity(req.Args)
	if strings.TrimSpace(name) == "" {
		return reply(MsgDelFormat)
	}

	var qty *int
	if hasQty {
		n, err := r.deps.Inventory.ParseQuantity(inventory.OpRemove, rawQty)
		if err != nil {
			return r.quantityError(inventory.OpRemove, rawQty)
		}
		qty = &n
	}

	match, err := r.deps.Skins.Find(ctx, name)
	if err != nil {
		return reply(MsgSkinNotFound)
	}

	r.deps.Confirmations.Begin(ctx, confirm.Pending{
		UserID:         req.UserKey(),
		ConversationID: req.conversationKey(),
		Action:         confirm.ActionRemove,
		SkinName:       match.Skin.Name,
		Quantity:       qty,
	})
	if qty == nil {
		return reply(MsgConfirmRemoveAll, match.Skin.Name)
	}
	return reply(MsgConfirmRemove, *qty, match.Skin.Name)
}

// handleReply treats plain text as the answer to a pending confirmation
func (r *Router) handleReply(ctx context.Context, req Request) Response {
	if r.deps.Access.IsBlocked(ctx, req.UserKey()) {
		r.deps.Confirmations.Cancel(req.UserKey(), req.conversationKey())
		return Response{}
	}

	decision, err := r.deps.Confirmations.Resolve(ctx, req.UserKey(), req.conversationKey(), req.Text)
	switch {
	case errors.Is(err, domain.ErrNoPendingConfirmation):
		return Response{}
	case errors.Is(err, domain.ErrConfirmationHijack):
		return reply(MsgConfirmForeign)
	case errors.Is(err, domain.ErrConfirmationExpired):
		return reply(MsgConfirmExpired)
	case err != nil:
		return r.internalError(ctx, req, err)
	}

	p := decision.Pending
	if !decision.Committed() {
		if p.Action == confirm.ActionAdd {
			return reply(MsgAddCancelled)
		}
		return reply(MsgRemoveCancelled)
	}

	return r.apply(ctx, req, p)
}

func (r *Router) apply(ctx context.Context, req Request, p confirm.Pending) Response {
	log := logger.FromContext(ctx)

	switch p.Action {
	case confirm.ActionAdd:
		if _, err := r.deps.Inventory.Add(ctx, p.UserID, p.SkinName, *p.Quantity); err != nil {
			return r.internalError(ctx, req, err)
		}
		log.Info(LogMsgMutationApplied, "pending_id", p.ID, "action", p.Action)
		return reply(MsgAdded, *p.Quantity, p.SkinName)

	case confirm.ActionRemove:
		_, err := r.deps.Inventory.Remove(ctx, p.UserID, p.SkinName, p.Quantity)
		switch {
		case errors.Is(err, domain.ErrInsufficientQuantity):
			return reply(MsgNotEnough, p.SkinName)
		case errors.Is(err, domain.ErrNotInInventory):
			return reply(MsgNotHeld, p.SkinName)
		case err != nil:
			return r.internalError(ctx, req, err)
		}
		log.Info(LogMsgMutationApplied, "pending_id", p.ID, "action", p.Action)
		if p.Quantity == nil {
			return reply(MsgRemovedAll, p.SkinName)
		}
		return reply(MsgRemoved, *p.Quantity, p.SkinName)
	}

	return Response{}
}

func (r *Router) handleBlock(ctx context.Context, req Request) Response {
	return r.blocklistCommand(ctx, req, true)
}

func (r *Router) handleUnblock(ctx context.Context, req Request) Response {
	return r.blocklistCommand(ctx, req, false)
}

func (r *Router) blocklistCommand(ctx context.Context, req Request, block bool) Response {
	if !r.deps.Access.IsAdmin(req.UserKey()) {
		return reply(MsgNoPermission)
	}

	fields := strings.Fields(req.Args)
	if len(fields) == 0 {
		return reply(MsgNeedTargetID)
	}
	target := TargetKey(req.Platform, fields[0])

	var err error
	if block {
		_, err = r.deps.Access.Block(ctx, req.UserKey(), target)
	} else {
		_, err = r.deps.Access.Unblock(ctx, req.UserKey(), target)
	}
	switch {
	case errors.Is(err, domain.ErrForbidden):
		return reply(MsgNoPermission)
	case errors.Is(err, domain.ErrInvalidInput):
		return reply(MsgNeedTargetID)
	case err != nil:
		return r.internalError(ctx, req, err)
	}

	if block {
		return reply(MsgUserBlocked, fields[0])
	}
	return reply(MsgUserUnblocked, fields[0])
}

func (r *Router) quantityError(op inventory.Operation, raw string) Response {
	if _, err := parseInt(raw); err != nil {
		return reply(MsgQuantityInvalid)
	}
	return reply(MsgQuantityRange, r.deps.Inventory.Limits().Max(op))
}

// TargetKey builds the user key for an admin command argument. Arguments that
// already carry a platform prefix such as "discord-123" are used as given.
func TargetKey(platform, arg string) string {
	for _, p := range domain.ValidPlatforms {
		if strings.HasPrefix(arg, p+"-") {
			return arg
		}
	}
	return domain.UserKey(platform, arg)
}

// splitQuantity splits "name: qty" on the first separator
func splitQuantity(args string) (name, qty string, ok bool) {
	name, qty, ok = strings.Cut(strings.TrimSpace(args), quantitySeparator)
	return strings.TrimSpace(name), strings.TrimSpace(qty), ok
}
