// Package access decides who may use the bot.
package access

import (
	"context"
	"fmt"

	"github.com/osse101/SkinBot_Go/internal/domain"
	"github.com/osse101/SkinBot_Go/internal/logger"
	"github.com/osse101/SkinBot_Go/internal/repository"
)

// Log messages
const (
	LogMsgUserBlocked     = "User blocked"
	LogMsgUserUnblocked   = "User unblocked"
	LogMsgForbiddenAction = "Non-admin attempted admin action"
	LogMsgBlocklistFailed = "Blocklist lookup failed, allowing request"
)

// Service wraps the blocklist with admin checks
type Service interface {
	// IsBlocked reports whether userID may not use the bot. Lookup failures are logged and treated as not blocked.
	IsBlocked(ctx context.Context, userID string) bool

	IsAdmin(userID string) bool

	// Block adds target to the blocklist on behalf of actor
	Block(ctx context.Context, actorID, targetID string) (bool, error)

	// Unblock removes target from the blocklist on behalf of actor
	Unblock(ctx context.Context, actorID, targetID string) (bool, error)

	List(ctx context.Context) ([]string, error)
}

type service struct {
	repo   repository.Blocklist
	admins map[string]struct{}
}

// NewService creates an access service. admins are user keys allowed to manage the blocklist.
func NewService(repo repository.Blocklist, admins []string) Service {
	set := make(map[string]struct{}, len(admins))
	for _, a := range admins {
		set[a] = struct{}{}
	}
	return &service{repo: repo, admins: set}
}

func (s *service) IsBlocked(ctx context.Context, userID string) bool {
	blocked, err := s.repo.IsBlocked(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgBlocklistFailed, "user_id", userID, "error", err)
		return false
	}
	return blocked
}

func (s *service) IsAdmin(userID string) bool {
	_, ok := s.admins[userID]
	return ok
}

func (s *service) Block(ctx context.Context, actorID, targetID string) (bool, error) {
	if err := s.authorize(ctx, actorID, targetID); err != nil {
		return false, err
	}
	added, err := s.repo.Block(ctx, targetID)
	if err != nil {
		return false, err
	}
	logger.FromContext(ctx).Info(LogMsgUserBlocked, "actor_id", actorID, "target_id", targetID, "changed", added)
	return added, nil
}

func (s *service) Unblock(ctx context.Context, actorID, targetID string) (bool, error) {
	if err := s.authorize(ctx, actorID, targetID); err != nil {
		return false, err
	}
	removed, err := s.repo.Unblock(ctx, targetID)
	if err != nil {
		return false, err
	}
	logger.FromContext(ctx).Info(LogMsgUserUnblocked, "actor_id", actorID, "target_id", targetID, "changed", removed)
	return removed, nil
}

func (s *service) List(ctx context.Context) ([]string, error) {
	return s.repo.List(ctx)
}

func (s *service) authorize(ctx context.Context, actorID, targetID string) error {
	if !s.IsAdmin(actorID) {
		logger.FromContext(ctx).Warn(LogMsgForbiddenAction, "actor_id", actorID)
		return domain.ErrForbidden
	}
	if err := domain.ValidateUserKey(targetID); err != nil {
		return fmt.Errorf("%w: target", err)
	}
	return nil
}
