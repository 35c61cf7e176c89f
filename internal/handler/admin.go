package handler

import (
	"net/http"
	"strings"

	"github.com/osse101/SkinBot_Go/internal/access"
	"github.com/osse101/SkinBot_Go/internal/domain"
	"github.com/osse101/SkinBot_Go/internal/logger"
)

// BlocklistRequest blocks or unblocks a user on behalf of an admin
type BlocklistRequest struct {
	ActorPlatform   string `json:"actor_platform" validate:"required,platform"`
	ActorPlatformID string `json:"actor_platform_id" validate:"required,max=64,userkey"`
	Platform        string `json:"platform" validate:"required,platform"`
	PlatformID      string `json:"platform_id" validate:"required,max=64,userkey"`
}

// BlocklistResponse reports whether the blocklist changed
type BlocklistResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
	Changed bool   `json:"changed"`
}

// HandleAdminBlock blocks a user
// @Summary Block a user
// @Tags admin
// @Accept json
// @Produce json
// @Param request body BlocklistRequest true "Actor and target"
// @Success 200 {object} BlocklistResponse
// @Failure 403 {object} ErrorResponse
// @Router /admin/block [post]
// @Security ApiKeyAuth
func HandleAdminBlock(svc access.Service) http.HandlerFunc {
	return handleBlocklist(svc, true)
}

// HandleAdminUnblock unblocks a user
// @Summary Unblock a user
// @Tags admin
// @Accept json
// @Produce json
// @Param request body BlocklistRequest true "Actor and target"
// @Success 200 {object} BlocklistResponse
// @Failure 403 {object} ErrorResponse
// @Router /admin/unblock [post]
// @Security ApiKeyAuth
func HandleAdminUnblock(svc access.Service) http.HandlerFunc {
	return handleBlocklist(svc, false)
}

// HandleAdminListBlocked lists blocked user keys
// @Summary List blocked users
// @Tags admin
// @Produce json
// @Success 200 {object} DataResponse
// @Router /admin/blocked [get]
// @Security ApiKeyAuth
func HandleAdminListBlocked(svc access.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ids, err := svc.List(r.Context())
		if err != nil {
			respondServiceError(w, r, "list blocked", err)
			return
		}
		if ids == nil {
			ids = []string{}
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: ids})
	}
}

func handleBlocklist(svc access.Service, block bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BlocklistRequest
		if err := DecodeAndValidateRequest(r, w, &req, "blocklist"); err != nil {
			return
		}
		ctx := r.Context()

		actor := domain.UserKey(strings.ToLower(req.ActorPlatform), req.ActorPlatformID)
		target := domain.UserKey(strings.ToLower(req.Platform), req.PlatformID)

		var (
			changed bool
			err     error
			msg     string
		)
		if block {
			changed, err = svc.Block(ctx, actor, target)
			msg = MsgUserBlocked
			if !changed {
				msg = MsgUserAlreadyBlocked
			}
		} else {
			changed, err = svc.Unblock(ctx, actor, target)
			msg = MsgUserUnblocked
			if !changed {
				msg = MsgUserNotBlocked
			}
		}
		if err != nil {
			respondServiceError(w, r, ErrMsgBlocklistFailed, err)
			return
		}

		logger.FromContext(ctx).Info(LogMsgBlocklistChanged, "actor", actor, "target", target, "block", block, "changed", changed)
		respondJSON(w, http.StatusOK, BlocklistResponse{Message: msg, UserID: target, Changed: changed})
	}
}
