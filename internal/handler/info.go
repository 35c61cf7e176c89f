package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/osse101/SkinBot_Go/internal/domain"
	"github.com/osse101/SkinBot_Go/internal/info"
)

const defaultInfoFeature = "help"

// InfoResponse carries help text formatted for one platform
type InfoResponse struct {
	Platform    string `json:"platform"`
	Feature     string `json:"feature,omitempty"`
	Topic       string `json:"topic,omitempty"`
	Description string `json:"description"`
}

// HandleGetInfo serves help content. Without a feature it returns the command list.
// @Summary Help text
// @Tags info
// @Produce json
// @Param platform query string false "telegram (default) or discord"
// @Param feature query string false "Feature name or topic"
// @Param topic query string false "Topic within the feature"
// @Success 200 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /info [get]
func HandleGetInfo(loader *info.Loader) http.HandlerFunc {
	formatter := info.NewFormatter()

	return func(w http.ResponseWriter, r *http.Request) {
		platform := strings.ToLower(GetOptionalQueryParam(r, "platform", domain.PlatformTelegram))
		feature := strings.ToLower(r.URL.Query().Get("feature"))
		topic := strings.ToLower(r.URL.Query().Get("topic"))

		resp := InfoResponse{Platform: platform}

		switch {
		case feature != "" && topic != "":
			t, ok := loader.GetTopic(feature, topic)
			if !ok {
				respondError(w, http.StatusNotFound, fmt.Sprintf(ErrMsgTopicNotFound, topic, feature))
				return
			}
			resp.Feature, resp.Topic = feature, topic
			resp.Description = formatter.FormatTopic(t, platform)

		case feature != "":
			if f, ok := loader.GetFeature(feature); ok {
				resp.Feature = feature
				resp.Description = formatter.FormatFeature(f, platform)
				break
			}
			t, owner, ok := loader.SearchTopic(feature)
			if !ok {
				respondError(w, http.StatusNotFound, fmt.Sprintf(ErrMsgFeatureNotFound, feature))
				return
			}
			resp.Feature, resp.Topic = owner, feature
			resp.Description = formatter.FormatTopic(t, platform)

		default:
			f, ok := loader.GetFeature(defaultInfoFeature)
			if !ok {
				respondError(w, http.StatusNotFound, fmt.Sprintf(ErrMsgFeatureNotFound, defaultInfoFeature))
				return
			}
			resp.Feature = defaultInfoFeature
			resp.Description = formatter.FormatHelp(f, platform)
		}

		resp.Description = strings.TrimSpace(resp.Description)
		respondJSON(w, http.StatusOK, resp)
	}
}
