package info

import (
	"fmt"
	"sort"
	"strings"

	"github.com/osse101/SkinBot_Go/internal/domain"
)

// Formatter picks and assembles platform-specific help text
type Formatter struct{}

// NewFormatter creates a new formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// FormatFeature returns the feature text for platform, falling back to the Telegram text
func (f *Formatter) FormatFeature(feature *Feature, platform string) string {
	return pick(feature.Telegram, feature.Discord, platform)
}

// FormatTopic returns the topic text for platform, falling back to the Telegram text
func (f *Formatter) FormatTopic(topic *Topic, platform string) string {
	return pick(topic.Telegram, topic.Discord, platform)
}

// FormatHelp renders the feature text followed by one line per topic in Order
func (f *Formatter) FormatHelp(feature *Feature, platform string) string {
	var sb strings.Builder
	sb.WriteString(strings.TrimSpace(f.FormatFeature(feature, platform)))

	names := make([]string, 0, len(feature.Topics))
	for name := range feature.Topics {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := feature.Topics[names[i]], feature.Topics[names[j]]
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return names[i] < names[j]
	})

	for _, name := range names {
		topic := feature.Topics[name]
		text := strings.TrimSpace(f.FormatTopic(&topic, platform))
		if topic.Command != "" {
			text = fmt.Sprintf("%s - %s", topic.Command, text)
		}
		sb.WriteString("\n")
		sb.WriteString(text)
	}
	return sb.String()
}

func pick(telegram, discord PlatformContent, platform string) string {
	if strings.EqualFold(platform, domain.PlatformDiscord) && discord.Description != "" {
		return discord.Description
	}
	return telegram.Description
}
