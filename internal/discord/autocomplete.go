package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/SkinBot_Go/internal/logger"
)

// handleHoldingsAutocomplete suggests skins the caller holds
func handleHoldingsAutocomplete(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, h Handler) {
	focused := getFocusedOptionValue(i.ApplicationCommandData().Options)
	entries := h.Holdings(ctx, newRequest(i, true))

	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, maxChoices)
	for _, e := range entries {
		if focused != "" && !strings.Contains(strings.ToLower(e.Name), focused) {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  fmt.Sprintf("%s (x%d)", e.Name, e.Quantity),
			Value: e.Name,
		})
		if len(choices) >= maxChoices {
			break
		}
	}

	respondAutocomplete(ctx, s, i, choices)
}

func getFocusedOptionValue(options []*discordgo.ApplicationCommandInteractionDataOption) string {
	for _, opt := range options {
		if opt.Focused {
			return strings.ToLower(strings.TrimSpace(opt.StringValue()))
		}
	}
	return ""
}

func respondAutocomplete(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, choices []*discordgo.ApplicationCommandOptionChoice) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: choices,
		},
	})
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgAutocompleteFailed, "error", err)
	}
}
