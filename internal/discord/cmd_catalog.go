package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/osse101/SkinBot_Go/internal/command"
)

// SkinCommand looks up one skin or container
func SkinCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return CreateRouterCommand(CommandConfig{
		Definition: &discordgo.ApplicationCommand{
			Name:        command.CmdSkin,
			Description: "Информация о скине",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        optName,
					Description: "Название скина",
					Required:    true,
				},
			},
		},
		Command: command.CmdSkin,
		Args:    func(opts OptionMap) string { return opts.String(optName) },
		Color:   ColorSkin,
	})
}

// CollectionCommand lists a collection by rarity
func CollectionCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return CreateRouterCommand(CommandConfig{
		Definition: &discordgo.ApplicationCommand{
			Name:        command.CmdCollection,
			Description: "Скины коллекции",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        optName,
					Description: "Название коллекции",
					Required:    true,
				},
			},
		},
		Command: command.CmdCollection,
		Args:    func(opts OptionMap) string { return opts.String(optName) },
		Color:   ColorSkin,
	})
}
