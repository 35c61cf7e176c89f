package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/osse101/SkinBot_Go/internal/command"
)

// StartCommand returns the greeting command
func StartCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return CreateRouterCommand(CommandConfig{
		Definition: &discordgo.ApplicationCommand{
			Name:        command.CmdStart,
			Description: "Приветствие и краткая справка",
		},
		Command: command.CmdStart,
		Color:   ColorInfo,
	})
}

// HelpCommand returns the command list
func HelpCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return CreateRouterCommand(CommandConfig{
		Definition: &discordgo.ApplicationCommand{
			Name:        command.CmdHelp,
			Description: "Список команд",
		},
		Command:   command.CmdHelp,
		Ephemeral: true,
		Color:     ColorInfo,
	})
}
