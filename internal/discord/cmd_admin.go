package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/osse101/SkinBot_Go/internal/command"
)

var adminPermission = int64(discordgo.PermissionAdministrator)

func blocklistCommand(name, description string) (*discordgo.ApplicationCommand, CommandHandler) {
	return CreateRouterCommand(CommandConfig{
		Definition: &discordgo.ApplicationCommand{
			Name:        name,
			Description: description,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        optUser,
					Description: "Пользователь",
					Required:    true,
				},
			},
			DefaultMemberPermissions: &adminPermission,
		},
		Command:   name,
		Args:      func(opts OptionMap) string { return opts.String(optUser) },
		Ephemeral: true,
		Color:     ColorAdmin,
	})
}

// BlockCommand returns the admin-only block command
func BlockCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return blocklistCommand(command.CmdBlock, "[ADMIN] Заблокировать пользователя")
}

// UnblockCommand returns the admin-only unblock command
func UnblockCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return blocklistCommand(command.CmdUnblock, "[ADMIN] Разблокировать пользователя")
}
