package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/osse101/SkinBot_Go/internal/command"
)

var minQuantity = 1.0

// InventoryCommand shows the caller's valued inventory
func InventoryCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return CreateRouterCommand(CommandConfig{
		Definition: &discordgo.ApplicationCommand{
			Name:        command.CmdInventory,
			Description: "Ваш инвентарь и его стоимость",
		},
		Command:   command.CmdInventory,
		Ephemeral: true,
		Color:     ColorInfo,
	})
}

// AddCommand starts adding skins to the caller's inventory
func AddCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return CreateRouterCommand(CommandConfig{
		Definition: &discordgo.ApplicationCommand{
			Name:        command.CmdAdd,
			Description: "Добавить скины в инвентарь",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        optName,
					Description: "Название скина",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        optQuantity,
					Description: "Количество",
					Required:    true,
					MinValue:    &minQuantity,
				},
			},
		},
		Command:   command.CmdAdd,
		Args:      quantityArgs,
		Ephemeral: true,
		Color:     ColorInfo,
	})
}

// DeleteCommand starts removing skins. Without a quantity the whole stack goes.
func DeleteCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return CreateRouterCommand(CommandConfig{
		Definition: &discordgo.ApplicationCommand{
			Name:        command.CmdDelete,
			Description: "Удалить скины из инвентаря",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:         discordgo.ApplicationCommandOptionString,
					Name:         optName,
					Description:  "Название скина",
					Required:     true,
					Autocomplete: true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        optQuantity,
					Description: "Количество (по умолчанию все)",
					Required:    false,
					MinValue:    &minQuantity,
				},
			},
		},
		Command:   command.CmdDelete,
		Args:      quantityArgs,
		Ephemeral: true,
		Color:     ColorInfo,
	})
}

// ConfirmCommand answers a pending add or delete
func ConfirmCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return CreateRouterCommand(CommandConfig{
		Definition: &discordgo.ApplicationCommand{
			Name:        "confirm",
			Description: "Подтвердить или отменить добавление/удаление",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        optAnswer,
					Description: "Ответ",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "да", Value: "да"},
						{Name: "нет", Value: "нет"},
					},
				},
			},
		},
		Ephemeral: true,
		Color:     ColorInfo,
		Fallback:  MsgNothingToConfirm,
	})
}

// quantityArgs joins name and quantity the way chat commands write them
func quantityArgs(opts OptionMap) string {
	name := opts.String(optName)
	if !opts.Has(optQuantity) {
		return name
	}
	return name + ": " + opts.String(optQuantity)
}
