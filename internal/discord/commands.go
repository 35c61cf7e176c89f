package discord

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/SkinBot_Go/internal/command"
	"github.com/osse101/SkinBot_Go/internal/domain"
	"github.com/osse101/SkinBot_Go/internal/logger"
)

// Handler is the shared command layer the bot forwards interactions to
type Handler interface {
	Handle(ctx context.Context, req command.Request) command.Response
	Holdings(ctx context.Context, req command.Request) []domain.InventoryEntry
}

// CommandHandler handles a slash command
type CommandHandler func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, h Handler)

// AutocompleteHandler suggests option values while the user types
type AutocompleteHandler func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, h Handler)

// CommandRegistry holds the registered commands
type CommandRegistry struct {
	Commands     map[string]*discordgo.ApplicationCommand
	Handlers     map[string]CommandHandler
	Autocomplete map[string]AutocompleteHandler
}

// NewCommandRegistry creates a new registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		Commands:     make(map[string]*discordgo.ApplicationCommand),
		Handlers:     make(map[string]CommandHandler),
		Autocomplete: make(map[string]AutocompleteHandler),
	}
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
	r.Commands[cmd.Name] = cmd
	r.Handlers[cmd.Name] = handler
}

// RegisterAutocomplete attaches suggestions to an already registered command
func (r *CommandRegistry) RegisterAutocomplete(name string, handler AutocompleteHandler) {
	r.Autocomplete[name] = handler
}

// Handle processes an interaction
func (r *CommandRegistry) Handle(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, h Handler) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if fn, ok := r.Handlers[i.ApplicationCommandData().Name]; ok {
			fn(ctx, s, i, h)
		}
	case discordgo.InteractionApplicationCommandAutocomplete:
		name := i.ApplicationCommandData().Name
		if fn, ok := r.Autocomplete[name]; ok {
			fn(ctx, s, i, h)
			return
		}
		logger.FromContext(ctx).Warn(LogMsgUnhandledComplete, "command", name)
	}
}

// RegisterAll registers every bot command
func (r *CommandRegistry) RegisterAll() {
	r.Register(StartCommand())
	r.Register(HelpCommand())
	r.Register(SkinCommand())
	r.Register(CollectionCommand())
	r.Register(InventoryCommand())
	r.Register(AddCommand())
	r.Register(DeleteCommand())
	r.Register(ConfirmCommand())
	r.Register(BlockCommand())
	r.Register(UnblockCommand())
	r.RegisterAutocomplete(command.CmdDelete, handleHoldingsAutocomplete)
}

// RegisterCommands registers commands with Discord, skipping the call when nothing changed
func (b *Bot) RegisterCommands(registry *CommandRegistry, forceUpdate bool) error {
	slog.Info(LogMsgCheckingCommands)

	existingCmds, err := b.Session.ApplicationCommands(b.AppID, "")
	if err != nil {
		return fmt.Errorf("failed to fetch existing commands: %w", err)
	}

	desiredCmds := make([]*discordgo.ApplicationCommand, 0, len(registry.Commands))
	for _, cmd := range registry.Commands {
		desiredCmds = append(desiredCmds, cmd)
	}

	if forceUpdate {
		slog.Info(LogMsgForceUpdate, "count", len(desiredCmds))
		if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, "", desiredCmds); err != nil {
			return fmt.Errorf("failed to bulk overwrite commands: %w", err)
		}
		slog.Info(LogMsgCommandsUpdated, "count", len(desiredCmds))
		return nil
	}

	if commandsEqual(existingCmds, desiredCmds) {
		slog.Info(LogMsgCommandsUnchanged, "count", len(existingCmds))
		return nil
	}

	slog.Info(LogMsgCommandsChanged,
		"existing", len(existingCmds),
		"desired", len(desiredCmds))

	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, "", desiredCmds); err != nil {
		return fmt.Errorf("failed to update commands: %w", err)
	}

	slog.Info(LogMsgCommandsUpdated, "count", len(desiredCmds))
	return nil
}

// commandsEqual checks if two command sets are equivalent, ignoring order
func commandsEqual(existing, desired []*discordgo.ApplicationCommand) bool {
	if len(existing) != len(desired) {
		return false
	}

	existingMap := make(map[string]*discordgo.ApplicationCommand, len(existing))
	for _, cmd := range existing {
		existingMap[cmd.Name] = cmd
	}

	for _, d := range desired {
		e, ok := existingMap[d.Name]
		if !ok || !commandEqual(e, d) {
			return false
		}
	}
	return true
}

func commandEqual(a, b *discordgo.ApplicationCommand) bool {
	if a.Name != b.Name || a.Description != b.Description {
		return false
	}

	if (a.DefaultMemberPermissions == nil) != (b.DefaultMemberPermissions == nil) {
		return false
	}
	if a.DefaultMemberPermissions != nil && *a.DefaultMemberPermissions != *b.DefaultMemberPermissions {
		return false
	}

	if len(a.Options) != len(b.Options) {
		return false
	}
	for i := range a.Options {
		if !optionEqual(a.Options[i], b.Options[i]) {
			return false
		}
	}
	return true
}

func optionEqual(a, b *discordgo.ApplicationCommandOption) bool {
	if a.Type != b.Type || a.Name != b.Name || a.Description != b.Description ||
		a.Required != b.Required || a.Autocomplete != b.Autocomplete {
		return false
	}

	if !floatPtrEqual(a.MinValue, b.MinValue) || a.MaxValue != b.MaxValue {
		return false
	}

	if len(a.Choices) != len(b.Choices) {
		return false
	}
	for i := range a.Choices {
		if a.Choices[i].Name != b.Choices[i].Name || a.Choices[i].Value != b.Choices[i].Value {
			return false
		}
	}
	return true
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// CommandConfig describes a slash command that forwards to the shared command layer
type CommandConfig struct {
	Definition *discordgo.ApplicationCommand

	// Command is the shared command name. Empty sends the answer option as plain text.
	Command string

	// Args builds the argument string from the options
	Args func(opts OptionMap) string

	// Ephemeral replies are visible to the caller only and count as a private conversation
	Ephemeral bool
	Color     int

	// Fallback is shown when the command layer stays silent
	Fallback string
}

// CreateRouterCommand returns a command whose handler builds a request and renders the reply
func CreateRouterCommand(cfg CommandConfig) (*discordgo.ApplicationCommand, CommandHandler) {
	if cfg.Fallback == "" {
		cfg.Fallback = MsgNoReply
	}
	if cfg.Color == 0 {
		cfg.Color = ColorDefault
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, h Handler) {
		if !deferResponse(ctx, s, i, cfg.Ephemeral) {
			return
		}

		opts := getOptions(i)
		req := newRequest(i, cfg.Ephemeral)
		if cfg.Command == "" {
			req.Text = opts.String(optAnswer)
		} else {
			req.Command = cfg.Command
			if cfg.Args != nil {
				req.Args = cfg.Args(opts)
			}
		}

		resp := h.Handle(ctx, req)
		if resp.Silent() {
			respondError(ctx, s, i, cfg.Fallback)
			return
		}
		sendEmbed(ctx, s, i, buildEmbed(resp, cfg.Color))
	}

	return cfg.Definition, handler
}

// newRequest builds the shared request for an interaction. Direct messages and
// ephemeral commands are private conversations.
func newRequest(i *discordgo.InteractionCreate, ephemeral bool) command.Request {
	req := command.Request{
		Platform:       domain.PlatformDiscord,
		ConversationID: i.ChannelID,
		Private:        ephemeral || i.GuildID == "",
	}
	if user := getInteractionUser(i); user != nil {
		req.UserID = user.ID
		req.Username = user.Username
	}
	return req
}

// deferResponse acknowledges an interaction with a deferred message.
// Returns false if deferral failed and the handler should stop.
func deferResponse(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, ephemeral bool) bool {
	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}
	if ephemeral {
		resp.Data = &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral}
	}
	if err := s.InteractionRespond(i.Interaction, resp); err != nil {
		logger.FromContext(ctx).Error(LogMsgDeferFailed, "error", err)
		return false
	}
	return true
}

// respondError replaces the deferred response with a plain message
func respondError(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &message,
	}); err != nil {
		logger.FromContext(ctx).Error(LogMsgEditFailed, "error", err)
	}
}

// sendEmbed replaces the deferred response with an embed
func sendEmbed(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		logger.FromContext(ctx).Error(LogMsgEditFailed, "error", err)
	}
}

// getInteractionUser extracts the user from an interaction.
// Guild interactions carry it in Member, direct messages in User.
func getInteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// OptionMap indexes command options by name
type OptionMap map[string]*discordgo.ApplicationCommandInteractionDataOption

func getOptions(i *discordgo.InteractionCreate) OptionMap {
	opts := i.ApplicationCommandData().Options
	m := make(OptionMap, len(opts))
	for _, o := range opts {
		m[o.Name] = o
	}
	return m
}

// String returns a string or user option's value, empty when absent
func (m OptionMap) String(name string) string {
	o, ok := m[name]
	if !ok {
		return ""
	}
	switch o.Type {
	case discordgo.ApplicationCommandOptionUser:
		if id, ok := o.Value.(string); ok {
			return id
		}
		return ""
	case discordgo.ApplicationCommandOptionInteger:
		return strconv.FormatInt(o.IntValue(), 10)
	default:
		return strings.TrimSpace(o.StringValue())
	}
}

// Has reports whether the option was supplied
func (m OptionMap) Has(name string) bool {
	_, ok := m[name]
	return ok
}
