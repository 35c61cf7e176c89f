// Package discord runs the bot as Discord slash commands.
package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/SkinBot_Go/internal/logger"
)

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	Handler  Handler
	AppID    string
	Registry *CommandRegistry

	forceUpdate bool
	ctx         context.Context
}

// Config holds the bot configuration
type Config struct {
	Token string
	AppID string

	// ForceUpdate overwrites registered commands even when they look unchanged
	ForceUpdate bool
}

// New creates a new Discord bot with every command registered
func New(cfg Config, h Handler) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	registry := NewCommandRegistry()
	registry.RegisterAll()

	return &Bot{
		Session:     s,
		Handler:     h,
		AppID:       cfg.AppID,
		Registry:    registry,
		forceUpdate: cfg.ForceUpdate,
		ctx:         context.Background(),
	}, nil
}

// Start opens the gateway connection and syncs slash commands. Interactions
// are handled with contexts derived from ctx.
func (b *Bot) Start(ctx context.Context) error {
	b.ctx = ctx
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	if b.AppID == "" && b.Session.State != nil && b.Session.State.User != nil {
		b.AppID = b.Session.State.User.ID
	}
	if err := b.RegisterCommands(b.Registry, b.forceUpdate); err != nil {
		_ = b.Session.Close()
		return err
	}

	slog.Info(LogMsgBotRunning)
	return nil
}

// Stop closes the gateway connection
func (b *Bot) Stop() error {
	err := b.Session.Close()
	slog.Info(LogMsgBotStopped)
	return err
}

// Run starts the bot and blocks until ctx is cancelled
func (b *Bot) Run(ctx context.Context) error {
	if err := b.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	return b.Stop()
}

func (b *Bot) ready(s *discordgo.Session, _ *discordgo.Ready) {
	slog.Info(LogMsgBotReady, "user", s.State.User.Username)
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx, cancel := context.WithTimeout(logger.WithNewRequestID(b.ctx), interactionTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Error(LogMsgInteractionPanic, "panic", r, "interaction_id", i.ID)
			if i.Type == discordgo.InteractionApplicationCommand {
				respondError(ctx, s, i, MsgGenericError)
			}
		}
	}()

	b.Registry.Handle(ctx, s, i, b.Handler)
}
