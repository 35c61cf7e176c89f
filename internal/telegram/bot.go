// Package telegram runs the bot over the Telegram Bot API.
package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/osse101/SkinBot_Go/internal/command"
	"github.com/osse101/SkinBot_Go/internal/domain"
	"github.com/osse101/SkinBot_Go/internal/logger"
)

// Handler processes normalized requests
type Handler interface {
	Handle(ctx context.Context, req command.Request) command.Response
	Inline(ctx context.Context, req command.Request) (*command.InlineResult, bool)
}

// Bot long-polls Telegram and forwards updates to a Handler
type Bot struct {
	api      *tgbotapi.BotAPI
	handler  Handler
	renderer HTMLRenderer
}

// NewBot authorizes against the API at endpoint (tgbotapi.APIEndpoint when empty),
// retrying transient network failures.
func NewBot(token, endpoint string, handler Handler) (*Bot, error) {
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}

	var api *tgbotapi.BotAPI
	var err error

	delay := retryBase
	for attempt := 1; attempt <= maxRetries; attempt++ {
		api, err = tgbotapi.NewBotAPIWithAPIEndpoint(token, endpoint)
		if err == nil {
			break
		}
		if attempt < maxRetries {
			slog.Warn(LogMsgConnectRetry,
				slog.Int("attempt", attempt),
				slog.Int("maxRetries", maxRetries),
				slog.Duration("retryIn", delay),
				slog.Any("error", err),
			)
			time.Sleep(delay)
			delay *= retryGrowth
		}
	}
	if err != nil {
		return nil, fmt.Errorf("after %d attempts: %w", maxRetries, err)
	}

	slog.Info(LogMsgConnected, "username", api.Self.UserName)
	return &Bot{
		api:     api,
		handler: handler,
	}, nil
}

// Start polls for updates until ctx is cancelled. Updates from one chat are handled
// in arrival order; different chats run concurrently. Updates delivered by the last
// poll are already acknowledged, so they are still handled before Start returns.
func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeoutSeconds
	updates := b.api.GetUpdatesChan(u)
	slog.Info(LogMsgPollingStarted)

	// handlers outlive ctx so replies to accepted updates still go out during shutdown
	handleCtx := context.WithoutCancel(ctx)
	queue := newChatQueue()
	submit := func(update tgbotapi.Update) {
		queue.Submit(updateKey(update), func() {
			b.HandleUpdate(handleCtx, update)
		})
	}

	defer func() {
		queue.Wait()
		slog.Info(LogMsgPollingStopped)
	}()

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			for update := range updates {
				submit(update)
			}
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			submit(update)
		}
	}
}

// Close releases idle HTTP connections
func (b *Bot) Close() {
	if b == nil || b.api == nil {
		return
	}
	if c, ok := b.api.Client.(*http.Client); ok && c != nil {
		if tr, ok := c.Transport.(*http.Transport); ok && tr != nil {
			tr.CloseIdleConnections()
		}
	}
}

// HandleUpdate processes one update synchronously
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	ctx = logger.WithNewRequestID(ctx)
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Error(LogMsgUpdateRecovered, "panic", r, "update_id", update.UpdateID)
		}
	}()

	switch {
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	case update.InlineQuery != nil:
		b.handleInline(ctx, update.InlineQuery)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil || msg.Chat == nil || msg.Text == "" {
		return
	}

	req := command.Request{
		Platform:       domain.PlatformTelegram,
		UserID:         strconv.FormatInt(msg.From.ID, 10),
		Username:       msg.From.UserName,
		ConversationID: strconv.FormatInt(msg.Chat.ID, 10),
		Private:        msg.Chat.IsPrivate(),
		Text:           msg.Text,
	}
	if msg.IsCommand() {
		req.Command = strings.ToLower(msg.Command())
		req.Args = strings.TrimSpace(msg.CommandArguments())
	}

	resp := b.handler.Handle(ctx, req)
	if resp.Silent() {
		return
	}
	b.reply(ctx, msg, resp)
}

func (b *Bot) reply(ctx context.Context, msg *tgbotapi.Message, resp command.Response) {
	log := logger.FromContext(ctx)
	text := b.renderer.Render(resp.Message)

	if resp.PhotoURL != "" {
		photo := tgbotapi.NewPhoto(msg.Chat.ID, tgbotapi.FileURL(resp.PhotoURL))
		photo.ReplyToMessageID = msg.MessageID
		fitsCaption := utf8.RuneCountInString(text) <= maxCaptionLength
		if fitsCaption {
			photo.Caption = text
			photo.ParseMode = tgbotapi.ModeHTML
		}
		if _, err := b.api.Send(photo); err != nil {
			log.Warn(LogMsgPhotoFailed, "url", resp.PhotoURL, "error", err)
		} else if fitsCaption {
			return
		}
	}

	b.sendText(ctx, msg.Chat.ID, msg.MessageID, resp.Message, text)
}

// sendText sends HTML when it fits in one message, otherwise plain text in chunks
func (b *Bot) sendText(ctx context.Context, chatID int64, replyTo int, m command.Message, rendered string) {
	chunks := []string{rendered}
	parseMode := tgbotapi.ModeHTML
	if utf8.RuneCountInString(rendered) > maxMessageLength {
		chunks = splitRunes(m.String(), maxMessageLength)
		parseMode = ""
	}

	for _, chunk := range chunks {
		out := tgbotapi.NewMessage(chatID, chunk)
		out.ParseMode = parseMode
		out.ReplyToMessageID = replyTo
		if _, err := b.api.Send(out); err != nil {
			logger.FromContext(ctx).Error(LogMsgSendFailed, "chat_id", chatID, "error", err)
			return
		}
	}
}

func (b *Bot) handleInline(ctx context.Context, q *tgbotapi.InlineQuery) {
	req := command.Request{
		Platform: domain.PlatformTelegram,
		Text:     q.Query,
	}
	if q.From != nil {
		req.UserID = strconv.FormatInt(q.From.ID, 10)
		req.Username = q.From.UserName
	}

	results := []interface{}{}
	if res, ok := b.handler.Inline(ctx, req); ok {
		caption := b.renderer.Render(res.Message)
		if utf8.RuneCountInString(caption) > maxCaptionLength {
			caption = ""
		}
		photo := tgbotapi.NewInlineQueryResultPhotoWithThumb(
			strconv.Itoa(res.Card.Skin.ID), res.Card.ImageURL, res.Card.ImageURL)
		photo.Title = res.Card.Skin.Name
		photo.Description = res.Message.String()
		photo.Caption = caption
		photo.ParseMode = tgbotapi.ModeHTML
		results = append(results, photo)
	}

	cfg := tgbotapi.InlineConfig{
		InlineQueryID: q.ID,
		Results:       results,
		CacheTime:     0,
		IsPersonal:    true,
	}
	if _, err := b.api.Request(cfg); err != nil {
		logger.FromContext(ctx).Error(LogMsgInlineFailed, "query", q.Query, "error", err)
	}
}

func splitRunes(s string, size int) []string {
	runes := []rune(s)
	var out []string
	for len(runes) > size {
		out = append(out, string(runes[:size]))
		runes = runes[size:]
	}
	if len(runes) > 0 {
		out = append(out, string(runes))
	}
	return out
}
