// Package telegram adapts Telegram long polling to the conversation
// engine's trigger model.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/ArtemYurchenko333/NatalBot/internal/observability"
	"github.com/ArtemYurchenko333/NatalBot/internal/usecase"
)

// Dispatcher consumes classified triggers. Implemented by the engine.
type Dispatcher interface {
	HandleTrigger(ctx context.Context, userID int64, tr usecase.Trigger)
}

// Bot runs the update loop and delivers replies. It also implements
// usecase.Replier, closing the loop back to the user.
type Bot struct {
	api    *tgbotapi.BotAPI
	logger *slog.Logger
}

// New authenticates against the Bot API with the given token.
func New(token string, logger *slog.Logger) (*Bot, error) {
	if logger == nil {
		return nil, errors.New("telegram: logger must not be nil")
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram: create bot: %w", err)
	}
	logger.Info("authorized on telegram", "account", api.Self.UserName)
	return &Bot{api: api, logger: logger}, nil
}

// Run polls for updates until ctx is cancelled, dispatching each update on
// its own goroutine. Per-user ordering is the engine's concern, not ours.
func (b *Bot) Run(ctx context.Context, d Dispatcher) error {
	if d == nil {
		return errors.New("telegram: dispatcher must not be nil")
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update := <-updates:
			go b.dispatch(ctx, d, update)
		}
	}
}

func (b *Bot) dispatch(ctx context.Context, d Dispatcher, update tgbotapi.Update) {
	userID, tr, ok := classify(update)
	if !ok {
		return
	}
	traceID := uuid.NewString()
	ctx = observability.WithTraceID(ctx, traceID)
	b.logger.Info("update received", "trace_id", traceID, "user_id", userID, "trigger", triggerName(tr.Kind))
	d.HandleTrigger(ctx, userID, tr)
}

// classify maps a raw update onto the engine's trigger model. Updates with
// no usable text message (edits, photos, stickers, channel posts) are
// dropped here.
func classify(update tgbotapi.Update) (int64, usecase.Trigger, bool) {
	msg := update.Message
	if msg == nil || msg.From == nil {
		return 0, usecase.Trigger{}, false
	}

	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			return msg.From.ID, usecase.Trigger{Kind: usecase.TriggerStart}, true
		case "cancel":
			return msg.From.ID, usecase.Trigger{Kind: usecase.TriggerCancel}, true
		default:
			return msg.From.ID, usecase.Trigger{Kind: usecase.TriggerUnknownCommand, Text: msg.Text}, true
		}
	}

	if msg.Text == "" {
		return 0, usecase.Trigger{}, false
	}
	return msg.From.ID, usecase.Trigger{Kind: usecase.TriggerText, Text: msg.Text}, true
}

// Reply implements usecase.Replier. The bot only converses in private
// chats, where the chat ID equals the user ID.
func (b *Bot) Reply(ctx context.Context, userID int64, text string) error {
	if _, err := b.api.Send(tgbotapi.NewMessage(userID, text)); err != nil {
		return fmt.Errorf("telegram: send message: %w", err)
	}
	return nil
}

func triggerName(k usecase.TriggerKind) string {
	switch k {
	case usecase.TriggerStart:
		return "start"
	case usecase.TriggerCancel:
		return "cancel"
	case usecase.TriggerText:
		return "text"
	case usecase.TriggerUnknownCommand:
		return "unknown_command"
	default:
		return "invalid"
	}
}
