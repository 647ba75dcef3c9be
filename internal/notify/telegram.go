// Package notify delivers best-effort reminders and alerts to the
// coaching staff channel.
package notify

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/y-inoue-koma/club-activity-manager/config"
)

// Notifier pushes a short message to the staff channel. Callers treat
// delivery as best-effort and must not fail their own operation on a
// notify error.
type Notifier interface {
	Notify(ctx context.Context, title, body string) error
}

// Telegram sends messages through a bot to a fixed chat.
type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegram authenticates the bot. Returns an error if the token is
// rejected by the Bot API.
func NewTelegram(cfg *config.NotifyConfig) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}
	return &Telegram{bot: bot, chatID: cfg.TelegramChat}, nil
}

func (t *Telegram) Notify(_ context.Context, title, body string) error {
	msg := tgbotapi.NewMessage(t.chatID, fmt.Sprintf("*%s*\n%s", title, body))
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := t.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}

// Noop is used when no notification channel is configured.
type Noop struct{}

func (Noop) Notify(context.Context, string, string) error { return nil }
