// Package notify delivers reminder messages over external channels.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier sends a text message to a recipient. The recipient format is
// channel specific.
type Notifier interface {
	Send(ctx context.Context, to, text string) error
}

// Telegram delivers reminders through a Telegram bot. Recipients are
// numeric chat ids or @channel names.
type Telegram struct {
	bot    *tgbotapi.BotAPI
	logger *slog.Logger
}

func NewTelegram(botToken string, log *slog.Logger) (*Telegram, error) {
	if log == nil {
		log = slog.Default()
	}
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}
	return &Telegram{
		bot:    bot,
		logger: log.With(slog.String("adapter", "telegram")),
	}, nil
}

func (t *Telegram) Send(ctx context.Context, to, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg, err := buildMessage(to, text)
	if err != nil {
		return err
	}
	if _, err := t.bot.Send(msg); err != nil {
		t.logger.Error("send failed", slog.String("to", to), slog.Any("error", err))
		return fmt.Errorf("send telegram message: %w", err)
	}
	return nil
}

// buildMessage resolves the recipient format: @names address channels,
// anything else must parse as a numeric chat id.
func buildMessage(to, text string) (tgbotapi.MessageConfig, error) {
	to = strings.TrimSpace(to)
	text = strings.TrimSpace(text)
	if to == "" || text == "" {
		return tgbotapi.MessageConfig{}, fmt.Errorf("recipient and text are required")
	}
	if strings.HasPrefix(to, "@") {
		return tgbotapi.NewMessageToChannel(to, text), nil
	}
	chatID, err := strconv.ParseInt(to, 10, 64)
	if err != nil {
		return tgbotapi.MessageConfig{}, fmt.Errorf("invalid chat id %q: %w", to, err)
	}
	return tgbotapi.NewMessage(chatID, text), nil
}
