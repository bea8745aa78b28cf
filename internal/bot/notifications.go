package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// NotifyTotalToChannel posts a short audit line to the configured channel
// whenever a checkout shows its total. Disabled when no channel is set.
func (b *Bot) NotifyTotalToChannel(ctx context.Context, chatID int64, sessionID string, lines []string) {
	if b.cfg == nil || b.cfg.AuditChannelID == 0 || len(lines) == 0 {
		return
	}

	text := fmt.Sprintf("🧾 Checkout %s (chat %d)\n%s",
		shortID(sessionID),
		chatID,
		strings.Join(lines, "\n"))

	if _, err := b.bot.Send(tgbotapi.NewMessage(b.cfg.AuditChannelID, text)); err != nil {
		b.logger.Error("Failed to send total notification to channel",
			zap.Int64("channel_id", b.cfg.AuditChannelID),
			zap.Error(err))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
