package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func (b *Bot) isAdmin(userID int64) bool {
	return b.cfg != nil && b.cfg.IsAdmin(userID)
}

// handleReload rebuilds the catalog from its source. Unknown to non-admins.
func (b *Bot) handleReload(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	if msg.From == nil || !b.isAdmin(msg.From.ID) || b.reloader == nil {
		b.handleUnknownCommand(ctx, chatID)
		return
	}

	catalog, err := b.reloader.Reload(ctx)
	if err != nil {
		b.logger.Error("Failed to reload catalog",
			zap.Int64("admin_id", msg.From.ID),
			zap.Error(err))
		b.sendError(chatID, msgReloadFailed)
		return
	}

	b.sessions.SetCatalog(catalog)
	b.logger.Info("Catalog reloaded",
		zap.Int64("admin_id", msg.From.ID),
		zap.Int("products", catalog.Len()))

	b.sendMessage(tgbotapi.NewMessage(chatID, fmt.Sprintf(
		"✅ Catalog reloaded: %d products. New checkouts use it; open ones keep their catalog.",
		catalog.Len(),
	)))
}
