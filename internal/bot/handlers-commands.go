package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	switch msg.Command() {
	case CommandStart:
		b.handleStart(ctx, chatID)
	case CommandNew:
		b.handleNewCheckout(ctx, chatID)
	case CommandTotal:
		b.handleTotal(ctx, chatID)
	case CommandReceipt:
		b.handleReceipt(ctx, chatID)
	case CommandHelp:
		b.handleHelp(ctx, chatID)
	case CommandReload:
		b.handleReload(ctx, msg)
	default:
		b.handleUnknownCommand(ctx, chatID)
	}
}

func (b *Bot) handleStart(ctx context.Context, chatID int64) {
	b.sessions.Open(chatID)

	msg := tgbotapi.NewMessage(chatID, msgWelcome)
	msg.ReplyMarkup = b.createCheckoutKeyboard()
	b.sendMessage(msg)
}

func (b *Bot) handleHelp(ctx context.Context, chatID int64) {
	b.sendMessage(tgbotapi.NewMessage(chatID, msgHelp))
}

func (b *Bot) handleUnknownCommand(ctx context.Context, chatID int64) {
	b.sendError(chatID, msgUnknownCommand)
}
