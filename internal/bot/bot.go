package bot

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"posbot/internal/config"
	"posbot/internal/pos"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// TelegramAPI is the part of *tgbotapi.BotAPI the bot relies on.
type TelegramAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type CatalogReloader interface {
	Reload(ctx context.Context) (*pos.Catalog, error)
}

type Bot struct {
	bot      TelegramAPI
	logger   *zap.Logger
	cfg      *config.Config
	sessions *SessionRegistry
	reloader CatalogReloader
	mu       sync.Mutex
}

func New(
	token string,
	catalog *pos.Catalog,
	reloader CatalogReloader,
	cfg *config.Config,
	logger *zap.Logger,
) (*Bot, error) {
	botAPI, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}

	logger.Info("Bot authorized",
		zap.String("username", botAPI.Self.UserName),
		zap.Int64("id", botAPI.Self.ID))

	return NewWithAPI(botAPI, catalog, reloader, cfg, logger), nil
}

func NewWithAPI(
	api TelegramAPI,
	catalog *pos.Catalog,
	reloader CatalogReloader,
	cfg *config.Config,
	logger *zap.Logger,
) *Bot {
	return &Bot{
		bot:      api,
		logger:   logger,
		cfg:      cfg,
		sessions: NewSessionRegistry(catalog, logger),
		reloader: reloader,
	}
}

func (b *Bot) Start(ctx context.Context) error {
	b.logger.Info("Starting bot")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.bot.GetUpdatesChan(u)
	defer b.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("Shutting down bot")
			return nil

		case update, ok := <-updates:
			if !ok {
				return fmt.Errorf("updates channel closed")
			}
			if update.Message != nil {
				b.processMessage(ctx, update.Message)
			}
		}
	}
}

func (b *Bot) processMessage(ctx context.Context, msg *tgbotapi.Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	chatID := msg.Chat.ID

	b.logger.Debug("Processing message",
		zap.Int64("chat_id", chatID),
		zap.String("text", msg.Text))

	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	switch msg.Text {
	case ButtonTotal:
		b.handleTotal(ctx, chatID)
	case ButtonNewCheckout:
		b.handleNewCheckout(ctx, chatID)
	case ButtonReceipt:
		b.handleReceipt(ctx, chatID)
	default:
		b.handleBarcode(ctx, chatID, msg.Text)
	}
}

// handleBarcode scans the text exactly as received. Messages without text
// (stickers, photos) reach the point of sale as an empty barcode.
func (b *Bot) handleBarcode(ctx context.Context, chatID int64, barcode string) {
	session := b.sessions.Get(chatID)
	b.sendLines(chatID, session.Scan(barcode))
}

func (b *Bot) handleTotal(ctx context.Context, chatID int64) {
	session := b.sessions.Get(chatID)
	lines := session.Total()
	b.sendLines(chatID, lines)
	b.NotifyTotalToChannel(ctx, chatID, session.ID, lines)
}

func (b *Bot) handleNewCheckout(ctx context.Context, chatID int64) {
	b.sessions.Open(chatID)
	msg := tgbotapi.NewMessage(chatID, msgNewCheckout)
	msg.ReplyMarkup = b.createCheckoutKeyboard()
	b.sendMessage(msg)
}

func (b *Bot) handleReceipt(ctx context.Context, chatID int64) {
	text := b.sessions.Get(chatID).Text()
	if text == "" {
		text = msgEmptyReceipt
	}
	b.sendMessage(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) sendLines(chatID int64, lines []string) {
	if len(lines) == 0 {
		return
	}
	b.sendMessage(tgbotapi.NewMessage(chatID, strings.Join(lines, "\n")))
}

func (b *Bot) sendMessage(msg tgbotapi.MessageConfig) {
	if _, err := b.bot.Send(msg); err != nil {
		b.logger.Error("Failed to send message",
			zap.Int64("chat_id", msg.ChatID),
			zap.String("text", msg.Text),
			zap.Error(err))
	}
}

func (b *Bot) sendError(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, "❌ "+text)
	b.sendMessage(msg)
}
