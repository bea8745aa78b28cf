package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"posbot/internal/bot"
	"posbot/internal/catalog"
	"posbot/internal/config"
	"posbot/internal/storage"
	"posbot/pkg/logger"

	"go.uber.org/zap"
)

// ENTRY POINT

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	zapLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer zapLogger.Sync()

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		if err := migrate(ctx, cfg, os.Args[2:], zapLogger); err != nil {
			zapLogger.Fatal("Migration failed", zap.Error(err))
		}
		return
	}

	if cfg.TelegramToken == "" {
		zapLogger.Fatal("TELEGRAM_TOKEN is required")
	}

	loader, err := catalog.Open(ctx, cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to open catalog source", zap.Error(err))
	}
	defer loader.Close()

	priceCatalog, err := loader.Load(ctx)
	if err != nil {
		zapLogger.Fatal("Failed to load catalog", zap.Error(err))
	}

	tgBot, err := bot.New(cfg.TelegramToken, priceCatalog, loader, cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to create bot", zap.Error(err))
	}

	if err := tgBot.Start(ctx); err != nil {
		zapLogger.Fatal("Bot stopped with error", zap.Error(err))
	}

	zapLogger.Info("Bot shutdown gracefully")
}

// migrate runs "up" (default), "down" or "status" against the products schema.
func migrate(ctx context.Context, cfg *config.Config, args []string, zapLogger *zap.Logger) error {
	action := "up"
	if len(args) > 0 {
		action = args[0]
	}

	pg, err := storage.NewPostgresStorage(ctx, cfg.Database, zapLogger)
	if err != nil {
		return err
	}
	defer pg.Close()

	switch action {
	case "up":
		return pg.Migrate(ctx)
	case "down":
		return pg.Rollback(ctx)
	case "status":
		return pg.MigrationStatus(ctx)
	default:
		return fmt.Errorf("unknown migrate action %q (want up, down or status)", action)
	}
}
