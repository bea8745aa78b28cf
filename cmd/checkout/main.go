package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"posbot/internal/catalog"
	"posbot/internal/config"
	"posbot/internal/pos"
	"posbot/pkg/logger"

	"go.uber.org/zap"
)

// totalCommand is the input line that asks for the cart total.
const totalCommand = "total"

// Reads one barcode per line from stdin and prints what the display shows.
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

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	loader, err := catalog.Open(ctx, cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to open catalog source", zap.Error(err))
	}
	defer loader.Close()

	priceCatalog, err := loader.Load(ctx)
	if err != nil {
		zapLogger.Fatal("Failed to load catalog", zap.Error(err))
	}

	session := pos.NewSession(priceCatalog, zapLogger)
	if err := run(ctx, os.Stdin, os.Stdout, session); err != nil {
		zapLogger.Fatal("Checkout stopped with error", zap.Error(err))
	}
}

func run(ctx context.Context, in io.Reader, out io.Writer, session *pos.Session) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		line := scanner.Text()

		var shown []string
		if line == totalCommand {
			shown = session.Total()
		} else {
			shown = session.Scan(line)
		}

		for _, l := range shown {
			if _, err := fmt.Fprintln(out, l); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
