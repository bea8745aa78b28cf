package catalog

import (
	"context"
	"errors"
	"fmt"

	"posbot/internal/pos"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrCatalogEmpty = errors.New("catalog source returned no products")

// Source yields a full barcode to price table.
type Source interface {
	Prices(ctx context.Context) (map[string]decimal.Decimal, error)
}

type SourceFunc func(ctx context.Context) (map[string]decimal.Decimal, error)

func (f SourceFunc) Prices(ctx context.Context) (map[string]decimal.Decimal, error) {
	return f(ctx)
}

// StaticSource serves a fixed table.
type StaticSource map[string]decimal.Decimal

func (s StaticSource) Prices(context.Context) (map[string]decimal.Decimal, error) {
	prices := make(map[string]decimal.Decimal, len(s))
	for barcode, price := range s {
		prices[barcode] = price
	}
	return prices, nil
}

// DefaultPrices is the built-in demo table.
func DefaultPrices() StaticSource {
	return StaticSource{
		"12345": decimal.RequireFromString("7.25"),
		"23456": decimal.RequireFromString("12.50"),
	}
}

// Load reads the source once and freezes the result into a Catalog.
func Load(ctx context.Context, source Source, logger *zap.Logger) (*pos.Catalog, error) {
	const operation = "catalog.Load"

	prices, err := source.Prices(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	if len(prices) == 0 {
		return nil, fmt.Errorf("%s: %w", operation, ErrCatalogEmpty)
	}

	catalog := pos.NewCatalog(prices)
	logger.Info("Catalog loaded", zap.Int("products", catalog.Len()))
	return catalog, nil
}
