package catalog

import (
	"context"
	"fmt"

	"posbot/pkg/redis"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const pricesCacheKey = "catalog:prices"

type HashCache interface {
	GetHash(ctx context.Context, key string) (map[string]string, error)
	ReplaceHash(ctx context.Context, key string, fields map[string]string) error
}

var _ HashCache = (*redis.Client)(nil)

// CachedSource reads the price table from a hash cache and falls back to the
// wrapped source on a miss. Cache failures are logged and never fail a load.
type CachedSource struct {
	source Source
	cache  HashCache
	logger *zap.Logger
}

func NewCachedSource(source Source, cache HashCache, logger *zap.Logger) *CachedSource {
	return &CachedSource{
		source: source,
		cache:  cache,
		logger: logger,
	}
}

func (s *CachedSource) Prices(ctx context.Context) (map[string]decimal.Decimal, error) {
	if prices, ok := s.fromCache(ctx); ok {
		return prices, nil
	}

	prices, err := s.source.Prices(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.ReplaceHash(ctx, pricesCacheKey, encodePrices(prices)); err != nil {
		s.logger.Warn("Failed to cache catalog", zap.Error(err))
	}
	return prices, nil
}

// Refresh bypasses the cache, reloads from the source and rewrites the cache.
func (s *CachedSource) Refresh(ctx context.Context) (map[string]decimal.Decimal, error) {
	prices, err := s.source.Prices(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.ReplaceHash(ctx, pricesCacheKey, encodePrices(prices)); err != nil {
		s.logger.Warn("Failed to cache catalog", zap.Error(err))
	}
	return prices, nil
}

func (s *CachedSource) fromCache(ctx context.Context) (map[string]decimal.Decimal, bool) {
	fields, err := s.cache.GetHash(ctx, pricesCacheKey)
	if err != nil {
		s.logger.Warn("Catalog cache unavailable", zap.Error(err))
		return nil, false
	}
	if len(fields) == 0 {
		return nil, false
	}

	prices, err := decodePrices(fields)
	if err != nil {
		s.logger.Warn("Ignoring corrupt catalog cache", zap.Error(err))
		return nil, false
	}

	s.logger.Debug("Catalog served from cache", zap.Int("products", len(prices)))
	return prices, true
}

func encodePrices(prices map[string]decimal.Decimal) map[string]string {
	fields := make(map[string]string, len(prices))
	for barcode, price := range prices {
		fields[barcode] = price.String()
	}
	return fields
}

func decodePrices(fields map[string]string) (map[string]decimal.Decimal, error) {
	prices := make(map[string]decimal.Decimal, len(fields))
	for barcode, value := range fields {
		price, err := decimal.NewFromString(value)
		if err != nil {
			return nil, fmt.Errorf("price for %q: %w", barcode, err)
		}
		prices[barcode] = price
	}
	return prices, nil
}
