package catalog

import (
	"context"
	"fmt"

	"posbot/internal/config"
	"posbot/internal/pos"
	"posbot/internal/storage"
	"posbot/pkg/api"
	"posbot/pkg/redis"

	"go.uber.org/zap"
)

// Loader owns the configured source and the connections behind it.
type Loader struct {
	source  Source
	cached  *CachedSource
	closers []func()
	logger  *zap.Logger
}

// Open builds the source selected by cfg.CatalogSource, with a Redis cache in
// front of it when REDIS_ADDR is set.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Loader, error) {
	const operation = "catalog.Open"

	l := &Loader{logger: logger}

	switch cfg.CatalogSource {
	case config.SourceStatic:
		l.source = DefaultPrices()
	case config.SourcePostgres:
		pg, err := storage.NewPostgresStorage(ctx, cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", operation, err)
		}
		l.closers = append(l.closers, func() { _ = pg.Close() })
		if err := pg.Migrate(ctx); err != nil {
			l.Close()
			return nil, fmt.Errorf("%s: %w", operation, err)
		}
		l.source = pg
	case config.SourceAPI:
		l.source = api.NewClient(cfg.API.BaseURL, cfg.API.Key, cfg.API.Timeout, logger)
	default:
		return nil, fmt.Errorf("%s: unknown catalog source %q", operation, cfg.CatalogSource)
	}

	if cfg.Redis.Addr != "" {
		client := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL)
		if err := client.Ping(ctx); err != nil {
			logger.Warn("Redis unavailable, catalog cache disabled",
				zap.String("addr", cfg.Redis.Addr),
				zap.Error(err))
			client.Close()
		} else {
			l.closers = append(l.closers, client.Close)
			l.cached = NewCachedSource(l.source, client, logger)
			l.source = l.cached
		}
	}

	logger.Info("Catalog source ready",
		zap.String("source", cfg.CatalogSource),
		zap.Bool("cached", l.cached != nil))
	return l, nil
}

func (l *Loader) Load(ctx context.Context) (*pos.Catalog, error) {
	return Load(ctx, l.source, l.logger)
}

// Reload builds a new Catalog straight from the underlying source, refreshing
// the cache on the way.
func (l *Loader) Reload(ctx context.Context) (*pos.Catalog, error) {
	if l.cached == nil {
		return l.Load(ctx)
	}
	return Load(ctx, SourceFunc(l.cached.Refresh), l.logger)
}

func (l *Loader) Close() {
	for i := len(l.closers) - 1; i >= 0; i-- {
		l.closers[i]()
	}
	l.closers = nil
}
