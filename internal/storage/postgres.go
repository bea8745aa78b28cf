package storage

import (
	"context"
	"fmt"
	"time"

	"posbot/internal/config"

	"github.com/cenkalti/backoff/v4"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type PostgresStorage struct {
	db     *sqlx.DB
	logger *zap.Logger
}

type Product struct {
	Barcode string          `db:"barcode"`
	Name    string          `db:"name"`
	Price   decimal.Decimal `db:"price"`
}

func NewPostgresStorage(ctx context.Context, cfg config.Database, logger *zap.Logger) (*PostgresStorage, error) {
	const operation = "storage.NewPostgresStorage"

	connStr := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
	)

	var db *sqlx.DB

	retryPolicy := backoff.NewExponentialBackOff()
	retryPolicy.MaxElapsedTime = cfg.ConnectTimeout
	retryPolicy.MaxInterval = 15 * time.Second

	logger.Info("Connecting to PostgreSQL...")

	err := backoff.RetryNotify(
		func() error {
			conn, err := sqlx.ConnectContext(ctx, "postgres", connStr)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			db = conn
			return nil
		},
		backoff.WithContext(retryPolicy, ctx),
		func(err error, duration time.Duration) {
			logger.Warn("PostgreSQL connection failed, retrying...",
				zap.Error(err),
				zap.Duration("next_attempt_in", duration))
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to connect after retries: %w", operation, err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	logger.Info("Successfully connected to PostgreSQL")
	return &PostgresStorage{
		db:     db,
		logger: logger,
	}, nil
}

// Migrate brings the products schema up to date.
func (s *PostgresStorage) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.db.DB, s.logger)
}

func (s *PostgresStorage) Rollback(ctx context.Context) error {
	return RollbackMigration(ctx, s.db.DB, s.logger)
}

func (s *PostgresStorage) MigrationStatus(ctx context.Context) error {
	return Status(ctx, s.db.DB, s.logger)
}

func (s *PostgresStorage) GetProducts(ctx context.Context) ([]Product, error) {
	const query = `SELECT barcode, name, price FROM products ORDER BY barcode`

	var products []Product
	if err := s.db.SelectContext(ctx, &products, query); err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	return products, nil
}

// Prices loads the whole price table keyed by barcode.
func (s *PostgresStorage) Prices(ctx context.Context) (map[string]decimal.Decimal, error) {
	const operation = "storage.Prices"

	products, err := s.GetProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	s.logger.Debug("Loaded products from PostgreSQL", zap.Int("count", len(products)))
	return PriceTable(products), nil
}

func (s *PostgresStorage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// PriceTable indexes products by barcode. A later duplicate barcode wins.
func PriceTable(products []Product) map[string]decimal.Decimal {
	prices := make(map[string]decimal.Decimal, len(products))
	for _, p := range products {
		prices[p.Barcode] = p.Price
	}
	return prices
}
