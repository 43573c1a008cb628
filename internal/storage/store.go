package storage

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/ponyexpress/backend/internal/storage/zapadapter"
	"go.uber.org/zap"
)

//go:embed schema.sql
var schema string

// Store defines fields used in db interaction processes
type Store struct {
	logger *zap.SugaredLogger
	db     *pgxpool.Pool
}

// New sets provided zap.Logger via zapadapter to pgxpool.Pool and returns instance of Store struct
func New(ctx context.Context, logger *zap.SugaredLogger, cfg Config, opts ...Option) (*Store, error) {
	return NewFromDSN(ctx, logger, cfg.DSN(), opts...)
}

// NewFromDSN is like New but takes a ready connection string
func NewFromDSN(ctx context.Context, logger *zap.SugaredLogger, dsn string, opts ...Option) (*Store, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.ParseConfig: %w", err)
	}
	config.ConnConfig.Logger = zapadapter.NewLogger(logger.Desugar())

	for _, opt := range opts {
		opt.apply(config)
	}

	pool, err := pgxpool.ConnectConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.ConnectConfig: %w", err)
	}

	return &Store{
		logger: logger,
		db:     pool,
	}, nil
}

// Migrate creates missing tables and indexes, it is safe to call on every start
func (s *Store) Migrate(ctx context.Context) error {
	s.logger.Debug("Applying schema")

	// no arguments, so pgx uses the simple protocol and multiple statements are allowed
	if _, err := s.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}

	return nil
}

// Close closes all connections in the pool
func (s *Store) Close() {
	s.db.Close()
}
