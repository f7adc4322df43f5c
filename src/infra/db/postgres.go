package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lessonbox/src/infra/config"
)

// Postgres wraps a pgx connection pool with helper methods.
type Postgres struct {
	Pool *pgxpool.Pool
	log  *slog.Logger
}

// New creates a new PostgreSQL connection pool.
// It validates the connection by pinging the database and applies the schema.
func New(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*Postgres, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolCfg.MaxConns = int32(cfg.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.MaxIdleConns)
	poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(connectCtx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(connectCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	p := &Postgres{Pool: pool, log: log}
	if err := p.EnsureSchema(connectCtx); err != nil {
		pool.Close()
		return nil, err
	}

	log.Info("database connection established",
		"host", cfg.Host,
		"port", cfg.Port,
		"database", cfg.Name,
	)

	return p, nil
}

// Close closes the connection pool.
// Call this during graceful shutdown.
func (p *Postgres) Close() {
	if p.Pool != nil {
		p.Pool.Close()
		p.log.Info("database connection closed")
	}
}

// Health checks if the database is reachable.
func (p *Postgres) Health(ctx context.Context) error {
	return p.Pool.Ping(ctx)
}

// InTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back on every other exit path.
func (p *Postgres) InTx(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := p.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
