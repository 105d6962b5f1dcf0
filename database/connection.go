package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/jais-samman14/hospital-management-backend/config"
)

// maxConns bounds concurrent store access; requests past the ceiling queue
// inside the pool for a free connection.
const maxConns = 10

// Connect builds the connection pool and verifies it with a round-trip
// probe. The returned handle is the only reference to the pool: callers own
// its lifecycle and must Close it on shutdown.
func Connect(ctx context.Context, cfg *config.Config, log *zap.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	poolCfg.MaxConns = maxConns
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 30 * time.Minute
	poolCfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	probeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := Ping(probeCtx, pool); err != nil {
		// Leave the pool open: the server keeps listening and the health
		// endpoint reports the database as disconnected.
		log.Warn("database probe failed", zap.Error(err))
		return pool, err
	}

	log.Info("database connection pool ready",
		zap.String("host", cfg.DBHost),
		zap.String("database", cfg.DBName),
		zap.Int("max_conns", maxConns))
	return pool, nil
}

// Ping runs the trivial round-trip query the health check relies on.
func Ping(ctx context.Context, pool *pgxpool.Pool) error {
	var one int
	if err := pool.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("database ping: %w", err)
	}
	return nil
}
