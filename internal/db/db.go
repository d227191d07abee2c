package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"fortune-api/internal/config"
)

// NewPool builds the connection pool from config.
func NewPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	poolCfg.MaxConns = 10
	poolCfg.MinConns = 1
	poolCfg.MaxConnLifetime = 30 * time.Minute
	poolCfg.MaxConnIdleTime = 5 * time.Minute
	poolCfg.HealthCheckPeriod = 30 * time.Second
	poolCfg.ConnConfig.ConnectTimeout = 5 * time.Second

	return pgxpool.NewWithConfig(ctx, poolCfg)
}

// Ping checks database connectivity.
func Ping(ctx context.Context, pool *pgxpool.Pool) error {
	return pool.Ping(ctx)
}

const schema = `
CREATE EXTENSION IF NOT EXISTS vector;

CREATE TABLE IF NOT EXISTS mbti_results (
	id           UUID PRIMARY KEY,
	user_id      TEXT NOT NULL,
	type_code    CHAR(4) NOT NULL,
	display_type CHAR(4) NOT NULL,
	ei           SMALLINT NOT NULL,
	sn           SMALLINT NOT NULL,
	tf           SMALLINT NOT NULL,
	jp           SMALLINT NOT NULL,
	tendency     vector(4) NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS mbti_results_user_created_idx ON mbti_results (user_id, created_at DESC);
`

// EnsureSchema creates the tables the API needs. Safe to run on every start.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	return err
}
