package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewDB creates a new PostgreSQL connection pool.
func NewDB(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// RunMigrations executes the initial schema migration.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE TABLE IF NOT EXISTS users (
			id         TEXT PRIMARY KEY,
			email      TEXT NOT NULL UNIQUE,
			name       TEXT NOT NULL DEFAULT '',
			phone      TEXT NOT NULL DEFAULT '',
			password   TEXT NOT NULL,
			role       TEXT NOT NULL DEFAULT 'user',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);

		CREATE TABLE IF NOT EXISTS categories (
			slug    TEXT PRIMARY KEY,
			name_ar TEXT NOT NULL,
			name_en TEXT NOT NULL,
			image   TEXT NOT NULL DEFAULT '',
			color   TEXT NOT NULL DEFAULT '#1e88e5'
		);

		CREATE TABLE IF NOT EXISTS ads (
			id             TEXT PRIMARY KEY,
			company_name   TEXT NOT NULL,
			description    TEXT NOT NULL,
			category       TEXT NOT NULL,
			country        TEXT NOT NULL,
			city           TEXT NOT NULL,
			image          TEXT NOT NULL DEFAULT '',
			logo           TEXT NOT NULL DEFAULT '',
			phone          TEXT NOT NULL DEFAULT '',
			whatsapp       TEXT NOT NULL DEFAULT '',
			website        TEXT NOT NULL DEFAULT '',
			email          TEXT NOT NULL DEFAULT '',
			owner_email    TEXT NOT NULL DEFAULT '',
			is_vip         BOOLEAN NOT NULL DEFAULT FALSE,
			vip_expires_at TIMESTAMPTZ,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_ads_category ON ads(category);
		CREATE INDEX IF NOT EXISTS idx_ads_owner_email ON ads(owner_email);

		CREATE TABLE IF NOT EXISTS coupons (
			code       TEXT PRIMARY KEY,
			percent    INT NOT NULL,
			active     BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS checkout_sessions (
			id           TEXT PRIMARY KEY,
			ad_id        TEXT NOT NULL,
			plan         TEXT NOT NULL,
			amount_cents BIGINT NOT NULL,
			status       TEXT NOT NULL DEFAULT 'pending',
			created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_checkout_sessions_ad_id ON checkout_sessions(ad_id);
	`
	_, err := pool.Exec(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
