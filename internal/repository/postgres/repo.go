package postgres

import (
	"context"
	"fmt"

	"github.com/dormlife/notice-service/internal/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect opens a pgx pool against the configured database.
func Connect(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.DBName, cfg.SSLMode,
	)
	return pgxpool.New(ctx, dsn)
}

const schema = `
CREATE TABLE IF NOT EXISTS notices (
	id          TEXT PRIMARY KEY,
	seq         BIGSERIAL,
	title       TEXT NOT NULL,
	description TEXT NOT NULL,
	content     TEXT NOT NULL,
	category    TEXT NOT NULL,
	image       TEXT,
	is_pinned   BOOLEAN NOT NULL DEFAULT FALSE,
	created_at  DATE NOT NULL DEFAULT CURRENT_DATE
);
CREATE INDEX IF NOT EXISTS notices_category_idx ON notices (category);
CREATE INDEX IF NOT EXISTS notices_pinned_idx ON notices (is_pinned);
CREATE INDEX IF NOT EXISTS notices_created_at_idx ON notices (created_at DESC);
`

// InitSchema creates the notices table and its filter indexes.
func InitSchema(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, schema)
	return err
}
