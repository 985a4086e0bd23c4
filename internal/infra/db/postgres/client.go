package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"orcamento-pro/backend/internal/domain/catalog"
	"orcamento-pro/backend/internal/domain/quote"
)

type DB struct {
	Pool *pgxpool.Pool
}

func New(dsn string) (*DB, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = 10
	cfg.MinConns = 2
	cfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
	if err != nil {
		return nil, err
	}
	return &DB{Pool: pool}, nil
}

// Init creates the schema. The seq columns preserve insertion order so that
// an upsert keeps a row's position in the list.
func (db *DB) Init(ctx context.Context) error {
	_, err := db.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS products (
			seq         BIGSERIAL,
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price       NUMERIC NOT NULL,
			category    TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS quotes (
			seq           BIGSERIAL,
			id            TEXT PRIMARY KEY,
			name          TEXT NOT NULL,
			items         JSONB NOT NULL DEFAULT '[]',
			discount      NUMERIC NOT NULL DEFAULT 0,
			discount_type TEXT NOT NULL DEFAULT 'percentage',
			tax_rate      NUMERIC NOT NULL DEFAULT 0,
			created_at    TIMESTAMPTZ NOT NULL
		);
		CREATE TABLE IF NOT EXISTS settings (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	return err
}

func (db *DB) Close() { db.Pool.Close() }

func (db *DB) Catalog() catalog.Store            { return catalogStore{db} }
func (db *DB) QuoteCollection() quote.Collection { return quoteCollection{db} }

func (db *DB) Theme() (string, error) {
	var v string
	err := db.Pool.QueryRow(context.Background(),
		`SELECT value FROM settings WHERE key = 'theme'`).Scan(&v)
	if err != nil {
		return "claro", nil
	}
	return v, nil
}

func (db *DB) SetTheme(v string) error {
	_, err := db.Pool.Exec(context.Background(), `
		INSERT INTO settings (key, value) VALUES ('theme', $1)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`, v)
	return err
}
