package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
)

const (
	postgresGetSlot = `SELECT value FROM kv_slots WHERE key = $1`
	postgresSetSlot = `INSERT INTO kv_slots (key, value, updated_at) VALUES ($1, $2, NOW())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
)

// PostgresSlot stores slots in the kv_slots table of a PostgreSQL database.
type PostgresSlot struct {
	db *sql.DB
}

var _ Slot = (*PostgresSlot)(nil)

func NewPostgresSlot(ctx context.Context, databaseURL string) (*PostgresSlot, error) {
	db, err := openPostgres(databaseURL)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunPostgresMigrations(databaseURL); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &PostgresSlot{db: db}, nil
}

// NormalizePostgresURL rewrites the postgresql:// scheme to postgres:// and
// defaults sslmode to disable.
func NormalizePostgresURL(databaseURL string) string {
	if strings.HasPrefix(databaseURL, "postgresql://") {
		databaseURL = "postgres://" + strings.TrimPrefix(databaseURL, "postgresql://")
	}
	if !strings.Contains(databaseURL, "sslmode=") {
		separator := "?"
		if strings.Contains(databaseURL, "?") {
			separator = "&"
		}
		databaseURL += separator + "sslmode=disable"
	}
	return databaseURL
}

func openPostgres(databaseURL string) (*sql.DB, error) {
	config, err := pgx.ParseConfig(NormalizePostgresURL(databaseURL))
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}
	return stdlib.OpenDB(*config), nil
}

func (p *PostgresSlot) Get(ctx context.Context, key string) (string, error) {
	return getSlot(ctx, p.db, postgresGetSlot, key)
}

func (p *PostgresSlot) Set(ctx context.Context, key, value string) error {
	if _, err := p.db.ExecContext(ctx, postgresSetSlot, key, value); err != nil {
		return fmt.Errorf("set slot %s: %w", key, err)
	}
	slog.DebugContext(ctx, "Slot saved to PostgreSQL", "key", key, "bytes", len(value))
	return nil
}

func (p *PostgresSlot) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

func (p *PostgresSlot) Close() error {
	if p.db != nil {
		return p.db.Close()
	}
	return nil
}
