package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jusunglee/jamoro/internal/db"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS romanizations (
    id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    input TEXT NOT NULL UNIQUE,
    roman TEXT NOT NULL,
    jamo TEXT NOT NULL,
    hangul TEXT NOT NULL,
    applied_roman TEXT NOT NULL,
    applied_jamo TEXT NOT NULL,
    applied_hangul TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_romanizations_created_at ON romanizations(created_at);
`

// Repository implements db.Repository using PostgreSQL via pgx
type Repository struct {
	pool *pgxpool.Pool
}

// New creates a new PostgreSQL repository and ensures the schema exists
func New(ctx context.Context, databaseURL string) (*Repository, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database URL: %w", err)
	}

	config.MaxConns = 5
	config.MinConns = 2
	config.MaxConnLifetime = 5 * time.Minute
	config.MaxConnIdleTime = 30 * time.Second
	config.HealthCheckPeriod = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &Repository{pool: pool}, nil
}

func (r *Repository) Close() error {
	r.pool.Close()
	return nil
}

// PoolStats exposes pgxpool statistics for metrics export
func (r *Repository) PoolStats() *pgxpool.Stat {
	return r.pool.Stat()
}

func (r *Repository) SaveRomanization(ctx context.Context, arg db.SaveRomanizationParams) (db.Romanization, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO romanizations (input, roman, jamo, hangul, applied_roman, applied_jamo, applied_hangul)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (input) DO UPDATE SET
			roman = EXCLUDED.roman,
			jamo = EXCLUDED.jamo,
			hangul = EXCLUDED.hangul,
			applied_roman = EXCLUDED.applied_roman,
			applied_jamo = EXCLUDED.applied_jamo,
			applied_hangul = EXCLUDED.applied_hangul
		RETURNING id, input, roman, jamo, hangul, applied_roman, applied_jamo, applied_hangul, created_at
	`, arg.Input, arg.Roman, arg.Jamo, arg.Hangul, arg.AppliedRoman, arg.AppliedJamo, arg.AppliedHangul)

	return scanRomanization(row)
}

func (r *Repository) GetRomanization(ctx context.Context, id int64) (db.Romanization, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, input, roman, jamo, hangul, applied_roman, applied_jamo, applied_hangul, created_at
		FROM romanizations WHERE id = $1
	`, id)

	return scanRomanization(row)
}

func (r *Repository) GetRomanizationByInput(ctx context.Context, input string) (db.Romanization, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, input, roman, jamo, hangul, applied_roman, applied_jamo, applied_hangul, created_at
		FROM romanizations WHERE input = $1
	`, input)

	return scanRomanization(row)
}

func (r *Repository) ListRomanizations(ctx context.Context, arg db.ListRomanizationsParams) ([]db.Romanization, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, input, roman, jamo, hangul, applied_roman, applied_jamo, applied_hangul, created_at
		FROM romanizations
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []db.Romanization
	for rows.Next() {
		var rec db.Romanization
		if err := rows.Scan(&rec.ID, &rec.Input, &rec.Roman, &rec.Jamo, &rec.Hangul,
			&rec.AppliedRoman, &rec.AppliedJamo, &rec.AppliedHangul, &rec.CreatedAt); err != nil {
			return nil, err
		}
		results = append(results, rec)
	}
	return results, rows.Err()
}

func (r *Repository) CountRomanizations(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM romanizations`).Scan(&count)
	return count, err
}

func scanRomanization(row pgx.Row) (db.Romanization, error) {
	var rec db.Romanization
	err := row.Scan(&rec.ID, &rec.Input, &rec.Roman, &rec.Jamo, &rec.Hangul,
		&rec.AppliedRoman, &rec.AppliedJamo, &rec.AppliedHangul, &rec.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return db.Romanization{}, db.ErrNoRows
	}
	if err != nil {
		return db.Romanization{}, err
	}
	return rec, nil
}
