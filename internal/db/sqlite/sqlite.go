package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jusunglee/jamoro/internal/db"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Repository implements db.Repository using SQLite
type Repository struct {
	db *sql.DB
}

// New creates a new SQLite repository
func New(ctx context.Context, dbPath string) (*Repository, error) {
	// Strip sqlite:// prefix if present
	dbPath = strings.TrimPrefix(dbPath, "sqlite://")

	isNew := false
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		isNew = true
	}

	sqliteDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening SQLite database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance
	if _, err := sqliteDB.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	repo := &Repository{db: sqliteDB}

	if isNew {
		if _, err := sqliteDB.ExecContext(ctx, schemaSQL); err != nil {
			sqliteDB.Close()
			return nil, fmt.Errorf("initializing schema: %w", err)
		}
		slog.Info("created new SQLite database", "path", dbPath)
	}

	return repo, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) SaveRomanization(ctx context.Context, arg db.SaveRomanizationParams) (db.Romanization, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO romanizations (input, roman, jamo, hangul, applied_roman, applied_jamo, applied_hangul)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (input) DO UPDATE SET
			roman = ?, jamo = ?, hangul = ?, applied_roman = ?, applied_jamo = ?, applied_hangul = ?
	`, arg.Input, arg.Roman, arg.Jamo, arg.Hangul, arg.AppliedRoman, arg.AppliedJamo, arg.AppliedHangul,
		arg.Roman, arg.Jamo, arg.Hangul, arg.AppliedRoman, arg.AppliedJamo, arg.AppliedHangul)
	if err != nil {
		return db.Romanization{}, err
	}

	return r.GetRomanizationByInput(ctx, arg.Input)
}

func (r *Repository) GetRomanization(ctx context.Context, id int64) (db.Romanization, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, input, roman, jamo, hangul, applied_roman, applied_jamo, applied_hangul, created_at
		FROM romanizations WHERE id = ?
	`, id)

	return scanRomanization(row)
}

func (r *Repository) GetRomanizationByInput(ctx context.Context, input string) (db.Romanization, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, input, roman, jamo, hangul, applied_roman, applied_jamo, applied_hangul, created_at
		FROM romanizations WHERE input = ?
	`, input)

	return scanRomanization(row)
}

func (r *Repository) ListRomanizations(ctx context.Context, arg db.ListRomanizationsParams) ([]db.Romanization, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, input, roman, jamo, hangul, applied_roman, applied_jamo, applied_hangul, created_at
		FROM romanizations
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []db.Romanization
	for rows.Next() {
		var rec db.Romanization
		var createdAtStr string
		if err := rows.Scan(&rec.ID, &rec.Input, &rec.Roman, &rec.Jamo, &rec.Hangul,
			&rec.AppliedRoman, &rec.AppliedJamo, &rec.AppliedHangul, &createdAtStr); err != nil {
			return nil, err
		}
		rec.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		results = append(results, rec)
	}
	return results, rows.Err()
}

func (r *Repository) CountRomanizations(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM romanizations`).Scan(&count)
	return count, err
}

func scanRomanization(row *sql.Row) (db.Romanization, error) {
	var rec db.Romanization
	var createdAtStr string
	err := row.Scan(&rec.ID, &rec.Input, &rec.Roman, &rec.Jamo, &rec.Hangul,
		&rec.AppliedRoman, &rec.AppliedJamo, &rec.AppliedHangul, &createdAtStr)
	if err == sql.ErrNoRows {
		return db.Romanization{}, db.ErrNoRows
	}
	if err != nil {
		return db.Romanization{}, err
	}
	rec.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return db.Romanization{}, fmt.Errorf("parsing created_at: %w", err)
	}
	return rec, nil
}
