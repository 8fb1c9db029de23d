package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"polyglot/internal/domain/entities"
	"polyglot/internal/ports/output"
)

var _ output.TranslationRepository = (*SQLiteRepository)(nil)

// SQLiteRepository is the embedded single-file variant of the translation
// store. SQLite allows only one writer at a time, so a replace transaction
// serializes against concurrent replaces without explicit row locks.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens (or creates) the store at path and ensures the
// translations table exists.
func NewSQLiteRepository(path string) (*SQLiteRepository, error) {
	if path == "" {
		path = "polyglot.db"
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS translations (
		id TEXT PRIMARY KEY,
		entity_type TEXT NOT NULL,
		entity_id TEXT NOT NULL,
		field TEXT NOT NULL,
		language TEXT NOT NULL,
		text TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		UNIQUE (entity_type, entity_id, field, language)
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create translations table: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

// DB exposes the underlying handle for integration testing hooks.
func (r *SQLiteRepository) DB() *sql.DB { return r.db }

func (r *SQLiteRepository) Close() error { return r.db.Close() }

func (r *SQLiteRepository) SelectTranslations(ctx context.Context, language string, filters []output.AddressFilter) ([]entities.Translation, error) {
	if len(filters) == 0 {
		return nil, nil
	}
	predicate, args := sqlitePredicate(language, filters)
	query := "SELECT DISTINCT " + selectColumns + " FROM translations WHERE " + predicate +
		" ORDER BY entity_type, entity_id, field"
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select translations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []entities.Translation
	for rows.Next() {
		var t entities.Translation
		var createdAt string
		if err := rows.Scan(&t.EntityType, &t.EntityID, &t.Field, &t.Language, &t.Text, &createdAt); err != nil {
			return nil, fmt.Errorf("scan translation: %w", err)
		}
		if parsed, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			t.CreatedAt = parsed
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("select translations: %w", err)
	}
	return out, nil
}

func (r *SQLiteRepository) ReplaceTranslations(ctx context.Context, language string, filters []output.AddressFilter, rows []entities.Translation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if len(filters) > 0 {
		predicate, args := sqlitePredicate(language, filters)
		if _, err := tx.ExecContext(ctx, "DELETE FROM translations WHERE "+predicate, args...); err != nil {
			return fmt.Errorf("delete translations: %w", err)
		}
	}

	if len(rows) > 0 {
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO translations (id, entity_type, entity_id, field, language, text, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("prepare insert: %w", err)
		}
		defer func() { _ = stmt.Close() }()
		for _, t := range rows {
			createdAt := t.CreatedAt
			if createdAt.IsZero() {
				createdAt = time.Now().UTC()
			}
			if _, err := stmt.ExecContext(ctx, t.ID, t.EntityType, t.EntityID, t.Field, t.Language, t.Text, createdAt.Format(time.RFC3339Nano)); err != nil {
				return fmt.Errorf("insert translation: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// sqlitePredicate is the placeholder-style twin of addressPredicate.
func sqlitePredicate(language string, filters []output.AddressFilter) (string, []any) {
	args := []any{language}
	clauses := make([]string, 0, len(filters))
	for _, f := range filters {
		placeholders := make([]string, len(f.EntityIDs))
		args = append(args, f.EntityType)
		for i, id := range f.EntityIDs {
			placeholders[i] = "?"
			args = append(args, id)
		}
		in := "(NULL)"
		if len(placeholders) > 0 {
			in = "(" + strings.Join(placeholders, ", ") + ")"
		}
		clauses = append(clauses, "(entity_type = ? AND entity_id IN "+in+")")
	}
	return "language = ? AND (" + strings.Join(clauses, " OR ") + ")", args
}
