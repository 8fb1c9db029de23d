package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"polyglot/internal/domain/entities"
	"polyglot/internal/ports/output"
)

var _ output.TranslationRepository = (*TranslationRepository)(nil)

// TranslationRepository stores translation rows in PostgreSQL.
type TranslationRepository struct {
	pool *pgxpool.Pool
}

func NewTranslationRepository(pool *pgxpool.Pool) *TranslationRepository {
	return &TranslationRepository{pool: pool}
}

const selectColumns = "entity_type, entity_id, field, language, text, created_at"

func (r *TranslationRepository) SelectTranslations(ctx context.Context, language string, filters []output.AddressFilter) ([]entities.Translation, error) {
	if len(filters) == 0 {
		return nil, nil
	}
	predicate, args := addressPredicate(language, filters)
	query := "SELECT DISTINCT " + selectColumns + " FROM translations WHERE " + predicate +
		" ORDER BY entity_type, entity_id, field"
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select translations: %w", err)
	}
	defer rows.Close()

	var out []entities.Translation
	for rows.Next() {
		var t entities.Translation
		var createdAt pgtype.Timestamptz
		if err := rows.Scan(&t.EntityType, &t.EntityID, &t.Field, &t.Language, &t.Text, &createdAt); err != nil {
			return nil, fmt.Errorf("scan translation: %w", err)
		}
		if createdAt.Valid {
			t.CreatedAt = createdAt.Time
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("select translations: %w", err)
	}
	return out, nil
}

func (r *TranslationRepository) ReplaceTranslations(ctx context.Context, language string, filters []output.AddressFilter, rows []entities.Translation) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if len(filters) > 0 {
		// Lock the rows being replaced so concurrent replaces of the same
		// addresses serialize instead of violating the unique constraint.
		predicate, args := addressPredicate(language, filters)
		locked, err := tx.Query(ctx, "SELECT id FROM translations WHERE "+predicate+" FOR UPDATE", args...)
		if err != nil {
			return fmt.Errorf("lock translations: %w", err)
		}
		var ids []string
		for locked.Next() {
			var id string
			if err := locked.Scan(&id); err != nil {
				locked.Close()
				return fmt.Errorf("scan locked id: %w", err)
			}
			ids = append(ids, id)
		}
		if err := locked.Err(); err != nil {
			locked.Close()
			return fmt.Errorf("lock translations: %w", err)
		}
		locked.Close()

		if len(ids) > 0 {
			if _, err := tx.Exec(ctx, "DELETE FROM translations WHERE id = ANY($1)", ids); err != nil {
				return fmt.Errorf("delete translations: %w", err)
			}
		}
	}

	if len(rows) > 0 {
		columns := []string{"id", "entity_type", "entity_id", "field", "language", "text", "created_at"}
		_, err = tx.CopyFrom(ctx, pgx.Identifier{"translations"}, columns,
			pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
				t := rows[i]
				return []any{t.ID, t.EntityType, t.EntityID, t.Field, t.Language, t.Text, t.CreatedAt}, nil
			}))
		if err != nil {
			return fmt.Errorf("copy translations: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// addressPredicate renders "language = $1 AND (clause OR clause ...)" with
// one (entity_type, entity_id ANY) clause per filter.
func addressPredicate(language string, filters []output.AddressFilter) (string, []any) {
	args := []any{language}
	clauses := make([]string, 0, len(filters))
	for _, f := range filters {
		args = append(args, f.EntityType, f.EntityIDs)
		clauses = append(clauses, fmt.Sprintf("(entity_type = $%d AND entity_id = ANY($%d))", len(args)-1, len(args)))
	}
	return "language = $1 AND (" + strings.Join(clauses, " OR ") + ")", args
}
