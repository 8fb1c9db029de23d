package output

import (
	"context"

	"polyglot/internal/domain/entities"
)

// AddressFilter selects the translation rows owned by a set of entities of
// one kind. Filters combine with OR inside a single query.
type AddressFilter struct {
	EntityType string
	EntityIDs  []string
}

// TranslationRepository is the side-table storage contract.
type TranslationRepository interface {
	// SelectTranslations returns all rows matching language AND any of the
	// filters, deduplicated, in one round trip. No filters means no rows.
	SelectTranslations(ctx context.Context, language string, filters []AddressFilter) ([]entities.Translation, error)

	// ReplaceTranslations atomically deletes every row matching language AND
	// any of the filters, then bulk-inserts rows. The existing rows are
	// locked before the delete so concurrent replaces of the same addresses
	// serialize instead of tripping the uniqueness constraint. Any failure
	// rolls the whole replacement back.
	ReplaceTranslations(ctx context.Context, language string, filters []AddressFilter, rows []entities.Translation) error
}
