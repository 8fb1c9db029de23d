package input

import (
	"context"

	"polyglot/internal/domain/entities"
)

// TranslationUseCase is the read/write surface of the translation core.
//
// target is the operation's context: a registry.Entity, a non-empty
// []registry.Entity of one kind, or an *application.EntitySet.
type TranslationUseCase interface {
	// Fetch retrieves the translation rows for target and every relation
	// path, for one language, in a single query.
	Fetch(ctx context.Context, target any, relations []string, language string) (entities.TranslationSet, error)

	// Apply overlays translated text onto target and its related entities in
	// place. A nil set is fetched on demand with the same arguments.
	Apply(ctx context.Context, target any, relations []string, language string, set entities.TranslationSet) error

	// Save transactionally replaces the stored translations for target and
	// language with its current field values.
	Save(ctx context.Context, target any, language string) error
}
