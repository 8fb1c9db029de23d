package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"polyglot/internal/domain/entities"
	"polyglot/internal/ports/output"
	"polyglot/internal/registry"
)

// Save snapshots the current translatable field values of target into the
// side table for one language. The store replaces the previous rows
// atomically: existing rows for the address set are locked and deleted, then
// the staged rows are bulk-inserted; any failure leaves the previous rows
// untouched.
//
// An empty entity list and a non-translatable kind are successful no-ops.
func (s *TranslationService) Save(ctx context.Context, target any, language string) error {
	lang, err := s.resolveLanguage(ctx, language)
	if err != nil {
		return err
	}
	if list, ok := target.([]registry.Entity); ok && len(list) == 0 {
		return nil
	}
	oc, err := s.normalize(target)
	if err != nil {
		return err
	}
	if !s.reg.Translatable(oc.kind) {
		return nil
	}
	fields, err := s.reg.TranslatableFields(oc.kind)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	var rows []entities.Translation
	for _, item := range oc.items {
		for _, f := range fields {
			value := f.Get(item)
			if value == "" {
				continue
			}
			rows = append(rows, entities.Translation{
				ID:         uuid.NewString(),
				EntityType: oc.kind,
				EntityID:   item.EntityID(),
				Field:      f.Name,
				Language:   lang,
				Text:       value,
				CreatedAt:  now,
			})
		}
	}

	filters := []output.AddressFilter{{EntityType: oc.kind, EntityIDs: oc.ids()}}
	if err := s.repo.ReplaceTranslations(ctx, lang, filters, rows); err != nil {
		return fmt.Errorf("replace translations: %w", err)
	}
	return nil
}
