package application

import (
	"context"
	"fmt"
	"strings"

	"polyglot/internal/domain"
	"polyglot/internal/domain/entities"
	"polyglot/internal/ports/output"
	"polyglot/internal/registry"
	"polyglot/pkg/relpath"
)

// Fetch retrieves the translation rows for target and every relation path in
// one query and groups them by owning entity. Reusing the returned set
// across nested Apply calls avoids repeated round trips.
func (s *TranslationService) Fetch(ctx context.Context, target any, relations []string, language string) (entities.TranslationSet, error) {
	lang, err := s.resolveLanguage(ctx, language)
	if err != nil {
		return nil, err
	}
	oc, err := s.normalize(target)
	if err != nil {
		return nil, err
	}
	return s.fetchSet(ctx, oc, relations, lang)
}

func (s *TranslationService) fetchSet(ctx context.Context, oc opContext, relations []string, lang string) (entities.TranslationSet, error) {
	filters, err := s.collectFilters(oc, relations)
	if err != nil {
		return nil, err
	}
	if len(filters) == 0 {
		return entities.TranslationSet{}, nil
	}
	rows, err := s.repo.SelectTranslations(ctx, lang, filters)
	if err != nil {
		return nil, fmt.Errorf("select translations: %w", err)
	}
	return entities.NewTranslationSet(rows), nil
}

// collectFilters builds one OR'd address filter per clause: the context
// itself when its kind is translatable, plus the terminal entities of each
// relation path. Paths are validated before anything is collected.
func (s *TranslationService) collectFilters(oc opContext, relations []string) ([]output.AddressFilter, error) {
	var filters []output.AddressFilter
	if s.reg.Translatable(oc.kind) {
		filters = append(filters, output.AddressFilter{EntityType: oc.kind, EntityIDs: oc.ids()})
	}
	for _, path := range relations {
		terminal, err := s.reg.ResolvePath(oc.kind, path)
		if err != nil {
			return nil, err
		}
		if !s.reg.Translatable(terminal) {
			// Matches addressing through a missing translations relation.
			return nil, fmt.Errorf("application: %w: kind %q at path %q has no translation support", domain.ErrUnknownRelation, terminal, path)
		}
		ids, err := s.terminalIDs(oc, path)
		if err != nil {
			return nil, err
		}
		filters = append(filters, output.AddressFilter{EntityType: terminal, EntityIDs: ids})
	}
	return filters, nil
}

// terminalIDs walks path from the context instances through the registered
// relation accessors and returns the ids of the entities at its end,
// deduplicated in first-reached order.
func (s *TranslationService) terminalIDs(oc opContext, path string) ([]string, error) {
	kind := oc.kind
	current := oc.items
	for _, segment := range strings.Split(path, relpath.Sep) {
		rel, err := s.reg.Relation(kind, segment)
		if err != nil {
			return nil, err
		}
		var next []registry.Entity
		for _, item := range current {
			next = append(next, rel.Get(item)...)
		}
		kind = rel.Target
		current = next
	}
	seen := make(map[string]struct{}, len(current))
	ids := make([]string, 0, len(current))
	for _, item := range current {
		id := item.EntityID()
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}
