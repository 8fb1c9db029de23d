package application

import (
	"context"

	"polyglot/internal/domain/entities"
	"polyglot/internal/registry"
	"polyglot/pkg/relpath"
)

// Apply overlays translated text for one language onto target and, through
// the relation paths, onto its related entities. Entities are mutated in
// place. A nil set is fetched on demand with the same context, paths and
// language; nested recursion always shares one set.
//
// An entity with no matching rows keeps its original values, and a row with
// empty text never overwrites a field.
func (s *TranslationService) Apply(ctx context.Context, target any, relations []string, language string, set entities.TranslationSet) error {
	lang, err := s.resolveLanguage(ctx, language)
	if err != nil {
		return err
	}
	oc, err := s.normalize(target)
	if err != nil {
		return err
	}
	if set == nil {
		set, err = s.fetchSet(ctx, oc, relations, lang)
		if err != nil {
			return err
		}
	}
	return s.applyTo(oc, relations, set)
}

func (s *TranslationService) applyTo(oc opContext, relations []string, set entities.TranslationSet) error {
	// Validate the paths before mutating anything.
	hierarchy, err := relpath.Parse(relations)
	if err != nil {
		return err
	}

	if s.reg.Translatable(oc.kind) {
		fields, err := s.reg.TranslatableFields(oc.kind)
		if err != nil {
			return err
		}
		byName := make(map[string]registry.Field, len(fields))
		for _, f := range fields {
			byName[f.Name] = f
		}
		for _, item := range oc.items {
			for _, row := range set.For(oc.kind, item.EntityID()) {
				f, declared := byName[row.Field]
				if declared && row.Text != "" {
					f.Set(item, row.Text)
				}
			}
		}
	}

	for _, root := range hierarchy.Roots() {
		rel, err := s.reg.Relation(oc.kind, root)
		if err != nil {
			return err
		}
		descendants := hierarchy.Nested(root)
		for _, item := range oc.items {
			related := rel.Get(item)
			if len(related) == 0 {
				continue
			}
			child := opContext{kind: rel.Target, items: related}
			if err := s.applyTo(child, descendants, set); err != nil {
				return err
			}
		}
	}
	return nil
}
