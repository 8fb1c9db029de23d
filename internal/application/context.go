package application

import (
	"fmt"

	"polyglot/internal/domain"
	"polyglot/internal/registry"
)

// EntitySet is the bulk-query form of an operation context: the loaded
// result of a query over one entity kind. Unlike a plain entity slice it may
// be empty, in which case every filter built from it matches nothing.
type EntitySet struct {
	Kind  string
	Items []registry.Entity
}

// opContext is a normalized operation context: one entity kind and its
// instances in order.
type opContext struct {
	kind  string
	items []registry.Entity
}

// normalize reduces the accepted target shapes to one kind and N instances.
func (s *TranslationService) normalize(target any) (opContext, error) {
	switch v := target.(type) {
	case registry.Entity:
		return opContext{kind: v.EntityKind(), items: []registry.Entity{v}}, nil
	case []registry.Entity:
		if len(v) == 0 {
			return opContext{}, fmt.Errorf("application: %w: empty entity list", domain.ErrInvalidContext)
		}
		kind := v[0].EntityKind()
		for _, item := range v[1:] {
			if item.EntityKind() != kind {
				return opContext{}, fmt.Errorf("application: %w: mixed kinds %q and %q", domain.ErrInvalidContext, kind, item.EntityKind())
			}
		}
		return opContext{kind: kind, items: v}, nil
	case *EntitySet:
		if v == nil || v.Kind == "" {
			return opContext{}, fmt.Errorf("application: %w: entity set without a kind", domain.ErrInvalidContext)
		}
		for _, item := range v.Items {
			if item.EntityKind() != v.Kind {
				return opContext{}, fmt.Errorf("application: %w: %q entity in a %q set", domain.ErrInvalidContext, item.EntityKind(), v.Kind)
			}
		}
		return opContext{kind: v.Kind, items: v.Items}, nil
	default:
		return opContext{}, fmt.Errorf("application: %w (%T)", domain.ErrInvalidContext, target)
	}
}

// ids returns the context's entity ids in order.
func (c opContext) ids() []string {
	ids := make([]string, len(c.items))
	for i, item := range c.items {
		ids[i] = item.EntityID()
	}
	return ids
}
