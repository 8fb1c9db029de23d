// Package registry holds the entity type registry: per-kind descriptors of
// translatable fields and relations, with typed accessors so graph traversal
// stays type-checked inside each registered closure. Only the outer relation
// path strings remain name-based.
package registry

import (
	"fmt"
	"strings"

	"polyglot/internal/domain"
	"polyglot/internal/domain/entities"
	"polyglot/pkg/relpath"
)

// Entity is the minimal contract a domain record needs to take part in
// translation: a stable type discriminator and an id compared as text.
type Entity interface {
	EntityKind() string
	EntityID() string
}

// FieldKind classifies a declared field. Only Text fields are implicitly
// translatable; Choice and Email fields are text-valued but excluded.
type FieldKind int

const (
	Text FieldKind = iota
	Choice
	Email
	Other
)

// Field declares one attribute of an entity kind together with its typed
// accessors. Get and Set may assume the entity is of the declaring kind.
type Field struct {
	Name string
	Kind FieldKind
	Get  func(Entity) string
	Set  func(Entity, string)
}

// Relation declares one named relation of an entity kind.
//
// Reverse is the relation name on the target kind pointing back at the
// declaring kind; it is what a filter on the target must use to reach the
// declaring kind, and is composed right-to-left for nested paths.
//
// Get materializes the related entities of one instance as an ordered list:
// empty for an unset single relation, one element for a set one, all
// elements for a collection.
type Relation struct {
	Target  string
	Reverse string
	Get     func(Entity) []Entity
}

// Descriptor registers one entity kind.
//
// TranslatableFields, when non-nil, explicitly names the translatable subset
// of Fields in order. When nil and Translatable is set, every Text field is
// translatable. A kind registered with Translatable false only takes part in
// traversal (as a relation hop).
type Descriptor struct {
	Kind               string
	Translatable       bool
	Fields             []Field
	TranslatableFields []string
	Relations          map[string]Relation
}

type typeInfo struct {
	desc         Descriptor
	translatable []Field
}

// Registry maps entity kinds to their descriptors. Register everything at
// startup; lookups afterwards are read-only and safe for concurrent use.
type Registry struct {
	types map[string]*typeInfo
}

func New() *Registry {
	return &Registry{types: make(map[string]*typeInfo)}
}

// Register adds a kind. The translatable-field set is resolved here, once,
// and never recomputed.
func (r *Registry) Register(d Descriptor) error {
	if d.Kind == "" {
		return fmt.Errorf("registry: descriptor without a kind")
	}
	if _, exists := r.types[d.Kind]; exists {
		return fmt.Errorf("registry: %w: %q", domain.ErrDuplicateKind, d.Kind)
	}
	for _, f := range d.Fields {
		if len(f.Name) > entities.MaxFieldLen {
			return fmt.Errorf("registry: %w: %q.%q", domain.ErrFieldTooLong, d.Kind, f.Name)
		}
	}
	info := &typeInfo{desc: d}
	if d.Translatable {
		fields, err := resolveTranslatable(d)
		if err != nil {
			return err
		}
		info.translatable = fields
	}
	r.types[d.Kind] = info
	return nil
}

func resolveTranslatable(d Descriptor) ([]Field, error) {
	byName := make(map[string]Field, len(d.Fields))
	for _, f := range d.Fields {
		byName[f.Name] = f
	}
	if d.TranslatableFields != nil {
		fields := make([]Field, 0, len(d.TranslatableFields))
		for _, name := range d.TranslatableFields {
			f, ok := byName[name]
			if !ok {
				return nil, fmt.Errorf("registry: translatable field %q is not declared on kind %q", name, d.Kind)
			}
			fields = append(fields, f)
		}
		return fields, nil
	}
	var fields []Field
	for _, f := range d.Fields {
		if f.Kind == Text {
			fields = append(fields, f)
		}
	}
	return fields, nil
}

// Translatable reports whether kind is registered with translation support.
func (r *Registry) Translatable(kind string) bool {
	info, ok := r.types[kind]
	return ok && info.desc.Translatable
}

// TranslatableFields returns the resolved translatable-field set of kind.
func (r *Registry) TranslatableFields(kind string) ([]Field, error) {
	info, ok := r.types[kind]
	if !ok {
		return nil, fmt.Errorf("registry: %w: %q", domain.ErrUnknownKind, kind)
	}
	if !info.desc.Translatable {
		return nil, fmt.Errorf("registry: %w: %q", domain.ErrNotTranslatable, kind)
	}
	return info.translatable, nil
}

// Relation returns the named relation of kind.
func (r *Registry) Relation(kind, name string) (Relation, error) {
	info, ok := r.types[kind]
	if !ok {
		return Relation{}, fmt.Errorf("registry: %w: %q", domain.ErrUnknownKind, kind)
	}
	rel, ok := info.desc.Relations[name]
	if !ok {
		return Relation{}, fmt.Errorf("registry: %w: %q on kind %q", domain.ErrUnknownRelation, name, kind)
	}
	return rel, nil
}

// ReverseName resolves the reverse relation name a filter on the terminal
// kind of path must use to reach back to kind. Composition is right-to-left:
// the reverse of "a__b__c" is reverse("b__c" on target(a)) + "__" +
// reverse("a" on kind).
func (r *Registry) ReverseName(kind, path string) (string, error) {
	root, rest, nested := strings.Cut(path, relpath.Sep)
	if root == "" || (nested && rest == "") {
		return "", fmt.Errorf("registry: %w: %q", relpath.ErrInvalidPath, path)
	}
	rel, err := r.Relation(kind, root)
	if err != nil {
		return "", err
	}
	if rest == "" {
		return rel.Reverse, nil
	}
	branch, err := r.ReverseName(rel.Target, rest)
	if err != nil {
		return "", err
	}
	return branch + relpath.Sep + rel.Reverse, nil
}

// ResolvePath returns the terminal related kind reached by following path
// from kind, validating every segment.
func (r *Registry) ResolvePath(kind, path string) (string, error) {
	current := kind
	for _, segment := range strings.Split(path, relpath.Sep) {
		if segment == "" {
			return "", fmt.Errorf("registry: %w: %q", relpath.ErrInvalidPath, path)
		}
		rel, err := r.Relation(current, segment)
		if err != nil {
			return "", err
		}
		current = rel.Target
	}
	return current, nil
}

// Entities widens a concrete entity slice to []Entity for use as a context.
func Entities[T Entity](items []T) []Entity {
	out := make([]Entity, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
