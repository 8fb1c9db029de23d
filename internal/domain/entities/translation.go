package entities

import "time"

// MaxFieldLen is the longest allowed translated-field name.
const MaxFieldLen = 64

// Translation maps one (entity, field, language) address to translated text.
// The tuple (EntityType, EntityID, Field, Language) is unique in the store;
// rows are always replaced as a whole, never updated in place.
type Translation struct {
	ID         string // client-generated uuid, assigned when the row is staged
	EntityType string
	EntityID   string // text form of the owning entity's id
	Field      string
	Language   string
	Text       string // may be empty; empty text is never applied as an overlay
	CreatedAt  time.Time
}

// Address identifies the owning entity of one or more translations.
type Address struct {
	EntityType string
	EntityID   string
}

// TranslationSet groups translation rows by owning entity for in-memory
// lookup, so a whole object graph can be overlaid from a single fetch.
type TranslationSet map[Address][]Translation

// NewTranslationSet groups rows by (entity type, entity id).
func NewTranslationSet(rows []Translation) TranslationSet {
	set := make(TranslationSet, len(rows))
	for _, row := range rows {
		set.Add(row)
	}
	return set
}

// Add appends a row under its owning address.
func (s TranslationSet) Add(row Translation) {
	key := Address{EntityType: row.EntityType, EntityID: row.EntityID}
	s[key] = append(s[key], row)
}

// For returns the rows belonging to one entity; nil when it has none.
func (s TranslationSet) For(entityType, entityID string) []Translation {
	return s[Address{EntityType: entityType, EntityID: entityID}]
}
