package database

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"polyglot/internal/domain/entities"
	"polyglot/internal/ports/output"
)

var _ output.TranslationRepository = (*MemoryRepository)(nil)

type memoryKey struct {
	entityType string
	entityID   string
	field      string
	language   string
}

// MemoryRepository keeps translation rows in process memory. It backs the
// engine tests and suits embedding without a database. The mutex plays the
// role of the row lock: a replace holds it for the whole delete+insert, so
// concurrent replaces serialize and never interleave.
type MemoryRepository struct {
	mu   sync.Mutex
	rows map[memoryKey]entities.Translation
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{rows: make(map[memoryKey]entities.Translation)}
}

func (r *MemoryRepository) SelectTranslations(_ context.Context, language string, filters []output.AddressFilter) ([]entities.Translation, error) {
	if len(filters) == 0 {
		return nil, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []entities.Translation
	for key, row := range r.rows {
		if key.language == language && matchesAny(key, filters) {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].EntityType != out[j].EntityType {
			return out[i].EntityType < out[j].EntityType
		}
		if out[i].EntityID != out[j].EntityID {
			return out[i].EntityID < out[j].EntityID
		}
		return out[i].Field < out[j].Field
	})
	return out, nil
}

func (r *MemoryRepository) ReplaceTranslations(_ context.Context, language string, filters []output.AddressFilter, rows []entities.Translation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doomed := make(map[memoryKey]struct{})
	for key := range r.rows {
		if key.language == language && matchesAny(key, filters) {
			doomed[key] = struct{}{}
		}
	}
	// Validate the whole staging set before touching anything, so a failed
	// replace leaves the previous rows intact.
	staged := make(map[memoryKey]entities.Translation, len(rows))
	for _, row := range rows {
		key := memoryKey{row.EntityType, row.EntityID, row.Field, row.Language}
		if _, dup := staged[key]; dup {
			return fmt.Errorf("duplicate translation for %s/%s %s [%s]", row.EntityType, row.EntityID, row.Field, row.Language)
		}
		if _, exists := r.rows[key]; exists {
			if _, replaced := doomed[key]; !replaced {
				return fmt.Errorf("translation already stored for %s/%s %s [%s]", row.EntityType, row.EntityID, row.Field, row.Language)
			}
		}
		staged[key] = row
	}
	for key := range doomed {
		delete(r.rows, key)
	}
	for key, row := range staged {
		r.rows[key] = row
	}
	return nil
}

// Len reports the number of stored rows.
func (r *MemoryRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

func matchesAny(key memoryKey, filters []output.AddressFilter) bool {
	for _, f := range filters {
		if f.EntityType != key.entityType {
			continue
		}
		for _, id := range f.EntityIDs {
			if id == key.entityID {
				return true
			}
		}
	}
	return false
}
