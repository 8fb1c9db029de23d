package application

import (
	"context"
	"sync/atomic"
	"testing"

	"polyglot/internal/domain/entities"
	"polyglot/internal/infrastructure/database"
	"polyglot/internal/ports/output"
	"polyglot/internal/registry"
)

// The test domain mirrors a small geography graph:
// Continent -countries-> Country -cities-> City.

type continent struct {
	ID        string
	Name      string
	Code      string // choice field, never translated
	Countries []*country
}

func (c *continent) EntityKind() string { return "continent" }
func (c *continent) EntityID() string   { return c.ID }

type country struct {
	ID      string
	Name    string
	Denonym string
	Cities  []*city
}

func (c *country) EntityKind() string { return "country" }
func (c *country) EntityID() string   { return c.ID }

type city struct {
	ID   string
	Name string
}

func (c *city) EntityKind() string { return "city" }
func (c *city) EntityID() string   { return c.ID }

type auditLog struct {
	ID string
}

func (a *auditLog) EntityKind() string { return "audit_log" }
func (a *auditLog) EntityID() string   { return a.ID }

func geographyRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	r := registry.New()
	descriptors := []registry.Descriptor{
		{
			Kind:         "continent",
			Translatable: true,
			Fields: []registry.Field{
				{Name: "name", Kind: registry.Text,
					Get: func(e registry.Entity) string { return e.(*continent).Name },
					Set: func(e registry.Entity, v string) { e.(*continent).Name = v }},
				{Name: "code", Kind: registry.Choice,
					Get: func(e registry.Entity) string { return e.(*continent).Code },
					Set: func(e registry.Entity, v string) { e.(*continent).Code = v }},
			},
			Relations: map[string]registry.Relation{
				"countries": {Target: "country", Reverse: "continent",
					Get: func(e registry.Entity) []registry.Entity { return registry.Entities(e.(*continent).Countries) }},
				"audits": {Target: "audit_log", Reverse: "continent",
					Get: func(e registry.Entity) []registry.Entity { return nil }},
			},
		},
		{
			Kind:         "country",
			Translatable: true,
			Fields: []registry.Field{
				{Name: "name", Kind: registry.Text,
					Get: func(e registry.Entity) string { return e.(*country).Name },
					Set: func(e registry.Entity, v string) { e.(*country).Name = v }},
				{Name: "denonym", Kind: registry.Text,
					Get: func(e registry.Entity) string { return e.(*country).Denonym },
					Set: func(e registry.Entity, v string) { e.(*country).Denonym = v }},
			},
			Relations: map[string]registry.Relation{
				"cities": {Target: "city", Reverse: "country",
					Get: func(e registry.Entity) []registry.Entity { return registry.Entities(e.(*country).Cities) }},
			},
		},
		{
			Kind:         "city",
			Translatable: true,
			Fields: []registry.Field{
				{Name: "name", Kind: registry.Text,
					Get: func(e registry.Entity) string { return e.(*city).Name },
					Set: func(e registry.Entity, v string) { e.(*city).Name = v }},
			},
		},
		{Kind: "audit_log"},
	}
	for _, d := range descriptors {
		if err := r.Register(d); err != nil {
			t.Fatalf("register %s: %v", d.Kind, err)
		}
	}
	return r
}

type stubLanguages struct {
	supported []string
	fallback  string
}

func (s stubLanguages) Supported() []string { return s.supported }
func (s stubLanguages) Default() string     { return s.fallback }

// countingRepo wraps a repository and counts select round trips.
type countingRepo struct {
	output.TranslationRepository
	selects atomic.Int64
}

func (c *countingRepo) SelectTranslations(ctx context.Context, language string, filters []output.AddressFilter) ([]entities.Translation, error) {
	c.selects.Add(1)
	return c.TranslationRepository.SelectTranslations(ctx, language, filters)
}

func newService(t *testing.T) (*TranslationService, *countingRepo, *database.MemoryRepository) {
	t.Helper()
	mem := database.NewMemoryRepository()
	counting := &countingRepo{TranslationRepository: mem}
	svc := NewTranslationService(counting, stubLanguages{
		supported: []string{"en", "de", "fr"},
		fallback:  "en",
	}, geographyRegistry(t))
	return svc, counting, mem
}

// europe builds one continent with two countries and three cities.
func europe() *continent {
	return &continent{
		ID:   "eu",
		Name: "Europe",
		Code: "EU",
		Countries: []*country{
			{ID: "de", Name: "Germany", Denonym: "German", Cities: []*city{
				{ID: "ber", Name: "Berlin"},
				{ID: "col", Name: "Cologne"},
			}},
			{ID: "fr", Name: "France", Denonym: "French", Cities: []*city{
				{ID: "par", Name: "Paris"},
			}},
		},
	}
}
