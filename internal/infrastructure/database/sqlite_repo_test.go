package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"polyglot/internal/domain/entities"
	"polyglot/internal/ports/output"
)

func openSQLite(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "translations.db"))
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSQLiteReplaceAndSelect(t *testing.T) {
	repo := openSQLite(t)
	ctx := context.Background()

	rows := []entities.Translation{
		{ID: "a", EntityType: "city", EntityID: "ber", Field: "name", Language: "de", Text: "Berlin", CreatedAt: time.Now().UTC()},
		{ID: "b", EntityType: "country", EntityID: "de", Field: "name", Language: "de", Text: "Deutschland", CreatedAt: time.Now().UTC()},
	}
	if err := repo.ReplaceTranslations(ctx, "de", nil, rows); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, err := repo.SelectTranslations(ctx, "de", []output.AddressFilter{
		{EntityType: "city", EntityIDs: []string{"ber"}},
		{EntityType: "country", EntityIDs: []string{"de"}},
	})
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("rows = %d, want 2", len(got))
	}
	if got[0].EntityType != "city" || got[0].Text != "Berlin" {
		t.Fatalf("unexpected first row %+v", got[0])
	}
	if got[0].CreatedAt.IsZero() {
		t.Fatal("created_at was not round-tripped")
	}
}

func TestSQLiteReplaceSupersedes(t *testing.T) {
	repo := openSQLite(t)
	ctx := context.Background()

	filters := []output.AddressFilter{{EntityType: "city", EntityIDs: []string{"ber"}}}
	first := []entities.Translation{{ID: "a", EntityType: "city", EntityID: "ber", Field: "name", Language: "de", Text: "alt"}}
	if err := repo.ReplaceTranslations(ctx, "de", filters, first); err != nil {
		t.Fatalf("first replace: %v", err)
	}
	second := []entities.Translation{{ID: "b", EntityType: "city", EntityID: "ber", Field: "name", Language: "de", Text: "neu"}}
	if err := repo.ReplaceTranslations(ctx, "de", filters, second); err != nil {
		t.Fatalf("second replace: %v", err)
	}

	got, err := repo.SelectTranslations(ctx, "de", filters)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(got) != 1 || got[0].Text != "neu" {
		t.Fatalf("rows = %v, want the superseding row only", got)
	}
}

func TestSQLiteEmptyFilterMatchesNothing(t *testing.T) {
	repo := openSQLite(t)
	ctx := context.Background()

	seed := []entities.Translation{{ID: "a", EntityType: "city", EntityID: "ber", Field: "name", Language: "de", Text: "Berlin"}}
	if err := repo.ReplaceTranslations(ctx, "de", nil, seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := repo.SelectTranslations(ctx, "de", []output.AddressFilter{{EntityType: "city"}})
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("an id-less filter must match nothing, got %v", got)
	}
}
