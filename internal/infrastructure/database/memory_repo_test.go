package database

import (
	"context"
	"testing"

	"polyglot/internal/domain/entities"
	"polyglot/internal/ports/output"
)

func TestMemorySelectFiltersByLanguageAndAddress(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	rows := []entities.Translation{
		{ID: "1", EntityType: "city", EntityID: "ber", Field: "name", Language: "de", Text: "Berlin"},
		{ID: "2", EntityType: "city", EntityID: "ber", Field: "name", Language: "fr", Text: "Berlin (fr)"},
		{ID: "3", EntityType: "country", EntityID: "de", Field: "name", Language: "de", Text: "Deutschland"},
	}
	for _, row := range rows {
		if err := repo.ReplaceTranslations(ctx, row.Language, nil, []entities.Translation{row}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	got, err := repo.SelectTranslations(ctx, "de", []output.AddressFilter{
		{EntityType: "city", EntityIDs: []string{"ber"}},
	})
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(got) != 1 || got[0].Text != "Berlin" {
		t.Fatalf("got %v, want the single german city row", got)
	}

	got, err = repo.SelectTranslations(ctx, "de", []output.AddressFilter{
		{EntityType: "city", EntityIDs: []string{"ber"}},
		{EntityType: "country", EntityIDs: []string{"de"}},
	})
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("OR'd filters returned %d rows, want 2", len(got))
	}
}

func TestMemorySelectWithoutFilters(t *testing.T) {
	repo := NewMemoryRepository()
	got, err := repo.SelectTranslations(context.Background(), "de", nil)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if got != nil {
		t.Fatalf("got %v, want nil", got)
	}
}

func TestMemoryReplaceDeletesOnlyMatchingLanguage(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	seed := []entities.Translation{
		{ID: "1", EntityType: "city", EntityID: "ber", Field: "name", Language: "de", Text: "alt"},
		{ID: "2", EntityType: "city", EntityID: "ber", Field: "name", Language: "fr", Text: "ancien"},
	}
	for _, row := range seed {
		if err := repo.ReplaceTranslations(ctx, row.Language, nil, []entities.Translation{row}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	filters := []output.AddressFilter{{EntityType: "city", EntityIDs: []string{"ber"}}}
	err := repo.ReplaceTranslations(ctx, "de", filters, []entities.Translation{
		{ID: "3", EntityType: "city", EntityID: "ber", Field: "name", Language: "de", Text: "neu"},
	})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}

	de, err := repo.SelectTranslations(ctx, "de", filters)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(de) != 1 || de[0].Text != "neu" {
		t.Fatalf("de rows = %v", de)
	}
	fr, err := repo.SelectTranslations(ctx, "fr", filters)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(fr) != 1 || fr[0].Text != "ancien" {
		t.Fatalf("fr rows must be untouched, got %v", fr)
	}
}

func TestMemoryReplaceRejectsDuplicateStagedRows(t *testing.T) {
	repo := NewMemoryRepository()
	row := entities.Translation{ID: "1", EntityType: "city", EntityID: "ber", Field: "name", Language: "de", Text: "x"}
	dup := row
	dup.ID = "2"
	if err := repo.ReplaceTranslations(context.Background(), "de", nil, []entities.Translation{row, dup}); err == nil {
		t.Fatal("expected the uniqueness constraint to reject duplicate staged rows")
	}
	if repo.Len() != 0 {
		t.Fatalf("failed replace must not leave partial state, rows = %d", repo.Len())
	}
}
