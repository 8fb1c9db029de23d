// Package application implements the translation engines: fetching the side
// table for an object graph in one query, overlaying translated text onto
// live entities, and transactionally persisting current field values.
package application

import (
	"polyglot/internal/ports/input"
	"polyglot/internal/ports/output"
	"polyglot/internal/registry"
)

var _ input.TranslationUseCase = (*TranslationService)(nil)

type TranslationService struct {
	repo  output.TranslationRepository
	langs output.LanguageSource
	reg   *registry.Registry
}

func NewTranslationService(
	repo output.TranslationRepository,
	langs output.LanguageSource,
	reg *registry.Registry,
) *TranslationService {
	return &TranslationService{
		repo:  repo,
		langs: langs,
		reg:   reg,
	}
}
