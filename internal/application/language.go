package application

import (
	"context"
	"fmt"

	"golang.org/x/text/language"

	"polyglot/internal/domain"
)

type languageKey struct{}

// WithLanguage returns a context carrying the caller's active language. It
// replaces ambient process-wide language state: the active language travels
// with the request and is read only when an operation is given no explicit
// language.
func WithLanguage(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, languageKey{}, lang)
}

func activeLanguage(ctx context.Context) string {
	lang, _ := ctx.Value(languageKey{}).(string)
	return lang
}

// resolveLanguage substitutes the context's active language (then the
// configured default) for an empty tag and validates the result against the
// supported set.
func (s *TranslationService) resolveLanguage(ctx context.Context, lang string) (string, error) {
	if lang == "" {
		lang = activeLanguage(ctx)
	}
	if lang == "" {
		lang = s.langs.Default()
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return "", fmt.Errorf("application: %w: %q", domain.ErrInvalidLanguage, lang)
	}
	canonical := tag.String()
	for _, supported := range s.langs.Supported() {
		if supported == canonical {
			return canonical, nil
		}
	}
	return "", fmt.Errorf("application: %w: %q", domain.ErrInvalidLanguage, lang)
}
