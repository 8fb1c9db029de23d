package domain

import "errors"

// Domain errors.
var (
	ErrInvalidLanguage = errors.New("language is not supported")
	ErrInvalidContext  = errors.New("context is neither an entity, a non-empty entity list, nor an entity set")
	ErrUnknownRelation = errors.New("unknown relation")
	ErrNotTranslatable = errors.New("entity type is not translatable")
	ErrDuplicateKind   = errors.New("entity kind already registered")
	ErrUnknownKind     = errors.New("entity kind not registered")
	ErrFieldTooLong    = errors.New("field name exceeds the maximum length")
)
