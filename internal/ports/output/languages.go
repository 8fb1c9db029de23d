package output

// LanguageSource exposes the configured language set.
// Implementations provide the supported tags and the fallback default.
type LanguageSource interface {
	// Supported returns the canonical supported language tags.
	Supported() []string
	// Default returns the tag used when no language is supplied and none is
	// carried by the request context.
	Default() string
}
