package lang

import (
	"sort"
	"strings"

	"github.com/merrows/stencil"
)

//go:generate go run internal/gen.go

// Language is an immutable descriptor of one supported target language.
// Exactly one descriptor exists per language name; descriptors are obtained
// from the process-wide registry through [Lookup].
type Language struct {
	name          string
	extension     string
	stropSuffix   string
	escapePrefix  string
	caseSensitive bool
	reserved      map[string]struct{}
}

func newLanguage(name, extension, stropSuffix, escapePrefix string, caseSensitive bool, reserved []string) *Language {
	l := &Language{
		name:          name,
		extension:     extension,
		stropSuffix:   stropSuffix,
		escapePrefix:  escapePrefix,
		caseSensitive: caseSensitive,
		reserved:      make(map[string]struct{}, len(reserved)),
	}
	for _, w := range reserved {
		if !caseSensitive {
			w = strings.ToLower(w)
		}
		l.reserved[w] = struct{}{}
	}
	return l
}

// Name returns the language's registry key, e.g. "c" or "py".
func (l *Language) Name() string { return l.name }

// Extension returns the output file extension including the leading dot.
func (l *Language) Extension() string { return l.extension }

// StropSuffix returns the suffix appended to reserved identifiers.
func (l *Language) StropSuffix() string { return l.stropSuffix }

// EscapePrefix returns the prefix used to escape illegal identifier
// characters, e.g. "ZX".
func (l *Language) EscapePrefix() string { return l.escapePrefix }

// CaseSensitive reports whether reserved-word membership is compared
// case-sensitively for this language.
func (l *Language) CaseSensitive() bool { return l.caseSensitive }

// IsReserved reports whether token is a reserved word in this language,
// honoring the language's case rule.
func (l *Language) IsReserved(token string) bool {
	if !l.caseSensitive {
		token = strings.ToLower(token)
	}
	_, ok := l.reserved[token]
	return ok
}

// Reserved returns a sorted copy of the reserved-word set. The descriptor's
// own set is never exposed for mutation.
func (l *Language) Reserved() []string {
	words := make([]string, 0, len(l.reserved))
	for w := range l.reserved {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Stropper returns a stropper configured for this language.
func (l *Language) Stropper() Stropper {
	return Stropper{
		Suffix:        l.stropSuffix,
		EscapePrefix:  l.escapePrefix,
		CaseSensitive: l.caseSensitive,
	}
}

// Strop turns a raw token into a valid, non-reserved identifier for this
// language.
func (l *Language) Strop(raw string) string {
	return l.Stropper().Strop(raw, l.reserved)
}

// registry holds every supported language, populated from generated tables
// in init and read-only afterwards.
var registry = make(map[string]*Language)

func register(l *Language) {
	registry[l.name] = l
}

// Lookup returns the descriptor registered under name.
func Lookup(name string) (*Language, error) {
	l, ok := registry[name]
	if !ok {
		return nil, stencil.ErrUnknownLanguage
	}
	return l, nil
}

// Supported returns the sorted names of all registered languages.
func Supported() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
