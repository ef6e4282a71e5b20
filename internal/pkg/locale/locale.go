package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale identifies a store locale. ID is the stable identifier persisted in
// foreign keys ("en_US"); Tag is the parsed BCP 47 tag used for slugging and
// URL prefixes.
type Locale struct {
	ID  string
	Tag language.Tag
}

// LanguageCode returns the base language of the locale ("en" for en_US).
func (l Locale) LanguageCode() string {
	base, _ := l.Tag.Base()
	return base.String()
}

// Registry holds the configured locales in a fixed enumeration order. The
// URL workflow iterates locales in this order.
type Registry struct {
	ordered []Locale
	byID    map[string]Locale
}

// NewRegistry builds a registry from locale ids such as "en_US", "de_DE".
// Order of the arguments is preserved.
func NewRegistry(ids ...string) (*Registry, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("locale: at least one locale is required")
	}

	r := &Registry{
		ordered: make([]Locale, 0, len(ids)),
		byID:    make(map[string]Locale, len(ids)),
	}
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, exists := r.byID[id]; exists {
			return nil, fmt.Errorf("locale: duplicate locale %q", id)
		}
		tag, err := language.Parse(strings.ReplaceAll(id, "_", "-"))
		if err != nil {
			return nil, fmt.Errorf("locale: parse %q: %w", id, err)
		}
		loc := Locale{ID: id, Tag: tag}
		r.ordered = append(r.ordered, loc)
		r.byID[id] = loc
	}
	if len(r.ordered) == 0 {
		return nil, fmt.Errorf("locale: at least one locale is required")
	}
	return r, nil
}

// MustNewRegistry is NewRegistry that panics on error. For wiring and tests.
func MustNewRegistry(ids ...string) *Registry {
	r, err := NewRegistry(ids...)
	if err != nil {
		panic(err)
	}
	return r
}

// All returns the locales in enumeration order. The returned slice must not
// be mutated.
func (r *Registry) All() []Locale {
	return r.ordered
}

// ByID returns the locale with the given id.
func (r *Registry) ByID(id string) (Locale, error) {
	loc, ok := r.byID[id]
	if !ok {
		return Locale{}, fmt.Errorf("locale: unknown locale %q", id)
	}
	return loc, nil
}

// Has reports whether the registry knows the given locale id.
func (r *Registry) Has(id string) bool {
	_, ok := r.byID[id]
	return ok
}
