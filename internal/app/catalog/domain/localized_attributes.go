package domain

// LocalizedAttributes holds the locale-specific attribute map of a product
// or an abstract product. A product carries at most one entry per locale.
type LocalizedAttributes struct {
	LocaleID   string
	Name       string
	Attributes map[string]any
}

// ValidateLocalizedAttributes checks a localized attributes collection:
// every entry needs a locale and no locale may appear twice.
func ValidateLocalizedAttributes(entries []LocalizedAttributes) error {
	seen := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if entry.LocaleID == "" {
			return ErrEmptyLocale
		}
		if seen[entry.LocaleID] {
			return ErrDuplicateLocaleAttributes
		}
		seen[entry.LocaleID] = true
	}
	return nil
}
