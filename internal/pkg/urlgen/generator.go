// Package urlgen derives the canonical URL set of an abstract product.
// Generation is a pure function of the abstract product's identity and its
// localized names; it performs no I/O.
package urlgen

import (
	"fmt"

	"github.com/gosimple/slug"

	"github.com/velmir/catalog-core/internal/app/catalog/domain"
	"github.com/velmir/catalog-core/internal/pkg/locale"
)

// Generator produces one URL per locale in the form
// /<language>/<name-slug>-<id-prefix>. The id suffix keeps URLs unique when
// two abstract products share a localized name.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate returns a locale/url pair for every locale, in the given order.
func (g *Generator) Generate(abstract *domain.ProductAbstract, locales []locale.Locale) []domain.LocalizedURL {
	urls := make([]domain.LocalizedURL, 0, len(locales))
	for _, loc := range locales {
		urls = append(urls, domain.LocalizedURL{
			LocaleID: loc.ID,
			URL:      g.generateOne(abstract, loc),
		})
	}
	return urls
}

func (g *Generator) generateOne(abstract *domain.ProductAbstract, loc locale.Locale) string {
	name := abstract.LocalizedName(loc.ID)
	return fmt.Sprintf("/%s/%s-%s", loc.LanguageCode(), slug.MakeLang(name, loc.LanguageCode()), idSuffix(abstract.ID()))
}

// idSuffix shortens a UUID to its first block; enough to disambiguate URLs.
func idSuffix(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
