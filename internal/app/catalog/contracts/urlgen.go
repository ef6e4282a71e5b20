package contracts

import (
	"github.com/velmir/catalog-core/internal/app/catalog/domain"
	"github.com/velmir/catalog-core/internal/pkg/locale"
)

// URLGenerator derives the canonical URL set of an abstract product: a pure
// function of the abstract's identity, localized names, and the locale set.
type URLGenerator interface {
	Generate(abstract *domain.ProductAbstract, locales []locale.Locale) []domain.LocalizedURL
}
