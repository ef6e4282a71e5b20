package contracts

import (
	"time"

	"cloud.google.com/go/spanner"

	"github.com/velmir/catalog-core/internal/app/catalog/domain"
)

// PriceRepo persists the single price record of a concrete product.
// The save workflow stamps the (possibly fresh) product id before calling.
type PriceRepo interface {
	SaveMut(productID string, price *domain.Price, now time.Time) *spanner.Mutation
}
