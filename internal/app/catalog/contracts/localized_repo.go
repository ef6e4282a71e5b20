package contracts

import (
	"time"

	"cloud.google.com/go/spanner"

	"github.com/velmir/catalog-core/internal/app/catalog/domain"
)

// LocalizedAttributesRepo persists per-locale attribute rows for products
// and abstract products. De-duplication (one row per locale) is owned here:
// the returned mutations upsert on the (owner, locale) primary key.
type LocalizedAttributesRepo interface {
	ProductMuts(productID string, entries []domain.LocalizedAttributes, now time.Time) ([]*spanner.Mutation, error)
	AbstractMuts(abstractID string, entries []domain.LocalizedAttributes, now time.Time) ([]*spanner.Mutation, error)
}
