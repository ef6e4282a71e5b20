package repo

import (
	"cloud.google.com/go/spanner"

	"github.com/velmir/catalog-core/internal/app/catalog/domain"
	"github.com/velmir/catalog-core/internal/models/m_product_abstract"
)

// ProductAbstractRepo is the Spanner implementation of the abstract product
// write-side repository.
type ProductAbstractRepo struct{}

func NewProductAbstractRepo() *ProductAbstractRepo {
	return &ProductAbstractRepo{}
}

// InsertMut builds an Insert mutation for a new abstract product row.
// Localized names are persisted separately via LocalizedAttributesRepo.
func (r *ProductAbstractRepo) InsertMut(a *domain.ProductAbstract) *spanner.Mutation {
	if a == nil {
		return nil
	}
	values := m_product_abstract.BuildInsertMap(a.ID(), a.Sku(), a.CreatedAt().UTC(), a.UpdatedAt().UTC())
	return m_product_abstract.InsertMutation(values)
}
