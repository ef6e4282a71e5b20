package contracts

import (
	"cloud.google.com/go/spanner"

	"github.com/velmir/catalog-core/internal/app/catalog/domain"
)

// ProductRepo is the write-side repository for concrete products. Methods
// return Spanner mutations; they never apply them.
type ProductRepo interface {
	// InsertMut returns a mutation inserting the product row with encoded
	// attributes.
	InsertMut(p *domain.ProductConcrete) (*spanner.Mutation, error)

	// UpdateMut returns a mutation updating only the dirty fields of the
	// aggregate, or nil when nothing changed.
	UpdateMut(p *domain.ProductConcrete) (*spanner.Mutation, error)
}

// ProductAbstractRepo is the write-side repository for abstract products.
type ProductAbstractRepo interface {
	InsertMut(a *domain.ProductAbstract) *spanner.Mutation
}
