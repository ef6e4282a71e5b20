package contracts

import (
	"cloud.google.com/go/spanner"

	"github.com/velmir/catalog-core/internal/app/catalog/domain"
)

// ProductExtension is an optional persistence strategy (stock, image sets)
// contributing mutations to the save workflow's plan. Extensions run inside
// the same transaction as the product row. No extensions are wired by
// default.
type ProductExtension interface {
	Name() string
	Muts(product *domain.ProductConcrete) ([]*spanner.Mutation, error)
}
