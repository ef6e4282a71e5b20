package contracts

import (
	"context"

	"github.com/velmir/catalog-core/internal/app/catalog/dto"
)

// ReadModel is the lookup side consumed by the save workflows and the
// assertion helpers.
//
// Get* methods return domain.ErrProductNotFound / ErrAbstractProductNotFound
// when the row is absent. Find*IDBySku methods return an empty id instead of
// an error; FindURL returns (nil, nil) when the locale has no URL yet.
type ReadModel interface {
	GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error)
	GetProductBySku(ctx context.Context, sku string) (*dto.ProductDTO, error)
	FindProductIDBySku(ctx context.Context, sku string) (string, error)
	ListProductsByAbstract(ctx context.Context, abstractID string) ([]*dto.ProductDTO, error)

	GetAbstract(ctx context.Context, abstractID string) (*dto.ProductAbstractDTO, error)
	FindAbstractIDBySku(ctx context.Context, sku string) (string, error)

	FindURL(ctx context.Context, abstractID, localeID string) (*dto.URLDTO, error)
}
