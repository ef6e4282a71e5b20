package queries

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/velmir/catalog-core/internal/app/catalog/dto"
	"github.com/velmir/catalog-core/internal/app/catalog/queries/get_abstract"
	"github.com/velmir/catalog-core/internal/app/catalog/queries/get_product"
	"github.com/velmir/catalog-core/internal/app/catalog/queries/get_url"
	"github.com/velmir/catalog-core/internal/app/catalog/queries/list_products"
)

// SpannerReadModel is an infrastructure adapter that satisfies contracts.ReadModel.
// It composes the individual query implementations.
type SpannerReadModel struct {
	productQ  *get_product.SpannerGetProductQuery
	listQ     *list_products.SpannerListProductsQuery
	abstractQ *get_abstract.SpannerGetAbstractQuery
	urlQ      *get_url.SpannerGetURLQuery
}

func NewSpannerReadModel(client *spanner.Client) *SpannerReadModel {
	return &SpannerReadModel{
		productQ:  get_product.NewSpannerGetProductQuery(client),
		listQ:     list_products.NewSpannerListProductsQuery(client),
		abstractQ: get_abstract.NewSpannerGetAbstractQuery(client),
		urlQ:      get_url.NewSpannerGetURLQuery(client),
	}
}

func (rm *SpannerReadModel) GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error) {
	return rm.productQ.GetProduct(ctx, productID)
}

func (rm *SpannerReadModel) GetProductBySku(ctx context.Context, sku string) (*dto.ProductDTO, error) {
	return rm.productQ.GetProductBySku(ctx, sku)
}

func (rm *SpannerReadModel) FindProductIDBySku(ctx context.Context, sku string) (string, error) {
	return rm.productQ.FindProductIDBySku(ctx, sku)
}

func (rm *SpannerReadModel) ListProductsByAbstract(ctx context.Context, abstractID string) ([]*dto.ProductDTO, error) {
	return rm.listQ.ListProductsByAbstract(ctx, abstractID)
}

func (rm *SpannerReadModel) GetAbstract(ctx context.Context, abstractID string) (*dto.ProductAbstractDTO, error) {
	return rm.abstractQ.GetAbstract(ctx, abstractID)
}

func (rm *SpannerReadModel) FindAbstractIDBySku(ctx context.Context, sku string) (string, error) {
	return rm.abstractQ.FindAbstractIDBySku(ctx, sku)
}

func (rm *SpannerReadModel) FindURL(ctx context.Context, abstractID, localeID string) (*dto.URLDTO, error) {
	return rm.urlQ.FindURL(ctx, abstractID, localeID)
}
