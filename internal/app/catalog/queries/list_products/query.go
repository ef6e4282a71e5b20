package list_products

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/velmir/catalog-core/internal/app/catalog/dto"
	"github.com/velmir/catalog-core/internal/pkg/attrenc"
)

// SpannerListProductsQuery lists the concrete products under an abstract.
// It returns the row view only (no localized attributes or price); callers
// needing the full view follow up with GetProduct.
type SpannerListProductsQuery struct {
	Client *spanner.Client
}

func NewSpannerListProductsQuery(client *spanner.Client) *SpannerListProductsQuery {
	return &SpannerListProductsQuery{Client: client}
}

// ListProductsByAbstract returns all concrete products of one abstract,
// ordered by sku for stable output.
func (q *SpannerListProductsQuery) ListProductsByAbstract(ctx context.Context, abstractID string) ([]*dto.ProductDTO, error) {
	stmt := spanner.Statement{
		SQL: `SELECT product_id, sku, fk_product_abstract, attributes, is_active, created_at, updated_at
		      FROM products
		      WHERE fk_product_abstract = @abstractID
		      ORDER BY sku`,
		Params: map[string]interface{}{"abstractID": abstractID},
	}

	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var result []*dto.ProductDTO
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var (
			id, sku, fkAbstract  string
			attributes           spanner.NullString
			isActive             bool
			createdAt, updatedAt time.Time
		)
		if err := row.Columns(&id, &sku, &fkAbstract, &attributes, &isActive, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		attrs, err := attrenc.Decode(attributes.StringVal)
		if err != nil {
			return nil, err
		}

		item := &dto.ProductDTO{
			ProductID:  id,
			Sku:        sku,
			AbstractID: fkAbstract,
			Attributes: attrs,
			IsActive:   isActive,
		}
		c := createdAt.UTC().Format(time.RFC3339)
		item.CreatedAt = &c
		u := updatedAt.UTC().Format(time.RFC3339)
		item.UpdatedAt = &u

		result = append(result, item)
	}
	return result, nil
}
