package get_product

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/velmir/catalog-core/internal/app/catalog/domain"
	"github.com/velmir/catalog-core/internal/app/catalog/dto"
	"github.com/velmir/catalog-core/internal/pkg/attrenc"
)

// SpannerGetProductQuery is a concrete query implementation that reads from
// Spanner directly. It assembles the full product view: the row itself plus
// localized attributes and the price, when present.
type SpannerGetProductQuery struct {
	Client *spanner.Client
}

func NewSpannerGetProductQuery(client *spanner.Client) *SpannerGetProductQuery {
	return &SpannerGetProductQuery{Client: client}
}

const productColumns = `product_id, sku, fk_product_abstract, attributes, is_active, created_at, updated_at`

// GetProduct fetches a product by id.
func (q *SpannerGetProductQuery) GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error) {
	stmt := spanner.Statement{
		SQL:    `SELECT ` + productColumns + ` FROM products WHERE product_id = @id`,
		Params: map[string]interface{}{"id": productID},
	}
	return q.getOne(ctx, stmt)
}

// GetProductBySku fetches a product by its sku.
func (q *SpannerGetProductQuery) GetProductBySku(ctx context.Context, sku string) (*dto.ProductDTO, error) {
	stmt := spanner.Statement{
		SQL:    `SELECT ` + productColumns + ` FROM products WHERE sku = @sku`,
		Params: map[string]interface{}{"sku": sku},
	}
	return q.getOne(ctx, stmt)
}

// FindProductIDBySku resolves a sku to the owning product id, empty when the
// sku is unused. The uniqueness assertions run on this instead of GetProduct
// to avoid loading the whole view.
func (q *SpannerGetProductQuery) FindProductIDBySku(ctx context.Context, sku string) (string, error) {
	stmt := spanner.Statement{
		SQL:    `SELECT product_id FROM products WHERE sku = @sku`,
		Params: map[string]interface{}{"sku": sku},
	}

	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	var id string
	if err := row.Columns(&id); err != nil {
		return "", err
	}
	return id, nil
}

func (q *SpannerGetProductQuery) getOne(ctx context.Context, stmt spanner.Statement) (*dto.ProductDTO, error) {
	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	out, err := scanProductRow(row)
	if err != nil {
		return nil, err
	}

	out.Localized, err = q.loadLocalized(ctx, out.ProductID)
	if err != nil {
		return nil, err
	}
	out.Price, err = q.loadPrice(ctx, out.ProductID)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func scanProductRow(row *spanner.Row) (*dto.ProductDTO, error) {
	var (
		id, sku, abstractID  string
		attributes           spanner.NullString
		isActive             bool
		createdAt, updatedAt time.Time
	)
	if err := row.Columns(&id, &sku, &abstractID, &attributes, &isActive, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	attrs, err := attrenc.Decode(attributes.StringVal)
	if err != nil {
		return nil, err
	}

	out := &dto.ProductDTO{
		ProductID:  id,
		Sku:        sku,
		AbstractID: abstractID,
		Attributes: attrs,
		IsActive:   isActive,
	}

	c := createdAt.UTC().Format(time.RFC3339)
	out.CreatedAt = &c
	u := updatedAt.UTC().Format(time.RFC3339)
	out.UpdatedAt = &u

	return out, nil
}

func (q *SpannerGetProductQuery) loadLocalized(ctx context.Context, productID string) ([]dto.LocalizedAttributesDTO, error) {
	stmt := spanner.Statement{
		SQL: `SELECT locale_id, name, attributes
		      FROM product_localized_attributes
		      WHERE product_id = @id
		      ORDER BY locale_id`,
		Params: map[string]interface{}{"id": productID},
	}

	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var result []dto.LocalizedAttributesDTO
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var (
			localeID   string
			name       spanner.NullString
			attributes spanner.NullString
		)
		if err := row.Columns(&localeID, &name, &attributes); err != nil {
			return nil, err
		}

		attrs, err := attrenc.Decode(attributes.StringVal)
		if err != nil {
			return nil, err
		}
		result = append(result, dto.LocalizedAttributesDTO{
			LocaleID:   localeID,
			Name:       name.StringVal,
			Attributes: attrs,
		})
	}
	return result, nil
}

func (q *SpannerGetProductQuery) loadPrice(ctx context.Context, productID string) (*dto.PriceDTO, error) {
	stmt := spanner.Statement{
		SQL: `SELECT price_numerator, price_denominator, currency
		      FROM product_prices
		      WHERE product_id = @id`,
		Params: map[string]interface{}{"id": productID},
	}

	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var (
		num, den int64
		currency string
	)
	if err := row.Columns(&num, &den, &currency); err != nil {
		return nil, err
	}
	return &dto.PriceDTO{Numerator: num, Denominator: den, Currency: currency}, nil
}
