package get_abstract

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/velmir/catalog-core/internal/app/catalog/domain"
	"github.com/velmir/catalog-core/internal/app/catalog/dto"
	"github.com/velmir/catalog-core/internal/pkg/attrenc"
)

// SpannerGetAbstractQuery reads abstract products and their localized
// attributes from Spanner directly.
type SpannerGetAbstractQuery struct {
	Client *spanner.Client
}

func NewSpannerGetAbstractQuery(client *spanner.Client) *SpannerGetAbstractQuery {
	return &SpannerGetAbstractQuery{Client: client}
}

// GetAbstract fetches an abstract product by id, localized attributes
// included.
func (q *SpannerGetAbstractQuery) GetAbstract(ctx context.Context, abstractID string) (*dto.ProductAbstractDTO, error) {
	stmt := spanner.Statement{
		SQL: `SELECT abstract_id, sku, created_at, updated_at
		      FROM product_abstracts
		      WHERE abstract_id = @id`,
		Params: map[string]interface{}{"id": abstractID},
	}

	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrAbstractProductNotFound
	}
	if err != nil {
		return nil, err
	}

	var (
		id, sku              string
		createdAt, updatedAt time.Time
	)
	if err := row.Columns(&id, &sku, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	out := &dto.ProductAbstractDTO{
		AbstractID: id,
		Sku:        sku,
	}
	c := createdAt.UTC().Format(time.RFC3339)
	out.CreatedAt = &c
	u := updatedAt.UTC().Format(time.RFC3339)
	out.UpdatedAt = &u

	out.Localized, err = q.loadLocalized(ctx, id)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FindAbstractIDBySku resolves an abstract sku to its id, empty when unused.
func (q *SpannerGetAbstractQuery) FindAbstractIDBySku(ctx context.Context, sku string) (string, error) {
	stmt := spanner.Statement{
		SQL:    `SELECT abstract_id FROM product_abstracts WHERE sku = @sku`,
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

func (q *SpannerGetAbstractQuery) loadLocalized(ctx context.Context, abstractID string) ([]dto.LocalizedAttributesDTO, error) {
	stmt := spanner.Statement{
		SQL: `SELECT locale_id, name, attributes
		      FROM product_abstract_localized_attributes
		      WHERE abstract_id = @id
		      ORDER BY locale_id`,
		Params: map[string]interface{}{"id": abstractID},
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
