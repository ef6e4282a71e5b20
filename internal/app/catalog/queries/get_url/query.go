package get_url

import (
	"context"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/velmir/catalog-core/internal/app/catalog/domain"
	"github.com/velmir/catalog-core/internal/app/catalog/dto"
)

// SpannerGetURLQuery resolves URL rows by resource and locale.
type SpannerGetURLQuery struct {
	Client *spanner.Client
}

func NewSpannerGetURLQuery(client *spanner.Client) *SpannerGetURLQuery {
	return &SpannerGetURLQuery{Client: client}
}

// FindURL returns the abstract product's URL row for a locale, (nil, nil)
// when the locale has no URL yet.
func (q *SpannerGetURLQuery) FindURL(ctx context.Context, abstractID, localeID string) (*dto.URLDTO, error) {
	stmt := spanner.Statement{
		SQL: `SELECT url_id, url, fk_locale, resource_type, resource_id
		      FROM urls
		      WHERE resource_type = @resourceType
		        AND resource_id = @resourceID
		        AND fk_locale = @localeID`,
		Params: map[string]interface{}{
			"resourceType": domain.ResourceTypeProductAbstract,
			"resourceID":   abstractID,
			"localeID":     localeID,
		},
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

	var urlID, url, fkLocale, resourceType, resourceID string
	if err := row.Columns(&urlID, &url, &fkLocale, &resourceType, &resourceID); err != nil {
		return nil, err
	}
	return &dto.URLDTO{
		UrlID:        urlID,
		URL:          url,
		LocaleID:     fkLocale,
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}, nil
}
