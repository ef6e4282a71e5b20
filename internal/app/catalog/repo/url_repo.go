package repo

import (
	"time"

	"cloud.google.com/go/spanner"

	"github.com/velmir/catalog-core/internal/app/catalog/domain"
	"github.com/velmir/catalog-core/internal/models/m_url"
)

// URLRepo is the Spanner implementation of the URL write-side repository.
type URLRepo struct{}

func NewURLRepo() *URLRepo {
	return &URLRepo{}
}

// buildURLSaveValues is unexported for the same reason as buildInsertValues:
// tests inspect the map instead of the opaque mutation.
func buildURLSaveValues(u *domain.ProductURL, createdAt, updatedAt time.Time) map[string]interface{} {
	return m_url.BuildSaveMap(u.IDUrl, u.URL, u.LocaleID, u.ResourceType, u.ResourceID, createdAt.UTC(), updatedAt.UTC())
}

// SaveMut builds an InsertOrUpdate mutation for a URL row.
func (r *URLRepo) SaveMut(u *domain.ProductURL, createdAt, updatedAt time.Time) *spanner.Mutation {
	if u == nil {
		return nil
	}
	return m_url.SaveMutation(buildURLSaveValues(u, createdAt, updatedAt))
}

// DeleteMut builds a Delete mutation for a URL row.
func (r *URLRepo) DeleteMut(urlID string) *spanner.Mutation {
	if urlID == "" {
		return nil
	}
	return m_url.DeleteMutation(urlID)
}
