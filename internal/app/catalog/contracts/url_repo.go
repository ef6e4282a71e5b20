package contracts

import (
	"time"

	"cloud.google.com/go/spanner"

	"github.com/velmir/catalog-core/internal/app/catalog/domain"
)

// URLRepo is the write-side repository for URL records. SaveMut upserts by
// url id, so re-saving a (resource, locale) pair overwrites in place rather
// than creating duplicates.
type URLRepo interface {
	SaveMut(u *domain.ProductURL, createdAt, updatedAt time.Time) *spanner.Mutation
	DeleteMut(urlID string) *spanner.Mutation
}
